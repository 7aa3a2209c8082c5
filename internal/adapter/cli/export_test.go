package cli

import tea "github.com/charmbracelet/bubbletea"

// SetModePicker 替换 mode -i 的交互选择，返回恢复函数，仅供测试使用
func SetModePicker(f func(current string) (string, error)) (restore func()) {
	orig := pickMode
	pickMode = f
	return func() { pickMode = orig }
}

// SetProgramRunner 替换 dashboard 的界面运行函数，返回恢复函数，仅供测试使用
func SetProgramRunner(f func(model tea.Model) error) (restore func()) {
	orig := runProgram
	runProgram = f
	return func() { runProgram = orig }
}
