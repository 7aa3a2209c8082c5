package version

import "fmt"

// 构建时通过 -ldflags "-X" 注入
var (
	Tag    string = "dev"
	Commit string = "none"
	Date   string = "unknown"
)

type Info struct{}

func (i *Info) String() string {
	return fmt.Sprintf("warptui %s (%s) built at %s", Tag, Commit, Date)
}
