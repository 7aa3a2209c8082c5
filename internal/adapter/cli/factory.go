package cli

import (
	"github.com/kyson/warptui/internal/core/config"
	"github.com/kyson/warptui/internal/core/warp"
)

var clientFactory = defaultClientFactory

func defaultClientFactory(opts config.Options) *warp.Client {
	return warp.New(opts.Binary, opts.CommandTimeout)
}

// SetClientFactory lets tests replace the warp-cli client.
func SetClientFactory(factory func(opts config.Options) *warp.Client) {
	if factory == nil {
		clientFactory = defaultClientFactory
		return
	}
	clientFactory = factory
}

// ResetClientFactory restores the default client.
func ResetClientFactory() {
	clientFactory = defaultClientFactory
}
