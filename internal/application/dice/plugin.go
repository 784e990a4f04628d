package dice

import (
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/ports"
	"github.com/doeshing/diceroll-go/internal/version"
)

// PluginID identifies the plugin to launcher hosts.
const PluginID = "dice_roll"

// Plugin adapts a Processor to the launcher host boundary.
type Plugin struct {
	processor *Processor
	info      domain.PluginInfo
}

// NewPlugin wraps processor with the plugin metadata. An empty trigger keeps
// domain.DefaultTrigger.
func NewPlugin(processor *Processor, trigger string) *Plugin {
	if trigger == "" {
		trigger = domain.DefaultTrigger
	}
	return &Plugin{
		processor: processor,
		info: domain.PluginInfo{
			ID:          PluginID,
			Name:        "Dice Roll",
			Version:     version.Version,
			Authors:     []string{"Jonah Lawrence"},
			Synopsis:    "<amount>d<sides> [<amount>d<sides> ...]",
			Description: `Roll any number of dice using the format _d_, e.g. "2d6 3d8 1d20"`,
			Trigger:     trigger,
		},
	}
}

// Info returns the plugin metadata.
func (p *Plugin) Info() domain.PluginInfo {
	return p.info
}

// HandleQuery processes a query that already had its trigger removed.
func (p *Plugin) HandleQuery(query string) []domain.DisplayEntry {
	return p.processor.Process(query)
}

var _ ports.LauncherPlugin = (*Plugin)(nil)
