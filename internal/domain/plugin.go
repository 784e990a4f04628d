package domain

// PluginInfo is the metadata a launcher shows for the plugin.
type PluginInfo struct {
	ID          string
	Name        string
	Version     string
	Authors     []string
	Synopsis    string
	Description string
	Trigger     string
}
