package wizard

import (
	"github.com/charmbracelet/huh"

	"github.com/imamik/ltmgen/internal/config"
)

// TypeOption is a selectable monitor or profile type.
type TypeOption struct {
	Value       string
	Description string
}

// MonitorTypes lists the monitor types the generator can emit.
var MonitorTypes = []TypeOption{
	{Value: string(config.MonitorHTTP), Description: "HTTP request/response check"},
	{Value: string(config.MonitorHTTPS), Description: "HTTP check over TLS"},
	{Value: string(config.MonitorTCP), Description: "TCP connect check"},
}

// ProfileTypes lists the profile types the generator can emit.
var ProfileTypes = []TypeOption{
	{Value: string(config.ProfileHTTP), Description: "HTTP protocol profile"},
	{Value: string(config.ProfileTCP), Description: "Plain TCP profile"},
}

// TypesToOptions converts type options to huh select options.
func TypesToOptions(types []TypeOption) []huh.Option[string] {
	opts := make([]huh.Option[string], len(types))
	for i, t := range types {
		opts[i] = huh.NewOption(t.Value+" - "+t.Description, t.Value)
	}
	return opts
}
