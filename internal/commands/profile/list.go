package profile

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"
)

// CommandList is the `profiles list` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	profileMetas, err := user.Profiles(clients.Fs)
	if err != nil {
		return err
	}

	if len(profileMetas) == 0 {
		ui.Print(terminal.NewTextLog("No available profiles to show"))
		return nil
	}

	names := make([]interface{}, 0, len(profileMetas))
	for _, meta := range profileMetas {
		names = append(names, meta.Name)
	}

	ui.Print(terminal.NewListLog("Profiles", names...))
	return nil
}
