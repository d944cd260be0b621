package logout

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"
)

// Command is the `logout` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if err := clients.Session.Clear(); err != nil {
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully logged out"))
	return nil
}
