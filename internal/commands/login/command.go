package login

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	cmd.inputs.Flags(fs)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if existingUser, ok := clients.Session.User(); ok && clients.Session.IsAuthenticated() && existingUser.Email != cmd.inputs.Email {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s, would you like to proceed?",
			existingUser.Email,
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	res, err := clients.Diagram.Login(cmd.inputs.Email, cmd.inputs.Password)
	if err != nil {
		return err
	}

	if !res.HasCredential() {
		ui.Print(terminal.NewWarningLog("The server accepted the credentials but returned no session, the existing session was kept"))
		return nil
	}

	ui.Print(terminal.NewTextLog("Successfully logged in as %s", res.User.Email))
	return nil
}
