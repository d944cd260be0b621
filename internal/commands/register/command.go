package register

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `register` command
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
	res, err := clients.Diagram.Register(cmd.inputs.Email, cmd.inputs.Password)
	if err != nil {
		return err
	}

	ui.Print(terminal.NewTitledJSONLog("Successfully registered "+cmd.inputs.Email, res))
	ui.Print(terminal.NewFollowupLog("To start a session, run", cli.Name+" login --email "+cmd.inputs.Email))
	return nil
}

type inputs struct {
	cli.CredentialsInputs
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	return i.CredentialsInputs.Resolve(ui, "")
}
