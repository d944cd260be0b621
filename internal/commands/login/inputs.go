package login

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/terminal"
)

type inputs struct {
	cli.CredentialsInputs
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var defaultEmail string
	if existingUser, ok := profile.Session().User(); ok {
		defaultEmail = existingUser.Email
	}
	return i.CredentialsInputs.Resolve(ui, defaultEmail)
}
