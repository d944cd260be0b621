package cli

import (
	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"

	flagEmail      = "email"
	flagEmailShort = "e"
	flagEmailUsage = "Specify the email address of your account"

	flagPassword      = "password"
	flagPasswordShort = "p"
	flagPasswordUsage = "Specify the password of your account"
)

// CredentialsInputs are the email/password inputs for a command
type CredentialsInputs struct {
	Email    string
	Password string
}

// Flags registers the credentials input flags to the provided flag set
func (i *CredentialsInputs) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&i.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&i.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Resolve prompts for the credentials that remain unset after flags have been parsed
func (i *CredentialsInputs) Resolve(ui terminal.UI, defaultEmail string) error {
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldEmail,
			Prompt:   &survey.Input{Message: "Email", Default: defaultEmail},
			Validate: survey.Required,
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldPassword,
			Prompt:   &survey.Password{Message: "Password"},
			Validate: survey.Required,
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
