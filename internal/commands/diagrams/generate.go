package diagrams

import (
	"errors"
	"fmt"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/terminal"
	"github.com/utec/diagram-cli/internal/utils/flags"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

const (
	flagType      = "type"
	flagTypeShort = "t"
	flagTypeUsage = "Specify the diagram type understood by the server (e.g. aws, er, json)"

	flagCode      = "code"
	flagCodeShort = "c"
	flagCodeUsage = "Specify the diagram source code"

	flagFile      = "file"
	flagFileUsage = "Specify a file to read the diagram source code from"

	inputFieldType = "type"
	inputFieldCode = "code"
)

// CommandGenerate is the `diagram generate` command
type CommandGenerate struct {
	inputs generateInputs
}

type generateInputs struct {
	Type string
	Code string
	File string
}

// Flags is the command flags
func (cmd *CommandGenerate) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Type, flagType, flagTypeShort, "", flagTypeUsage)
	fs.StringVarP(&cmd.inputs.Code, flagCode, flagCodeShort, "", flagCodeUsage)
	fs.StringVar(&cmd.inputs.File, flagFile, "", flagFileUsage)
}

// Inputs is the command inputs
func (cmd *CommandGenerate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandGenerate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	code := cmd.inputs.Code
	if cmd.inputs.File != "" {
		data, err := afero.ReadFile(clients.Fs, cmd.inputs.File)
		if err != nil {
			return cli.NewPrivileged(fmt.Sprintf("failed to read %s", cmd.inputs.File), err)
		}
		code = string(data)
	}

	res, err := clients.Diagram.GenerateDiagram(diagram.GenerateRequest{Code: code, Type: cmd.inputs.Type})
	if err != nil {
		return err
	}

	if !res.Success {
		ui.Print(terminal.NewWarningLog("The server did not report the diagram as successfully generated"))
	}

	details := []interface{}{"Image URL: " + res.ImageURL}
	if res.ID != "" {
		details = append(details, "ID: "+res.ID)
	}
	ui.Print(terminal.NewListLog("Generated diagram", details...))

	if res.ID != "" {
		ui.Print(terminal.NewFollowupLog(
			"To download the diagram, run",
			cli.Name+" diagram download"+flags.Arg{Name: flagID, Value: res.ID}.String(),
		))
	}
	return nil
}

func (i *generateInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Code != "" && i.File != "" {
		return errors.New("cannot use both --code and --file, please provide one or the other")
	}

	var questions []*survey.Question

	if i.Type == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldType,
			Prompt:   &survey.Input{Message: "Diagram Type"},
			Validate: survey.Required,
		})
	}

	if i.Code == "" && i.File == "" {
		questions = append(questions, &survey.Question{
			Name:     inputFieldCode,
			Prompt:   &survey.Multiline{Message: "Diagram Code"},
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
