package diagrams

import (
	"errors"
	"path/filepath"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

const (
	flagID      = "id"
	flagIDUsage = "Specify the ID of the generated diagram"

	flagFormat      = "format"
	flagFormatUsage = "Specify the file format to download the diagram in"

	flagFilename      = "filename"
	flagFilenameUsage = "Specify the name of the saved file, without its extension"

	flagDir      = "dir"
	flagDirUsage = "Specify the directory to save the file to"

	defaultFormat = "png"
)

// CommandDownload is the `diagram download` command
type CommandDownload struct {
	inputs downloadInputs
}

type downloadInputs struct {
	ID       string
	Format   string
	Filename string
	Dir      string
}

// Flags is the command flags
func (cmd *CommandDownload) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.ID, flagID, "", flagIDUsage)
	fs.StringVar(&cmd.inputs.Format, flagFormat, defaultFormat, flagFormatUsage)
	fs.StringVar(&cmd.inputs.Filename, flagFilename, diagram.DefaultFilename, flagFilenameUsage)
	fs.StringVar(&cmd.inputs.Dir, flagDir, "", flagDirUsage)
}

// Inputs is the command inputs
func (cmd *CommandDownload) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandDownload) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	filename := cmd.inputs.Filename
	if cmd.inputs.Dir != "" {
		filename = filepath.Join(cmd.inputs.Dir, filename)
	}

	path, err := clients.Diagram.DownloadDiagram(cmd.inputs.ID, cmd.inputs.Format, filename)
	if err != nil {
		var downloadErr diagram.DownloadError
		if errors.As(err, &downloadErr) {
			return cli.NewPrivileged(downloadErr.Error(), downloadErr.Unwrap())
		}
		return err
	}

	ui.Print(terminal.NewTextLog("Successfully downloaded diagram to %s", path))
	return nil
}

func (i *downloadInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Format == "" {
		i.Format = defaultFormat
	}

	if i.ID == "" {
		if err := ui.AskOne(&i.ID, &survey.Input{Message: "Diagram ID"}); err != nil {
			return err
		}
		if i.ID == "" {
			return errors.New("diagram id must not be blank")
		}
	}
	return nil
}
