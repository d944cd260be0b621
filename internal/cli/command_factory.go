package cli

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/telemetry"
	"github.com/utec/diagram-cli/internal/terminal"
	"github.com/utec/diagram-cli/internal/utils/flags"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// CommandFactory is a command factory
type CommandFactory struct {
	profile          *user.Profile
	ui               terminal.UI
	uiConfig         terminal.UIConfig
	inReader         io.Reader
	outWriter        io.Writer
	errWriter        io.Writer
	outputFile       *os.File
	errLogger        *log.Logger
	telemetryService *telemetry.Service
	clients          *Clients
	fs               afero.Fs
}

// NewCommandFactory creates a new command factory
func NewCommandFactory() (*CommandFactory, error) {
	profile, profileErr := user.NewDefaultProfile()
	if profileErr != nil {
		return nil, profileErr
	}

	return &CommandFactory{
		profile:   profile,
		errLogger: log.New(os.Stderr, "UTC ERROR ", log.Ltime|log.Lmsgprefix),
		fs:        afero.NewOsFs(),
	}, nil
}

// Build builds a Cobra command from the specified CommandDefinition
func (factory *CommandFactory) Build(command CommandDefinition) *cobra.Command {
	display := command.Display
	if display == "" {
		display = command.Use
	}

	cmd := cobra.Command{
		Use:     command.Use,
		Short:   command.Description,
		Long:    command.Help,
		Aliases: command.Aliases,
	}

	cmd.InheritedFlags().SortFlags = false // ensures command usage text displays global flags unsorted

	for _, subCommand := range command.SubCommands {
		cmd.AddCommand(factory.Build(subCommand))
	}

	if command.Command != nil {
		if command, ok := command.Command.(CommandFlags); ok {
			fs := cmd.Flags()
			fs.SortFlags = false // ensures command flags are added unsorted
			command.Flags(fs)
		}

		cmd.PersistentPreRunE = func(c *cobra.Command, a []string) error {
			factory.ensureUI()
			c.SetIn(factory.inReader)
			c.SetOut(factory.outWriter)
			c.SetErr(factory.errWriter)

			if err := factory.profile.ResolveFlags(); err != nil {
				return err
			}

			var userID string
			if sessionUser, ok := factory.profile.Session().User(); ok {
				userID = sessionUser.ID
			}

			factory.telemetryService = telemetry.NewService(telemetry.Config{
				Mode:    factory.profile.Flags.TelemetryMode,
				Writer:  factory.errWriter,
				Command: display,
				Profile: factory.profile.Name,
				UserID:  userID,
				Version: Version,
			})
			return nil
		}

		if command, ok := command.Command.(CommandInputs); ok {
			cmd.PreRunE = func(c *cobra.Command, a []string) error {
				if err := command.Inputs().Resolve(factory.profile, factory.ui); err != nil {
					return fmt.Errorf("%s setup failed: %w", display, err)
				}
				return nil
			}
		}

		cmd.RunE = func(c *cobra.Command, a []string) error {
			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandStart)

			err := command.Command.Handler(factory.profile, factory.ui, factory.Clients())
			if err != nil {
				factory.telemetryService.TrackEvent(telemetry.EventTypeCommandError, errorEventData(err)...)
				return fmt.Errorf("%s failed: %w", display, errDisableUsage{err})
			}

			factory.telemetryService.TrackEvent(telemetry.EventTypeCommandComplete)
			return nil
		}
	}

	return &cmd
}

// Clients returns the CLI clients, creating them on first use
func (factory *CommandFactory) Clients() Clients {
	if factory.clients == nil {
		store := factory.profile.Session()
		factory.clients = &Clients{
			Diagram: diagram.NewClient(diagram.Config{
				BaseURL: factory.profile.Flags.BaseURL,
				Session: store,
				Fs:      factory.fs,
			}),
			Session: store,
			Fs:      factory.fs,
		}
	}
	return *factory.clients
}

// Close closes the command factory
func (factory *CommandFactory) Close() {
	if factory.telemetryService != nil {
		factory.telemetryService.Close()
	}

	if factory.outputFile != nil {
		if err := factory.outputFile.Close(); err != nil {
			factory.errLogger.Print(err)
		}
	}
}

// Run executes the command and returns the process exit code
func (factory *CommandFactory) Run(cmd *cobra.Command) int {
	defer factory.Close()

	err := cmd.Execute()
	if err == nil {
		return 0
	}

	factory.ensureUI()

	if !disablesUsage(err) {
		factory.ui.Print(terminal.NewTextLog("%s", cmd.UsageString()))
	}

	factory.ui.Print(factory.errorLogs(err)...)
	return 1
}

func (factory *CommandFactory) errorLogs(err error) []terminal.Log {
	logs := []terminal.Log{terminal.NewErrorLog(err)}
	if requiresLogin(err) {
		logs = append(logs, terminal.NewFollowupLog(terminal.MsgSuggestedCommands, factory.loginCommand()))
	}
	return logs
}

func (factory *CommandFactory) loginCommand() string {
	command := Name + " login"
	if factory.profile.Name != user.DefaultProfile {
		command += flags.Arg{Name: user.FlagProfile, Value: factory.profile.Name}.String()
	}
	return command
}

func errorEventData(err error) []telemetry.EventData {
	data := []telemetry.EventData{{Key: telemetry.EventDataKeyError, Value: err}}

	var serverErr diagram.ServerError
	if errors.As(err, &serverErr) {
		data = append(data, telemetry.EventData{Key: telemetry.EventDataKeyStatus, Value: serverErr.StatusCode})
	}
	return data
}

// SetGlobalFlags sets the global flags
func (factory *CommandFactory) SetGlobalFlags(fs *pflag.FlagSet) {
	fs.SortFlags = false // ensures global flags are added unsorted

	// profile flags
	fs.StringVar(&factory.profile.Name, user.FlagProfile, user.DefaultProfile, user.FlagProfileUsage)
	fs.Var(&factory.profile.Flags.TelemetryMode, telemetry.FlagMode, telemetry.FlagModeUsage)

	// ui flags
	fs.StringVarP(&factory.uiConfig.OutputTarget, terminal.FlagOutputTarget, terminal.FlagOutputTargetShort, "", terminal.FlagOutputTargetUsage)
	fs.VarP(&factory.uiConfig.OutputFormat, terminal.FlagOutputFormat, terminal.FlagOutputFormatShort, terminal.FlagOutputFormatUsage)
	fs.BoolVar(&factory.uiConfig.DisableColors, terminal.FlagDisableColors, false, terminal.FlagDisableColorsUsage)
	fs.BoolVarP(&factory.uiConfig.AutoConfirm, terminal.FlagAutoConfirm, terminal.FlagAutoConfirmShort, false, terminal.FlagAutoConfirmUsage)

	// hidden flags
	fs.StringVar(&factory.profile.Flags.BaseURL, user.FlagBaseURL, "", user.FlagBaseURLUsage)
	flags.MarkHidden(fs, user.FlagBaseURL)
}

// Setup initializes the command factory
func (factory *CommandFactory) Setup() {
	if err := factory.profile.Load(); err != nil {
		factory.errLogger.Fatal(err)
	}

	if filepath := factory.uiConfig.OutputTarget; filepath != "" && factory.outWriter == nil {
		f, err := os.OpenFile(filepath, os.O_CREATE|os.O_RDWR|os.O_APPEND, 0660)
		if err != nil {
			factory.errLogger.Fatal(fmt.Errorf("failed to open target file: %w", err))
		}
		factory.outputFile = f
		factory.outWriter = f
	}
}

func (factory *CommandFactory) ensureUI() {
	if factory.inReader == nil {
		factory.inReader = os.Stdin
	}

	if factory.outWriter == nil {
		factory.outWriter = os.Stdout
	}

	if factory.errWriter == nil {
		if factory.uiConfig.OutputTarget != "" {
			factory.errWriter = factory.outWriter
		} else {
			factory.errWriter = os.Stderr
		}
	}

	if factory.ui == nil {
		factory.ui = terminal.NewUI(factory.uiConfig, factory.inReader, factory.outWriter, factory.errWriter)
	}
}
