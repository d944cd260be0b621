package cli

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/utec/diagram-cli/internal/cli/user"
	"github.com/utec/diagram-cli/internal/cloud/diagram"
	"github.com/utec/diagram-cli/internal/terminal"
	"github.com/utec/diagram-cli/internal/utils/test/assert"
	"github.com/utec/diagram-cli/internal/utils/test/mock"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

func TestCommandFactoryRun(t *testing.T) {
	t.Run("should run a command successfully", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{})

		cmd.SetArgs([]string{"test"})

		assert.Equal(t, 0, factory.Run(cmd))
		assert.Equal(t, "", out.String())
	})

	t.Run("should resolve inputs before running the handler", func(t *testing.T) {
		command := &testCommand{}
		_, factory, cmd := setupFactory(t, command)

		cmd.SetArgs([]string{"test", "--name", "flagged"})

		assert.Equal(t, 0, factory.Run(cmd))
		assert.Equal(t, "flagged", command.inputs.Name)
		assert.True(t, command.inputs.resolved, "expected inputs to be resolved")
		assert.True(t, command.handled, "expected handler to run")
	})

	t.Run("should not run the handler when inputs fail to resolve", func(t *testing.T) {
		command := &testCommand{inputs: testInputs{resolveErr: errors.New("something bad happened")}}
		out, factory, cmd := setupFactory(t, command)

		cmd.SetArgs([]string{"test"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.False(t, command.handled, "expected handler to be skipped")
		assert.Contains(t, out.String(), "test setup failed: something bad happened")
	})

	t.Run("should print the command failure without usage", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{handlerErr: errors.New("something bad happened")})

		cmd.SetArgs([]string{"test"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Equal(t, "test failed: something bad happened\n", out.String())
	})

	t.Run("should suggest logging in when the command requires authentication", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{handlerErr: diagram.ErrUnauthenticated{Action: "generate"}})

		cmd.SetArgs([]string{"test"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Equal(t, `test failed: must be logged in to generate diagrams
Try running instead
  diagram-cli login
`, out.String())
	})

	t.Run("should suggest logging in with the active profile when the server rejects the session", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{handlerErr: diagram.ServerError{StatusCode: 401, Message: "expired"}})

		cmd.SetArgs([]string{"test", "--profile", "dev"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Equal(t, `test failed: expired
Try running instead
  diagram-cli login --profile dev
`, out.String())
	})

	t.Run("should print usage for errors raised before the handler", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{})

		cmd.SetArgs([]string{"test", "--unknown"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Contains(t, out.String(), "Usage:")
		assert.Contains(t, out.String(), "unknown flag: --unknown")
	})

	t.Run("should track command events when telemetry is written to stdout", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{handlerErr: errors.New("something bad happened")})

		cmd.SetArgs([]string{"test", "--telemetry", "stdout"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Contains(t, out.String(), "TELEMETRY COMMAND_START")
		assert.Contains(t, out.String(), "TELEMETRY COMMAND_ERROR")
		assert.Contains(t, out.String(), "err=something bad happened")
		assert.Equal(t, user.DefaultProfile, factory.profile.Name)
		assert.Equal(t, "stdout", factory.profile.TelemetryMode().String())
	})

	t.Run("should track the status of a rejected request", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{handlerErr: diagram.ServerError{StatusCode: 401, Message: "expired"}})

		cmd.SetArgs([]string{"test", "--telemetry", "stdout", "--profile", "dev"})

		assert.Equal(t, 1, factory.Run(cmd))
		assert.Contains(t, out.String(), "command=test profile=dev version=")
		assert.Contains(t, out.String(), "err=expired status=401")
	})

	t.Run("should keep telemetry out of the command output", func(t *testing.T) {
		out, factory, cmd := setupFactory(t, &testCommand{})

		errOut := new(bytes.Buffer)
		factory.errWriter = errOut

		cmd.SetArgs([]string{"test", "--telemetry", "stdout", "--output-format", "json"})

		assert.Equal(t, 0, factory.Run(cmd))
		assert.Equal(t, "", out.String())
		assert.Contains(t, errOut.String(), "TELEMETRY COMMAND_START")
		assert.Contains(t, errOut.String(), "TELEMETRY COMMAND_COMPLETE")
	})
}

func TestCommandFactoryClients(t *testing.T) {
	t.Run("should build the clients once from the resolved profile", func(t *testing.T) {
		command := &testCommand{}
		_, factory, cmd := setupFactory(t, command)

		cmd.SetArgs([]string{"test", "--base-url", "http://localhost:8080"})

		assert.Equal(t, 0, factory.Run(cmd))
		assert.Equal(t, "http://localhost:8080", factory.profile.BaseURL())
		assert.NotNil(t, command.clients.Diagram)
		assert.NotNil(t, command.clients.Session)
		assert.False(t, command.clients.Session.IsAuthenticated(), "expected a fresh session")

		clients := factory.Clients()
		assert.True(t, clients.Session == command.clients.Session, "expected the same session store")
	})
}

func setupFactory(t *testing.T, command Command) (*bytes.Buffer, *CommandFactory, *cobra.Command) {
	t.Helper()

	out, ui := mock.NewUI()

	factory := &CommandFactory{
		profile:   mock.NewProfile(t),
		ui:        ui,
		inReader:  new(bytes.Buffer),
		outWriter: out,
		errWriter: out,
		errLogger: log.New(out, "", 0),
		fs:        afero.NewMemMapFs(),
	}

	cmd := &cobra.Command{
		Use:           Name,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(CommandDefinition{
		Command:     command,
		Use:         "test",
		Description: "test command",
	}))

	return out, factory, cmd
}

type testCommand struct {
	inputs     testInputs
	handlerErr error
	handled    bool
	clients    Clients
}

func (cmd *testCommand) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Name, "name", "", "the name")
}

func (cmd *testCommand) Inputs() InputResolver {
	return &cmd.inputs
}

func (cmd *testCommand) Handler(profile *user.Profile, ui terminal.UI, clients Clients) error {
	cmd.handled = true
	cmd.clients = clients
	return cmd.handlerErr
}

type testInputs struct {
	Name       string
	resolved   bool
	resolveErr error
}

func (i *testInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.resolveErr != nil {
		return i.resolveErr
	}
	i.resolved = true
	return nil
}
