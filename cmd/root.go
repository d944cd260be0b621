package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI and exits with the status of the executed command
func Run() {
	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	os.Exit(factory.Run(newRootCommand(factory)))
}

func newRootCommand(factory *cli.CommandFactory) *cobra.Command {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Use:     cli.Name,
		Version: cli.VersionString(),
		Short:   "Generate and download diagrams from the command line",
		Long: fmt.Sprintf(`Generate diagrams from source code and download them as images

Start a session with "%[1]s login", then work with diagrams through "%[1]s diagram".
Use "%[1]s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetVersionTemplate(cli.Name + " {{.Version}}\n")

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	for _, command := range commands.Root {
		cmd.AddCommand(factory.Build(command))
	}
	return cmd
}
