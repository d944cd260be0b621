package commands

import (
	"github.com/utec/diagram-cli/internal/cli"
	"github.com/utec/diagram-cli/internal/commands/diagrams"
	"github.com/utec/diagram-cli/internal/commands/login"
	"github.com/utec/diagram-cli/internal/commands/logout"
	"github.com/utec/diagram-cli/internal/commands/profile"
	"github.com/utec/diagram-cli/internal/commands/register"
	"github.com/utec/diagram-cli/internal/commands/whoami"
)

// Root is the set of top level commands, in the order they are listed in the CLI help text
var Root = []cli.CommandDefinition{Login, Register, Logout, Whoami, Diagram, Profiles}

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Log in with your email and password",
		Help: `Log in with your email and password

Starts a session for the active profile. If a different user is already
logged in, you will be asked to confirm ending their session first.`,
	}

	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Aliases:     []string{"signup"},
		Description: "Create a new account",
		Help: `Create a new account

Registering does not start a session, run "login" afterwards.`,
	}

	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
		Help:        "Removes the session token and user of the active profile",
	}

	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help: `Display the current user's details

Shows the logged in user and, when the session token carries one, the
session expiration time.`,
	}

	Diagram = cli.CommandDefinition{
		Use:         "diagram",
		Aliases:     []string{"diagrams"},
		Description: "Generate and download diagrams",
		Help:        "Generate diagrams from source code and download them in various formats",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &diagrams.CommandGenerate{},
				Use:         "generate",
				Aliases:     []string{"gen"},
				Display:     "diagram generate",
				Description: "Generate a diagram from source code",
				Help: `Generate a diagram from source code

Provide the source code with --code or read it from a file with --file.
Requires an active session.`,
			},
			{
				Command:     &diagrams.CommandDownload{},
				Use:         "download",
				Display:     "diagram download",
				Description: "Download a generated diagram",
				Help: `Download a generated diagram

Saves the diagram as <filename>.<format> in the provided directory.
Requires an active session.`,
			},
		},
	}

	Profiles = cli.CommandDefinition{
		Use:         "profiles",
		Aliases:     []string{"profile"},
		Description: "Manage the profiles of your local CLI environment",
		SubCommands: []cli.CommandDefinition{
			{
				Command:     &profile.CommandList{},
				Use:         "list",
				Aliases:     []string{"ls"},
				Display:     "profiles list",
				Description: "List the profiles of your local CLI environment",
			},
		},
	}
)
