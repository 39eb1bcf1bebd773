package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/config"
	"github.com/yndnr/vmadmin-go/internal/infra/buildinfo"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "vmadmin",
		Usage:   "Voicemail administration shell",
		Version: buildinfo.String(),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			ShellCommand(),
			ExecCommand(),
			InitCommand(),
			CreateTablesCommand(),
			ConfigCommand(),
			VersionCommand(),
		},
		Action: defaultAction,
	}
}

// defaultAction runs the init flow on first start and the shell otherwise.
func defaultAction(c *cli.Context) error {
	if c.Args().Present() {
		return fmt.Errorf("unknown command %q", c.Args().First())
	}
	flags := ParseGlobalFlags(c)
	if !config.Exists(flags.ConfigPath) {
		return runInit(c, initOptions{})
	}
	return runShell(c)
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Configuration file",
			Value:   config.DefaultPath(),
		},
		&cli.StringFlag{
			Name:  "provider",
			Usage: "Store provider: sqlite, badger, memory",
		},
		&cli.StringFlag{
			Name:  "dsn",
			Usage: "SQLite database file or badger directory",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output format: table, json, yaml",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "Audit log level: debug, info, warn, error",
		},
		&cli.StringFlag{
			Name:  "log-file",
			Usage: "Append the audit log to this file instead of stderr",
		},
		&cli.BoolFlag{
			Name:  "no-color",
			Usage: "Disable colored output",
		},
	}
}

// GlobalFlags defines flags available to all commands.
type GlobalFlags struct {
	ConfigPath string

	// Overrides holds the configuration keys set on the command line.
	Overrides map[string]any
}

// flagKeys maps flags to configuration keys.
var flagKeys = map[string]string{
	"provider":  "store.provider",
	"dsn":       "store.dsn",
	"output":    "output.format",
	"log-level": "log.level",
	"log-file":  "log.file",
}

// ParseGlobalFlags extracts global flags from context.
func ParseGlobalFlags(c *cli.Context) *GlobalFlags {
	flags := &GlobalFlags{
		ConfigPath: c.String("config"),
		Overrides:  make(map[string]any),
	}
	for name, key := range flagKeys {
		if c.IsSet(name) {
			flags.Overrides[key] = c.String(name)
		}
	}
	if c.Bool("no-color") {
		flags.Overrides["output.color"] = false
	}
	return flags
}

// loadConfig loads the configuration selected by the global flags.
func loadConfig(c *cli.Context) (*config.Config, error) {
	flags := ParseGlobalFlags(c)
	return config.Load(flags.ConfigPath, flags.Overrides)
}
