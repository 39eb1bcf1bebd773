package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/config"
	"github.com/yndnr/vmadmin-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the configuration",
				Action: configValidate,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	settings, err := config.Settings(flags.ConfigPath, flags.Overrides)
	if err != nil {
		return err
	}

	format := output.FormatTable
	if c.IsSet("output") {
		if format, err = output.ParseFormat(c.String("output")); err != nil {
			return err
		}
	}
	if format == output.FormatTable {
		fmt.Fprintf(c.App.Writer, "Config file: %s%s\n\n", flags.ConfigPath, missingSuffix(flags.ConfigPath))
	}
	return output.NewFormatter(format).Format(c.App.Writer, settings)
}

func configValidate(c *cli.Context) error {
	flags := ParseGlobalFlags(c)
	if _, err := config.Load(flags.ConfigPath, flags.Overrides); err != nil {
		return err
	}
	fmt.Fprintf(c.App.Writer, "Configuration is valid: %s%s\n", flags.ConfigPath, missingSuffix(flags.ConfigPath))
	return nil
}

func missingSuffix(path string) string {
	if config.Exists(path) {
		return ""
	}
	return " (not found, using defaults)"
}
