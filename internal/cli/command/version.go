package command

import (
	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/infra/buildinfo"
)

// VersionCommand returns the command that prints build information.
func VersionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print build information",
		Action: func(c *cli.Context) error {
			format := output.FormatTable
			if c.IsSet("output") {
				f, err := output.ParseFormat(c.String("output"))
				if err != nil {
					return err
				}
				format = f
			}
			return output.NewFormatter(format).Format(c.App.Writer, buildinfo.Get())
		},
	}
}
