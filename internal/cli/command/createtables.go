package command

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
)

// CreateTablesCommand returns the command that creates the store schema.
func CreateTablesCommand() *cli.Command {
	return &cli.Command{
		Name:   "createtables",
		Usage:  "Create the tables of the configured store",
		Action: runCreateTables,
	}
}

func runCreateTables(c *cli.Context) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	e, err := newEngine(c, cfg, false)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, e.Close()) }()

	tables, err := e.dal.CreateTables(c.Context)
	if err != nil {
		return fmt.Errorf("create tables: %w", err)
	}
	for _, name := range tables {
		fmt.Fprintf(c.App.Writer, "Creating table for '%s'\n", name)
	}
	fmt.Fprintln(c.App.Writer, "createtables completed")
	return nil
}
