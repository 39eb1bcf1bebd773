package command

import (
	"errors"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
)

// ExecCommand returns the command that runs a single admin command.
func ExecCommand() *cli.Command {
	return &cli.Command{
		Name:      "exec",
		Usage:     "Run one administration command and exit",
		ArgsUsage: "<command words and arguments...>",
		Description: "Arguments are passed as tokens, so quote values with spaces for your shell:\n" +
			`   vmadmin exec create mailbox 100@example.com 1234 "Test Mailbox" test@example.com`,
		Action: runExec,
	}
}

func runExec(c *cli.Context) (err error) {
	tokens := c.Args().Slice()
	if len(tokens) == 0 {
		return domain.ErrInvalidSyntax.WithDetails("exec needs a command, e.g. 'vmadmin exec show contexts'")
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	e, err := newEngine(c, cfg, true)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, e.Close()) }()

	line := strings.Join(tokens, " ")
	cmd, err := repl.NewResolver(e.registry, cfg.Shell.CaseSensitive).Resolve(line, tokens)
	if err != nil {
		return err
	}
	_, err = e.dispatcher.Dispatch(c.Context, cmd)
	return err
}
