package command

import (
	"errors"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/repl"
)

// ShellCommand returns the interactive shell command.
func ShellCommand() *cli.Command {
	return &cli.Command{
		Name:   "shell",
		Usage:  "Start the interactive administration shell",
		Action: runShell,
	}
}

func runShell(c *cli.Context) (err error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	e, err := newEngine(c, cfg, true)
	if err != nil {
		return err
	}
	defer func() { err = errors.Join(err, e.Close()) }()

	policy, err := repl.ParseEmptyLinePolicy(cfg.Shell.EmptyLine)
	if err != nil {
		return err
	}

	ctx, stop := e.shutdown.NotifyContext(c.Context)
	defer stop()

	shell := repl.New(repl.Config{
		Registry:      e.registry,
		Dispatcher:    e.dispatcher,
		Console:       e.console,
		Logger:        e.log,
		Input:         c.App.Reader,
		Prompt:        cfg.Shell.Prompt,
		EmptyLine:     policy,
		CaseSensitive: cfg.Shell.CaseSensitive,
		HistoryFile:   cfg.Shell.HistoryFile,
		HistorySize:   cfg.Shell.HistorySize,
	})
	e.log.Debug("shell started", "provider", e.dal.Provider())
	return shell.Run(ctx)
}
