package command

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/config"
	"github.com/yndnr/vmadmin-go/internal/cli/handler"
	"github.com/yndnr/vmadmin-go/internal/cli/menu"
	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/infra/shutdown"
	"github.com/yndnr/vmadmin-go/internal/storage"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
	"github.com/yndnr/vmadmin-go/internal/telemetry/metric"
)

const shutdownTimeout = 5 * time.Second

// engine holds everything a command needs to run admin commands.
type engine struct {
	cfg        *config.Config
	console    *output.Console
	log        logger.Logger
	metrics    *metric.Registry
	dal        *storage.DAL
	registry   *menu.Registry
	dispatcher *handler.Dispatcher
	shutdown   *shutdown.Handler
}

// newEngine opens the configured store and wires the handlers. Close must
// be called when the engine is no longer needed.
func newEngine(c *cli.Context, cfg *config.Config, autoMigrate bool) (*engine, error) {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return nil, err
	}
	e := &engine{
		cfg: cfg,
		console: output.NewConsole(output.Options{
			Out:    c.App.Writer,
			ErrOut: c.App.ErrWriter,
			Format: format,
			Color:  cfg.Output.Color,
		}),
		metrics:  metric.NewRegistry(),
		shutdown: shutdown.NewHandler(shutdownTimeout),
	}

	logOut, err := e.openLogOutput(c.App.ErrWriter)
	if err != nil {
		return nil, err
	}
	e.log, err = logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: logOut})
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}

	e.dal, err = storage.Open(c.Context, storage.Config{
		Provider:    cfg.Store.Provider,
		DSN:         cfg.Store.DSN,
		AutoMigrate: autoMigrate,
		Metrics:     e.metrics.Registerer(),
	}, e.log)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.shutdown.OnShutdown(func(context.Context) error { return e.dal.Close() })

	if path := cfg.Metrics.Textfile; path != "" {
		e.shutdown.OnShutdown(func(context.Context) error { return e.metrics.WriteTextfile(path) })
	}

	e.registry, err = menu.Default()
	if err != nil {
		e.Close()
		return nil, err
	}
	set, err := handler.NewSet(handler.Deps{
		DAL:      e.dal,
		Console:  e.console,
		Registry: e.registry,
		Logger:   e.log,
	})
	if err != nil {
		e.Close()
		return nil, err
	}
	e.dispatcher = handler.NewDispatcher(set, e.metrics, e.log)
	return e, nil
}

// openLogOutput returns the audit log sink: log.file when set, else
// fallback.
func (e *engine) openLogOutput(fallback io.Writer) (io.Writer, error) {
	path := e.cfg.Log.File
	if path == "" {
		return fallback, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	e.shutdown.OnShutdown(func(context.Context) error { return f.Close() })
	return f, nil
}

// Close runs the shutdown hooks: metrics are written, then the store and
// the log file are closed.
func (e *engine) Close() error {
	return e.shutdown.Run()
}
