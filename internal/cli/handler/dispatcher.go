package handler

import (
	"context"
	"crypto/rand"
	"io"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/yndnr/vmadmin-go/internal/cli/repl"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
	"github.com/yndnr/vmadmin-go/internal/telemetry/metric"
)

// Dispatcher routes resolved commands to the handler of their action.
// It is not safe for concurrent use; the shell runs one command at a time.
type Dispatcher struct {
	set     *Set
	metrics *metric.Registry
	log     logger.Logger
	entropy io.Reader
}

// NewDispatcher creates a dispatcher. metrics may be nil.
func NewDispatcher(set *Set, metrics *metric.Registry, log logger.Logger) *Dispatcher {
	if log == nil {
		log = logger.Discard()
	}
	return &Dispatcher{
		set:     set,
		metrics: metrics,
		log:     log,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

// Dispatch runs cmd. A panicking handler is reported as an error and the
// shell keeps running.
func (d *Dispatcher) Dispatch(ctx context.Context, cmd repl.ResolvedCommand) (outcome repl.Outcome, err error) {
	id := d.newID()
	ctx = logger.WithCommandID(logger.WithLogger(ctx, d.log.With("command", cmd.Spec.Name)), id)
	log := logger.L(ctx)

	h, ok := d.set.Handler(cmd.Spec.Action)
	if !ok {
		err = domain.ErrMisconfiguredCommand.Detailf("Command '%s' has no handler.", cmd.Spec.Name)
		log.Error("command misconfigured", "action", cmd.Spec.Action.String())
		return repl.Continue, err
	}

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			err = domain.ErrMisconfiguredCommand.Detailf("Command '%s' failed: %v", cmd.Spec.Name, r)
			outcome = repl.Continue
		}
		elapsed := time.Since(start)
		d.metrics.Observe(cmd.Spec.Name, elapsed, err != nil, domain.GetErrorCode(err))
		args := auditArgs(cmd)
		if err != nil {
			log.Warn("command failed", "args", args, "code", domain.GetErrorCode(err), "error", err.Error(), "elapsed", elapsed)
			return
		}
		log.Info("command executed", "args", args, "elapsed", elapsed)
	}()

	return h(ctx, cmd)
}

func (d *Dispatcher) newID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), d.entropy)
	if err != nil {
		// Monotonic entropy overflows only after 2^80 IDs in one millisecond.
		return ulid.Make().String()
	}
	return id.String()
}

// auditArgs returns the tokens of cmd with the registry's redacted
// positions and any value following a sensitive key masked.
func auditArgs(cmd repl.ResolvedCommand) []string {
	args := logger.RedactArgs(cmd.Tokens)
	for _, pos := range cmd.Spec.Redact {
		if pos >= 0 && pos < len(args) {
			args[pos] = logger.RedactedValue
		}
	}
	return args
}
