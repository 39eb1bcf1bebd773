package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/yndnr/vmadmin-go/internal/cli/menu"
	"github.com/yndnr/vmadmin-go/internal/cli/output"
	"github.com/yndnr/vmadmin-go/internal/core/domain"
	"github.com/yndnr/vmadmin-go/internal/telemetry/logger"
)

// Outcome tells the loop whether to keep going.
type Outcome int

const (
	Continue Outcome = iota
	Terminate
)

func (o Outcome) String() string {
	if o == Terminate {
		return "terminate"
	}
	return "continue"
}

// Dispatcher runs a resolved command.
type Dispatcher interface {
	Dispatch(ctx context.Context, cmd ResolvedCommand) (Outcome, error)
}

// EmptyLinePolicy decides what a line without tokens does.
type EmptyLinePolicy string

const (
	// EmptyLineIgnore prompts again.
	EmptyLineIgnore EmptyLinePolicy = "ignore"
	// EmptyLineExit ends the shell as exit would.
	EmptyLineExit EmptyLinePolicy = "exit"
)

// ParseEmptyLinePolicy parses "ignore" or "exit".
func ParseEmptyLinePolicy(s string) (EmptyLinePolicy, error) {
	switch p := EmptyLinePolicy(strings.ToLower(s)); p {
	case EmptyLineIgnore, EmptyLineExit:
		return p, nil
	default:
		return "", fmt.Errorf("unknown empty line policy %q (want ignore or exit)", s)
	}
}

// DefaultPrompt is printed before each line when none is configured.
const DefaultPrompt = "=>"

// Config holds the REPL's collaborators and settings.
type Config struct {
	Registry   *menu.Registry
	Dispatcher Dispatcher
	Console    *output.Console
	Logger     logger.Logger

	// Input defaults to os.Stdin.
	Input io.Reader

	Prompt        string
	EmptyLine     EmptyLinePolicy
	CaseSensitive bool
	HistoryFile   string
	HistorySize   int
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input      io.Reader
	console    *output.Console
	log        logger.Logger
	resolver   *Resolver
	dispatcher Dispatcher
	completer  *Completer
	history    *History
	prompt     string
	emptyLine  EmptyLinePolicy
}

// New creates a REPL. Registry, Dispatcher and Console are required.
func New(cfg Config) *REPL {
	if cfg.Input == nil {
		cfg.Input = os.Stdin
	}
	if cfg.Logger == nil {
		cfg.Logger = logger.Discard()
	}
	if cfg.Prompt == "" {
		cfg.Prompt = DefaultPrompt
	}
	if cfg.EmptyLine == "" {
		cfg.EmptyLine = EmptyLineIgnore
	}

	return &REPL{
		input:      cfg.Input,
		console:    cfg.Console,
		log:        cfg.Logger,
		resolver:   NewResolver(cfg.Registry, cfg.CaseSensitive),
		dispatcher: cfg.Dispatcher,
		completer:  NewCompleter(cfg.Registry),
		history:    NewHistory(cfg.HistoryFile, cfg.HistorySize),
		prompt:     cfg.Prompt,
		emptyLine:  cfg.EmptyLine,
	}
}

type readResult struct {
	line string
	err  error
}

// readLines feeds input lines to the loop so a cancelled context can end
// it while a read is pending. The reader goroutine may stay blocked on the
// input until the process exits.
func (r *REPL) readLines(ctx context.Context) <-chan readResult {
	ch := make(chan readResult)
	go func() {
		defer close(ch)
		reader := bufio.NewReader(r.input)
		for {
			line, err := reader.ReadString('\n')
			if line != "" {
				select {
				case ch <- readResult{line: line}:
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				select {
				case ch <- readResult{err: err}:
				case <-ctx.Done():
				}
				return
			}
		}
	}()
	return ch
}

// Run starts the REPL loop. It returns nil when the shell ends through
// exit, end of input or ctx cancellation, and the error of a failed read
// otherwise.
func (r *REPL) Run(ctx context.Context) error {
	if err := r.history.Load(); err != nil {
		r.log.Warn("failed to load history", "file", r.history.file, "error", err)
	} else {
		r.log.Debug("history loaded", "file", r.history.file, "entries", r.history.Len())
	}
	defer func() {
		if err := r.history.Save(); err != nil {
			r.log.Warn("failed to save history", "file", r.history.file, "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines := r.readLines(ctx)

	for {
		r.console.Prompt(r.prompt)

		var res readResult
		select {
		case <-ctx.Done():
			r.console.Info("")
			r.console.Farewell()
			return nil
		case res = <-lines:
		}

		if res.err == io.EOF {
			r.console.Info("")
			r.console.Farewell()
			return nil
		}
		if res.err != nil {
			return fmt.Errorf("reading input: %w", res.err)
		}

		if r.Execute(ctx, res.line) == Terminate {
			return nil
		}
	}
}

// Execute runs one input line. Failures are reported on the console and
// never end the loop.
func (r *REPL) Execute(ctx context.Context, line string) Outcome {
	line = strings.TrimSpace(line)
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		if r.emptyLine == EmptyLineExit {
			r.console.Farewell()
			return Terminate
		}
		return Continue
	}

	r.history.Add(line)

	cmd, err := r.resolver.Resolve(line, tokens)
	if err != nil {
		r.console.Error(domain.Describe(err))
		if !domain.IsDomainError(err, domain.ErrUnknownCommand.Code) {
			return Continue
		}
		if suggestions := r.completer.Suggest(tokens); len(suggestions) > 0 {
			r.console.Hint("Did you mean: %s", strings.Join(suggestions, ", "))
		}
		return Continue
	}

	outcome, err := r.dispatcher.Dispatch(ctx, cmd)
	if err != nil {
		r.console.Error(domain.Describe(err))
		return Continue
	}
	return outcome
}
