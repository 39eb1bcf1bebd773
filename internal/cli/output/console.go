package output

import (
	"fmt"
	"io"
	"os"
)

// FarewellMessage is printed when the shell ends.
const FarewellMessage = "So long and thanks for all the fish"

// Console writes user-visible output. Errors and hints go to the error
// writer, everything else to the output writer.
type Console struct {
	out    io.Writer
	errOut io.Writer
	format Format
	styles styles
}

// Options configure a Console.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	Format Format
	Color  bool
}

// NewConsole creates a console. Nil writers default to stdout and stderr;
// an empty format means table.
func NewConsole(opts Options) *Console {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ErrOut == nil {
		opts.ErrOut = os.Stderr
	}
	if opts.Format == "" {
		opts.Format = FormatTable
	}
	return &Console{
		out:    opts.Out,
		errOut: opts.ErrOut,
		format: opts.Format,
		styles: newStyles(opts.Color),
	}
}

// Format returns the record format.
func (c *Console) Format() Format {
	return c.format
}

// Info prints a plain line.
func (c *Console) Info(format string, args ...any) {
	fmt.Fprintln(c.out, fmt.Sprintf(format, args...))
}

// Success prints a confirmation line.
func (c *Console) Success(format string, args ...any) {
	fmt.Fprintln(c.out, c.styles.success.Render(fmt.Sprintf(format, args...)))
}

// Header prints an underlined heading.
func (c *Console) Header(text string) {
	fmt.Fprintln(c.out, c.styles.header.Render(text))
}

// Command prints one "<name> - <description>" help entry.
func (c *Console) Command(name, description string) {
	fmt.Fprintf(c.out, "%s - %s\n", c.styles.command.Render(name), description)
}

// Usage prints the usage line of a command.
func (c *Console) Usage(usage string) {
	fmt.Fprintf(c.out, "Usage: %s\n", c.styles.command.Render(usage))
}

// Error prints "error: <msg>".
func (c *Console) Error(msg string) {
	fmt.Fprintln(c.errOut, c.styles.err.Render("error: "+msg))
}

// Hint prints a secondary line after an error.
func (c *Console) Hint(format string, args ...any) {
	fmt.Fprintln(c.errOut, c.styles.hint.Render(fmt.Sprintf(format, args...)))
}

// Farewell prints the closing line of the shell.
func (c *Console) Farewell() {
	fmt.Fprintln(c.out, c.styles.farewell.Render(FarewellMessage))
}

// Prompt prints the input prompt followed by a space, without a newline.
func (c *Console) Prompt(prompt string) {
	fmt.Fprint(c.out, c.styles.prompt.Render(prompt)+" ")
}

// Record prints a single record view in the console format.
func (c *Console) Record(view any) error {
	return c.formatter().Format(c.out, view)
}

// Listing prints a list. Table format renders t; json and yaml encode data.
func (c *Console) Listing(t *Table, data any) error {
	if c.format == FormatTable {
		return c.formatter().Format(c.out, t)
	}
	return c.formatter().Format(c.out, data)
}

func (c *Console) formatter() Formatter {
	if c.format == FormatTable {
		return &TableFormatter{HeaderStyle: func(s string) string { return c.styles.header.Render(s) }}
	}
	return NewFormatter(c.format)
}
