package output

import (
	"bytes"
	"strings"
	"testing"
)

func newTestConsole(format Format) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return NewConsole(Options{Out: &out, ErrOut: &errOut, Format: format}), &out, &errOut
}

func TestConsole_Lines(t *testing.T) {
	c, out, errOut := newTestConsole(FormatTable)

	c.Success("Successfully created context '%s'", "domain.com")
	c.Command("exit", "Exits the administrator tool.")
	c.Usage("help [command]")
	c.Farewell()
	c.Error("Context 'x' not found.")
	c.Hint("Did you mean: %s", "show contexts")

	wantOut := "" +
		"Successfully created context 'domain.com'\n" +
		"exit - Exits the administrator tool.\n" +
		"Usage: help [command]\n" +
		FarewellMessage + "\n"
	if out.String() != wantOut {
		t.Errorf("out =\n%q\nwant\n%q", out.String(), wantOut)
	}

	wantErr := "error: Context 'x' not found.\nDid you mean: show contexts\n"
	if errOut.String() != wantErr {
		t.Errorf("errOut = %q, want %q", errOut.String(), wantErr)
	}
}

func TestConsole_Prompt(t *testing.T) {
	c, out, _ := newTestConsole(FormatTable)
	c.Prompt("=>")
	if out.String() != "=> " {
		t.Errorf("Prompt wrote %q", out.String())
	}
}

func TestConsole_Listing(t *testing.T) {
	type row struct {
		Domain string `json:"domain"`
	}
	data := []row{{"a.com"}, {"b.com"}}
	tbl := NewTable("domain")
	for _, r := range data {
		tbl.AddRow(r.Domain)
	}

	tests := []struct {
		format Format
		want   string
	}{
		{FormatTable, "domain\na.com\nb.com\n"},
		{FormatJSON, "[\n  {\n    \"domain\": \"a.com\"\n  },\n  {\n    \"domain\": \"b.com\"\n  }\n]\n"},
		{FormatYAML, "- domain: a.com\n- domain: b.com\n"},
	}

	for _, tt := range tests {
		t.Run(string(tt.format), func(t *testing.T) {
			c, out, _ := newTestConsole(tt.format)
			if err := c.Listing(tbl, data); err != nil {
				t.Fatal(err)
			}
			if out.String() != tt.want {
				t.Errorf("Listing() = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestConsole_Record(t *testing.T) {
	type view struct {
		Name string `json:"name" yaml:"name"`
		DTMF string `json:"dtmf" yaml:"dtmf"`
	}

	c, out, _ := newTestConsole(FormatTable)
	if err := c.Record(view{Name: "INBOX", DTMF: "0"}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "name:  INBOX") {
		t.Errorf("Record() = %q", out.String())
	}
}

func TestNewConsole_Defaults(t *testing.T) {
	c := NewConsole(Options{})
	if c.Format() != FormatTable {
		t.Errorf("Format() = %q, want table", c.Format())
	}
	if c.out == nil || c.errOut == nil {
		t.Error("writers not defaulted")
	}
}
