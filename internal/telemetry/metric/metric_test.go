package metric

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRegistry_Observe(t *testing.T) {
	r := NewRegistry()

	r.Observe("create context", 2*time.Millisecond, false, "")
	r.Observe("create context", time.Millisecond, true, "VM-DATA-4090")
	r.Observe("show contexts", time.Millisecond, false, "")

	if got := testutil.ToFloat64(r.CommandsTotal.WithLabelValues("create context", ResultOK)); got != 1 {
		t.Errorf("create context ok = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.CommandsTotal.WithLabelValues("create context", ResultError)); got != 1 {
		t.Errorf("create context error = %v, want 1", got)
	}
	if got := testutil.ToFloat64(r.CommandErrors.WithLabelValues("VM-DATA-4090")); got != 1 {
		t.Errorf("conflict errors = %v, want 1", got)
	}
}

func TestRegistry_ObserveUnknownCode(t *testing.T) {
	r := NewRegistry()
	r.Observe("exit", 0, true, "")

	if got := testutil.ToFloat64(r.CommandErrors.WithLabelValues("unknown")); got != 1 {
		t.Errorf("unknown errors = %v, want 1", got)
	}
}

func TestRegistry_NilSafe(t *testing.T) {
	var r *Registry
	r.Observe("exit", 0, false, "")
	if err := r.WriteTextfile("/nonexistent/metrics.prom"); err != nil {
		t.Errorf("WriteTextfile on nil registry = %v", err)
	}
}

func TestRegistry_WriteTextfile(t *testing.T) {
	r := NewRegistry()
	r.Observe("show folders", time.Millisecond, false, "")

	path := filepath.Join(t.TempDir(), "vmadmin.prom")
	if err := r.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	for _, want := range []string{
		`vmadmin_shell_commands_total{command="show folders",result="ok"} 1`,
		"vmadmin_build_info",
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("textfile missing %q", want)
		}
	}
}

func TestRegistry_WriteTextfileEmptyPath(t *testing.T) {
	if err := NewRegistry().WriteTextfile(""); err != nil {
		t.Errorf("WriteTextfile(\"\") = %v", err)
	}
}

func TestCollector(t *testing.T) {
	if n := testutil.CollectAndCount(NewCollector()); n != 1 {
		t.Errorf("CollectAndCount = %d, want 1", n)
	}
}
