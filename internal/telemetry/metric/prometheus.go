package metric

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vmadmin"

// Command results used as the "result" label.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds all application metrics.
type Registry struct {
	reg *prometheus.Registry

	CommandsTotal   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec
	CommandErrors   *prometheus.CounterVec
}

// NewRegistry creates the application metrics on a private registry.
func NewRegistry() *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shell",
			Name:      "commands_total",
			Help:      "Commands dispatched, by command key and result.",
		}, []string{"command", "result"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "shell",
			Name:      "command_duration_seconds",
			Help:      "Time spent executing a command, including store calls.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}, []string{"command"}),
		CommandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "shell",
			Name:      "command_errors_total",
			Help:      "Failed commands, by error code.",
		}, []string{"code"}),
	}

	r.reg.MustRegister(r.CommandsTotal, r.CommandDuration, r.CommandErrors, NewCollector())
	return r
}

// Observe records one dispatched command. code is the domain error code of
// a failure, empty on success or for errors without a code.
func (r *Registry) Observe(command string, elapsed time.Duration, failed bool, code string) {
	if r == nil {
		return
	}
	result := ResultOK
	if failed {
		result = ResultError
		if code == "" {
			code = "unknown"
		}
		r.CommandErrors.WithLabelValues(code).Inc()
	}
	r.CommandsTotal.WithLabelValues(command, result).Inc()
	r.CommandDuration.WithLabelValues(command).Observe(elapsed.Seconds())
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// Registerer lets other components (the badger store) add their own
// collectors. A nil Registry yields nil.
func (r *Registry) Registerer() prometheus.Registerer {
	if r == nil {
		return nil
	}
	return r.reg
}

// WriteTextfile writes the current metrics to path atomically.
// An empty path is a no-op.
func (r *Registry) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
