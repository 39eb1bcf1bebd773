package metric

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/yndnr/vmadmin-go/internal/infra/buildinfo"
)

// Collector exports vmadmin_build_info, a constant 1 labelled with the
// build information.
type Collector struct {
	desc *prometheus.Desc
}

// NewCollector creates a new build information collector.
func NewCollector() *Collector {
	return &Collector{
		desc: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "build_info"),
			"Build information of the running vmadmin binary.",
			[]string{"version", "commit", "go_version"},
			nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.desc
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	info := buildinfo.Get()
	ch <- prometheus.MustNewConstMetric(c.desc, prometheus.GaugeValue, 1,
		info.Version, info.Commit, info.GoVersion)
}
