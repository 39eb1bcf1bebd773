// Package metric provides Prometheus metrics for vmadmin.
//
//   - prometheus.go: command counters and latency histogram, textfile export
//   - collector.go: build information collector
//
// vmadmin does not listen on the network. When a textfile path is
// configured, the registry is written once at shutdown in the format read
// by the node_exporter textfile collector.
package metric
