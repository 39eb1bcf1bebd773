// Package output renders everything the shell shows the operator.
//
// Console is the single user-visible sink: status lines, help text, errors
// and record views all go through it, never through the logger. Records
// and listings are rendered by a Formatter chosen by the output format:
//
//   - table: aligned columns (tabwriter), underlined header
//   - json: indented JSON
//   - yaml: YAML via gopkg.in/yaml.v3
//
// Styles come from lipgloss and are dropped when color is disabled or the
// writer is not a terminal.
package output
