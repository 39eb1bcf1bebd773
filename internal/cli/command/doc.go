// Package command defines the vmadmin process CLI on urfave/cli/v2.
//
//   - root.go: App, global flags, configuration loading
//   - engine.go: store, console, logger and dispatcher wiring
//   - shell.go: interactive shell (default command)
//   - exec.go: one admin command per process
//   - init.go: first-run configuration prompt
//   - createtables.go: schema creation
//   - version.go: build information
//
// Running vmadmin without a command starts the shell, or the init flow when
// no configuration file exists yet.
package command
