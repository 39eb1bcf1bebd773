// Package confloader layers configuration sources with koanf.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables
//  3. Configuration file (YAML)
//  4. Defaults
//
// Keys are two-level and dotted ("store.provider"). Environment variables
// carry the prefix and use the first underscore as the level separator, so
// VMADMIN_SHELL_HISTORY_FILE sets shell.history_file.
package confloader
