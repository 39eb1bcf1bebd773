// Package config holds the vmadmin configuration (~/.vmadmin/config.yaml).
//
//   - spec.go: Config struct, defaults and validation
//   - loader.go: layered loading (defaults, file, VMADMIN_* env, flags) and saving
package config
