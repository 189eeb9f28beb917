// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from a YAML file with viper, overridden by BANGAZON_*
// environment variables and validated before use.
package config
