// Package config loads the service configuration.
//
// Values come from an optional config.yml, are overridden by environment
// variables and are validated using struct tags.
package config
