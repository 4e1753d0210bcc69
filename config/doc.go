// Package config handles agency configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// It carries the agency identity, the stop-name upper-case allow-list and the
// routes whose headsigns are allowed to be non-descriptive.
package config
