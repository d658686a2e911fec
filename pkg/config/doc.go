// Package config loads the collections service configuration.
//
// Configuration is read from an optional YAML file (collections.yml under
// COLLECTIONS_CONFIG_PATH, default /etc/collections/config) and then
// overridden by COLLECTIONS_* environment variables. Each attribute tracks
// its source (default, file, or environment) for the "config show" command.
//
// Watch reloads the global configuration when the config file changes.
package config
