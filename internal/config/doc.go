// Package config loads and validates setlist configuration.
//
// Configuration is TOML, resolved from an explicit path, then
// ~/.config/setlist/config.toml, then ./setlist.toml. Missing files fall back
// to defaults so the tool works out of the box.
package config
