// Package config provides configuration types and loading for sandbox-ctl.
//
// # Configuration File
//
// Settings are read from config.toml in the user config directory
// ($XDG_CONFIG_HOME/sandbox-ctl on Unix). A missing file yields defaults.
//
//	api_url      = "https://api.example.com/api/v1"
//	web_url      = "https://example.com"
//	token        = "..."
//	open_command = "xdg-open"
//	timeout      = "30s"
//
//	[server]
//	listen  = ":8080"
//	catalog = "presets.toml"
//	author  = "ives"
//
// Command-line flags override file values.
package config
