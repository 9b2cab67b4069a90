// Package config loads vicore's settings file.
//
// Settings live in a single TOML file, by default
// $XDG_CONFIG_HOME/vicore/config.toml:
//
//	[editor]
//	tab_width = 8
//	indent_width = 4
//	expand_tab = true
//	auto_indent = true
//	clipboard = true
//	watch_file = true
//
//	[undo]
//	max_groups = 1000
//
//	[log]
//	level = "info"
//	file = "/tmp/vicore.log"
//
//	[keymap.normal]
//	"Q" = "ZQ"
//	"<C-s>" = "ZZ"
//
// Unknown keys are an error so that typos do not silently fall back to
// defaults. A missing default file is not an error; Load returns Defaults.
//
// Command-line flags and VICORE_* environment variables are applied on top of
// the file by the vicore command, not by this package.
package config
