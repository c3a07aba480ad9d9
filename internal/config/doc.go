// Package config loads the handydiet configuration file.
//
// # Overview
//
// One TOML file configures both halves of the program: where the viewer
// fetches the dataset from, and where the server listens and which dataset
// file it serves. Override state storage is configured here too.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/handydiet/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//  5. A PORT environment variable replaces the port of listen
//
// # TOML Format
//
//	api_url    = "http://127.0.0.1:3000"
//	listen     = "127.0.0.1:3000"
//	data_file  = "~/.local/share/handydiet/diet_data.json"
//	static_dir = ""
//
//	[storage]
//	backend = "file"   # file | sqlite | memory
//	path    = "~/.local/share/handydiet"
//
// Every field is optional. data_file may name a .json or .yaml/.yml file.
// An unknown storage backend is a parse error.
//
// # Path Expansion
//
// data_file, static_dir and storage.path accept:
//
//   - Absolute paths: Used as-is ("/srv/handydiet")
//   - Tilde paths: Expanded to home directory ("~/.local/share/handydiet")
//   - Relative paths: Converted to absolute based on current directory
//
// The viewer's log file lives next to the override state, see LogPath.
package config
