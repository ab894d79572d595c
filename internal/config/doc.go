// Package config handles loading and parsing napt's configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/napt/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// Missing config files are NOT an error - defaults are used instead. This
// lets napt work out-of-the-box against the public Napkin endpoint.
//
// # TOML Format
//
// Example config.toml (every field optional):
//
//	base_url = "https://app.napkin.one"
//	timeout_seconds = 30
//	data_dir = "~/.local/share/napt"
//	log_level = "info"
//	log_format = "json"
//
// # Environment Overlay
//
// A .env file in the config directory is loaded into the process
// environment before Load returns. This is where NAPKIN_EMAIL and
// NAPKIN_TOKEN overrides belong for users who prefer env-based credentials
// over the encrypted store.
//
// # Derived Paths
//
// Everything napt writes lives under data_dir:
//
//   - credentials / credentials.key: the sealed credential pair and its key
//   - history.db: the SQLite record of sent thoughts
//   - napt.log: the application log (the TUI owns the terminal)
//
// Tilde expansion and whitespace trimming are applied to all paths.
//
// # Design Philosophy
//
// The package is read-only and stateless - it loads configuration once at
// startup and returns an immutable Config struct. No global state or
// singleton patterns are used.
package config
