// Package config loads the typofix configuration. Layers are merged in
// order: hard-coded defaults, the embedded typofix.toml, a user config
// file (TOML or YAML, from the working directory or the XDG config
// dir), and TYPOFIX_-prefixed environment variables. Later layers win.
package config
