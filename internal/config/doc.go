// Package config defines the editor settings and their validation.
//
// Settings come from three places, lowest priority first:
//
//  1. Built-in defaults (Default)
//  2. A settings file, TOML or YAML by extension (see package loader)
//  3. NOTEPAD_* environment variables (see loader.EnvLoader)
//
// Command line flags are applied on top by the caller.
//
// The watcher sub-package reloads the settings file when it changes on
// disk and hands the new Settings to a callback.
package config
