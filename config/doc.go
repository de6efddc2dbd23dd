// Package config loads dsviz settings with viper.
//
// Sources, lowest precedence first: built-in defaults, a YAML file
// (dsviz.yaml in the working directory or $HOME/.config/dsviz, or an
// explicit path), then DSVIZ_* environment variables where dots in a key
// become underscores (playback.instant -> DSVIZ_PLAYBACK_INSTANT).
//
// Config.EngineOptions turns a loaded Config into command options shared
// by every engine.
package config
