// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/scene/logx"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Settings are the user settings of a [World], loaded from a TOML or
// YAML file.
type Settings struct {

	// LogLevel is the name of the [logx.UserLevel]: debug, info, warn, or error.
	LogLevel string `toml:"log_level" yaml:"log_level" default:"info"`

	// Viewport is the initial size of the default viewport.
	Viewport ViewportSettings `toml:"viewport" yaml:"viewport"`

	// Lens is the lens of cameras made with [World.NewCamera].
	Lens Lens `toml:"lens" yaml:"lens"`
}

// ViewportSettings is the size of a viewport in pixels.
type ViewportSettings struct {
	Width  int `toml:"width" yaml:"width" default:"1280"`
	Height int `toml:"height" yaml:"height" default:"720"`
}

// DefaultSettings returns the default settings.
func DefaultSettings() *Settings {
	s := &Settings{}
	s.Defaults()
	return s
}

// Defaults sets the default settings.
func (s *Settings) Defaults() {
	s.LogLevel = "info"
	s.Viewport = ViewportSettings{Width: 1280, Height: 720}
	s.Lens.Defaults()
}

// Validate returns an error if any setting is invalid.
func (s *Settings) Validate() error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(s.LogLevel))); err != nil {
		return fmt.Errorf("log level %q: %w", s.LogLevel, err)
	}
	if s.Viewport.Width < 0 || s.Viewport.Height < 0 {
		return fmt.Errorf("negative viewport size %dx%d", s.Viewport.Width, s.Viewport.Height)
	}
	return s.Lens.Validate()
}

// Apply applies the global parts of the settings, which is the log level.
func (s *Settings) Apply() {
	if !logx.SetLevelString(s.LogLevel) {
		slog.Warn("xyz.Settings: unknown log level", "level", s.LogLevel)
	}
}

// settingsFormat returns the format of a settings file from its extension.
func settingsFormat(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		return "toml", nil
	case ".yaml", ".yml":
		return "yaml", nil
	default:
		return "", fmt.Errorf("unsupported settings file extension %q", ext)
	}
}

// ParseSettings parses settings in the given format ("toml" or "yaml")
// on top of the defaults, and validates them.
func ParseSettings(data []byte, format string) (*Settings, error) {
	s := DefaultSettings()
	var err error
	switch format {
	case "toml":
		err = toml.Unmarshal(data, s)
	case "yaml":
		err = yaml.Unmarshal(data, s)
	default:
		err = fmt.Errorf("unsupported settings format %q", format)
	}
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// LoadSettings loads settings from the given file, in TOML or YAML
// depending on its extension. Missing fields keep their defaults.
func LoadSettings(path string) (*Settings, error) {
	format, err := settingsFormat(path)
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadSettings: %w", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadSettings: %w", err)
	}
	s, err := ParseSettings(data, format)
	if err != nil {
		return nil, fmt.Errorf("xyz.LoadSettings: %s: %w", path, err)
	}
	return s, nil
}

// SaveSettings saves settings to the given file, in TOML or YAML
// depending on its extension.
func SaveSettings(path string, s *Settings) error {
	format, err := settingsFormat(path)
	if err != nil {
		return fmt.Errorf("xyz.SaveSettings: %w", err)
	}
	var data []byte
	if format == "toml" {
		data, err = toml.Marshal(s)
	} else {
		data, err = yaml.Marshal(s)
	}
	if err != nil {
		return fmt.Errorf("xyz.SaveSettings: %w", err)
	}
	if err := os.WriteFile(path, data, 0666); err != nil {
		return fmt.Errorf("xyz.SaveSettings: %w", err)
	}
	return nil
}

// WatchSettings calls fn with the reloaded settings, or the load error,
// every time the given settings file is written or replaced, until ctx
// is done. The directory of the file is watched, so that editors
// replacing the file are noticed. fn is called on the watcher goroutine.
func WatchSettings(ctx context.Context, path string, fn func(s *Settings, err error)) error {
	path = filepath.Clean(path)
	if _, err := settingsFormat(path); err != nil {
		return fmt.Errorf("xyz.WatchSettings: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("xyz.WatchSettings: %w", err)
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return fmt.Errorf("xyz.WatchSettings: %w", err)
	}
	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path || !(event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) {
					continue
				}
				s, err := LoadSettings(path)
				fn(s, err)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Error("xyz.WatchSettings: watcher error: " + err.Error())
			}
		}
	}()
	return nil
}
