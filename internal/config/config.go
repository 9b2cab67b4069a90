package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/dshills/vicore/internal/input/key"
)

// FileName is the settings file name inside the config directory.
const FileName = "config.toml"

// Config holds every setting vicore reads from its settings file.
type Config struct {
	Editor EditorConfig `toml:"editor"`
	Undo   UndoConfig   `toml:"undo"`
	Log    LogConfig    `toml:"log"`
	Keymap KeymapConfig `toml:"keymap"`
}

// EditorConfig holds text editing settings.
type EditorConfig struct {
	// TabWidth is the display width of a tab stop.
	TabWidth int `toml:"tab_width"`

	// IndentWidth is the width of one indent level for >, < and auto-indent.
	IndentWidth int `toml:"indent_width"`

	// ExpandTab inserts spaces instead of tab characters.
	ExpandTab bool `toml:"expand_tab"`

	// AutoIndent copies indentation to new lines.
	AutoIndent bool `toml:"auto_indent"`

	// Clipboard backs the + and * registers with the system clipboard.
	Clipboard bool `toml:"clipboard"`

	// WatchFile reports changes made to the open file by other programs.
	WatchFile bool `toml:"watch_file"`
}

// UndoConfig holds undo history settings.
type UndoConfig struct {
	// MaxGroups bounds the number of undo steps kept.
	MaxGroups int `toml:"max_groups"`
}

// LogConfig holds diagnostic log settings.
type LogConfig struct {
	// Level is one of debug, info, warn or error.
	Level string `toml:"level"`

	// File is the log destination. Empty discards log output.
	File string `toml:"file"`
}

// KeymapConfig holds key remappings per mode. Keys and values use Vim key
// notation.
type KeymapConfig struct {
	Normal map[string]string `toml:"normal"`
}

// Remap is a parsed Normal-mode key mapping.
type Remap struct {
	From key.Event
	To   []key.Event
}

// Defaults returns the configuration used when no file is present.
func Defaults() *Config {
	return &Config{
		Editor: EditorConfig{
			TabWidth:    8,
			IndentWidth: 4,
			ExpandTab:   true,
			AutoIndent:  true,
			Clipboard:   true,
			WatchFile:   true,
		},
		Undo: UndoConfig{MaxGroups: 1000},
		Log:  LogConfig{Level: "info"},
	}
}

// DefaultPath returns the settings file location under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("locating config directory: %w", err)
	}
	return filepath.Join(dir, "vicore", FileName), nil
}

// Load reads the settings file at path over the defaults. An empty path
// loads DefaultPath, where a missing file yields Defaults; a named file must
// exist.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Defaults(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if explicit {
				return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
			}
			return Defaults(), nil
		}
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	defer f.Close()

	return decode(path, f)
}

// Parse decodes settings from r over the defaults.
func Parse(r io.Reader) (*Config, error) {
	return decode("<reader>", r)
}

func decode(source string, r io.Reader) (*Config, error) {
	cfg := Defaults()
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(cfg); err != nil {
		return nil, parseError(source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return cfg, nil
}

func parseError(source string, err error) error {
	pe := &ParseError{Path: source, Message: err.Error(), Err: err}

	var derr *toml.DecodeError
	var serr *toml.StrictMissingError
	switch {
	case errors.As(err, &derr):
		pe.Line, pe.Column = derr.Position()
	case errors.As(err, &serr):
		keys := make([]string, 0, len(serr.Errors))
		for _, e := range serr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		pe.Message = "unknown setting " + strings.Join(keys, ", ")
		if len(serr.Errors) > 0 {
			pe.Line, pe.Column = serr.Errors[0].Position()
		}
	}
	return pe
}

// Validate reports the first setting outside its allowed range.
func (c *Config) Validate() error {
	switch {
	case c.Editor.TabWidth < 1 || c.Editor.TabWidth > 32:
		return &ValidationError{Path: "editor.tab_width", Message: "must be between 1 and 32", Value: c.Editor.TabWidth}
	case c.Editor.IndentWidth < 1 || c.Editor.IndentWidth > 32:
		return &ValidationError{Path: "editor.indent_width", Message: "must be between 1 and 32", Value: c.Editor.IndentWidth}
	case c.Undo.MaxGroups < 1:
		return &ValidationError{Path: "undo.max_groups", Message: "must be positive", Value: c.Undo.MaxGroups}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return &ValidationError{Path: "log.level", Message: "must be debug, info, warn or error", Value: c.Log.Level}
	}

	if _, err := c.Remaps(); err != nil {
		return err
	}
	return nil
}

// Remaps parses the Normal-mode key map, ordered by source key.
func (c *Config) Remaps() ([]Remap, error) {
	froms := make([]string, 0, len(c.Keymap.Normal))
	for from := range c.Keymap.Normal {
		froms = append(froms, from)
	}
	sort.Strings(froms)

	remaps := make([]Remap, 0, len(froms))
	for _, from := range froms {
		path := "keymap.normal." + from
		ev, err := key.Parse(from)
		if err != nil {
			return nil, &ValidationError{Path: path, Message: "source must be a single key", Value: from}
		}
		to, err := key.ParseSequence(c.Keymap.Normal[from])
		if err != nil {
			return nil, &ValidationError{Path: path, Message: err.Error(), Value: c.Keymap.Normal[from]}
		}
		remaps = append(remaps, Remap{From: ev, To: to})
	}
	return remaps, nil
}
