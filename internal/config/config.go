// internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"

	"github.com/bonihachi/sql-generator/internal/query"
)

// Config represents the application configuration
type Config struct {
	TablesDir      string `toml:"tables_dir"`
	HidePreview    bool   `toml:"hide_preview"`
	HighlightStyle string `toml:"highlight_style"`
	Theme          Theme  `toml:"theme_colors"`
	Keys           KeyMap `toml:"keys"`

	path string
}

// Theme defines the color palette
type Theme struct {
	TextPrimary   string `toml:"text_primary"`
	TextSecondary string `toml:"text_secondary"`
	TextFaint     string `toml:"text_faint"`
	Accent        string `toml:"accent"`
	Success       string `toml:"success"`
	Error         string `toml:"error"`
	Highlight     string `toml:"highlight"`
	Warning       string `toml:"warning"`
	BgPrimary     string `toml:"bg_primary"`
	BgSecondary   string `toml:"bg_secondary"`
	CardBg        string `toml:"card_bg"`
	PopupBg       string `toml:"popup_bg"`
	BorderColor   string `toml:"border_color"`
}

// KeyMap defines key bindings. Key names follow bubbletea ("enter",
// "left", "ctrl+c", single characters).
type KeyMap struct {
	NextTab    []string `toml:"next_tab"`
	PrevTab    []string `toml:"prev_tab"`
	NextColumn []string `toml:"next_column"`
	PrevColumn []string `toml:"prev_column"`
	Quit       []string `toml:"quit"`
	Toggle     []string `toml:"toggle"`
	SelectAll  []string `toml:"select_all"`
	Edit       []string `toml:"edit"`
	Commit     []string `toml:"commit"`
	DeleteChar []string `toml:"delete_char"`
	Cancel     []string `toml:"cancel"`
	Abort      []string `toml:"abort"`
}

// DefaultConfig returns a config with default values
func DefaultConfig() *Config {
	b := query.DefaultBindings()
	return &Config{
		TablesDir:      "./tables",
		HighlightStyle: "nord",
		Theme: Theme{
			// Nord Theme Defaults
			TextPrimary:   "#D8DEE9",
			TextSecondary: "#81A1C1",
			TextFaint:     "#4C566A",
			Accent:        "#88C0D0",
			Success:       "#A3BE8C",
			Error:         "#BF616A",
			Highlight:     "#8FBCBB",
			Warning:       "#D08770",
			BgPrimary:     "#2E3440",
			BgSecondary:   "#3B4252",
			CardBg:        "#434C5E",
			PopupBg:       "#3B4252",
			BorderColor:   "#4C566A",
		},
		Keys: KeyMap{
			NextTab:    b.NextTab,
			PrevTab:    b.PreviousTab,
			NextColumn: b.NextColumn,
			PrevColumn: b.PreviousColumn,
			Quit:       b.Quit,
			Toggle:     b.Toggle,
			SelectAll:  b.SelectAll,
			Edit:       b.Edit,
			Commit:     b.Commit,
			DeleteChar: b.DeleteChar,
			Cancel:     b.Cancel,
			Abort:      b.Abort,
		},
	}
}

// ConfigPath returns the XDG-compliant config file path
func ConfigPath() (string, error) {
	return xdg.ConfigFile("sqlgen/config.toml")
}

// Load loads the config from the XDG location, creating it on first run
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// First run: create default
		cfg := DefaultConfig()
		cfg.path = path
		if err := cfg.Save(); err != nil {
			log.Printf("config: could not write defaults to %s: %v", path, err)
		}
		return cfg, nil
	}

	return LoadFile(path)
}

// LoadFile loads the config from an explicit path. Missing fields are
// filled from DefaultConfig.
func LoadFile(path string) (*Config, error) {
	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		log.Printf("config %s: ignoring unknown keys %v", path, undecoded)
	}
	cfg.path = path

	// Populate defaults for missing fields (migration)
	if cfg.applyDefaults() {
		log.Printf("config %s: filled missing fields with defaults", path)
	}

	return &cfg, nil
}

// applyDefaults fills empty fields and reports whether anything changed
func (c *Config) applyDefaults() bool {
	defaults := DefaultConfig()
	updated := false

	if c.TablesDir == "" {
		c.TablesDir = defaults.TablesDir
		updated = true
	}
	if c.HighlightStyle == "" {
		c.HighlightStyle = defaults.HighlightStyle
		updated = true
	}
	if c.Theme.TextPrimary == "" {
		c.Theme = defaults.Theme
		updated = true
	}

	fill := func(dst *[]string, def []string) {
		if len(*dst) == 0 {
			*dst = def
			updated = true
		}
	}
	fill(&c.Keys.NextTab, defaults.Keys.NextTab)
	fill(&c.Keys.PrevTab, defaults.Keys.PrevTab)
	fill(&c.Keys.NextColumn, defaults.Keys.NextColumn)
	fill(&c.Keys.PrevColumn, defaults.Keys.PrevColumn)
	fill(&c.Keys.Quit, defaults.Keys.Quit)
	fill(&c.Keys.Toggle, defaults.Keys.Toggle)
	fill(&c.Keys.SelectAll, defaults.Keys.SelectAll)
	fill(&c.Keys.Edit, defaults.Keys.Edit)
	fill(&c.Keys.Commit, defaults.Keys.Commit)
	fill(&c.Keys.DeleteChar, defaults.Keys.DeleteChar)
	fill(&c.Keys.Cancel, defaults.Keys.Cancel)
	fill(&c.Keys.Abort, defaults.Keys.Abort)

	return updated
}

// Path returns the file the config was loaded from, if any
func (c *Config) Path() string {
	return c.path
}

// Save writes the config to the path it was loaded from
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		p, err := ConfigPath()
		if err != nil {
			return err
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(c)
}

// Bindings converts the configured keys into dispatch table bindings
func (k KeyMap) Bindings() query.Bindings {
	return query.Bindings{
		NextTab:        k.NextTab,
		PreviousTab:    k.PrevTab,
		NextColumn:     k.NextColumn,
		PreviousColumn: k.PrevColumn,
		Quit:           k.Quit,
		Toggle:         k.Toggle,
		SelectAll:      k.SelectAll,
		Edit:           k.Edit,
		Commit:         k.Commit,
		DeleteChar:     k.DeleteChar,
		Cancel:         k.Cancel,
		Abort:          k.Abort,
	}
}
