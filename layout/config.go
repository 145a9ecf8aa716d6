package layout

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/log"
)

// ErrInvalidConfig is returned when a layout configuration fails validation
var ErrInvalidConfig = errors.New("invalid layout config")

// cssColor accepts named colors, hex codes and the rgb()/hsl() functions. Nothing that
// could close a declaration (";", "}", quotes) gets through.
var cssColor = regexp.MustCompile(`^(?:[a-zA-Z]+|#(?:[0-9a-fA-F]{3,4}|[0-9a-fA-F]{6}|[0-9a-fA-F]{8})|(?:rgba?|hsla?)\([0-9a-zA-Z.,%/+\- ]*\))$`)

// ValidColor reports whether s can be used as a CSS color value
func ValidColor(s string) bool {
	return cssColor.MatchString(s)
}

// Config holds the layout constants for both documents.
// Treat it as immutable once passed to NewEngine.
type Config struct {
	MessagesPerPage  int     `json:"messagesPerPage"`
	LabelsPerPage    int     `json:"labelsPerPage"`
	MaxMessageLength int     `json:"maxMessageLength"`
	LineBreakWeight  int     `json:"lineBreakWeight"`
	MinFontSize      float64 `json:"minFontSize"`
	MaxFontSize      float64 `json:"maxFontSize"`
	BorderColor      string  `json:"borderColor"`
	TextColor        string  `json:"textColor"`
}

// MaxMessagesPerPage keeps message cells large enough to read on A4
const MaxMessagesPerPage = 12

// DefaultConfig returns the stock layout: 6 messages and 14 labels per page
func DefaultConfig() Config {
	return Config{
		MessagesPerPage:  6,
		LabelsPerPage:    14,
		MaxMessageLength: 250,
		LineBreakWeight:  15,
		MinFontSize:      1.25,
		MaxFontSize:      3,
		BorderColor:      "pink",
		TextColor:        "black",
	}
}

// LoadConfig reads a JSON file and overlays it on DefaultConfig.
// Keys missing from the file keep their default value.
func LoadConfig(configPath string) (Config, error) {
	cfg := DefaultConfig()

	if !filepath.IsAbs(configPath) {
		wd, err := os.Getwd()
		if err != nil {
			return cfg, fmt.Errorf("failed to get working directory: %w", err)
		}
		configPath = filepath.Join(wd, configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read layout config: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse layout config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	log.Infof("✅ Layout: loaded config from %s", configPath)
	return cfg, nil
}

// Validate checks that the constants describe a usable layout
func (c Config) Validate() error {
	if c.MessagesPerPage < 1 {
		return fmt.Errorf("%w: messagesPerPage must be positive", ErrInvalidConfig)
	}
	if c.LabelsPerPage < 1 {
		return fmt.Errorf("%w: labelsPerPage must be positive", ErrInvalidConfig)
	}
	if c.MaxMessageLength < 1 {
		return fmt.Errorf("%w: maxMessageLength must be positive", ErrInvalidConfig)
	}
	if c.LineBreakWeight < 0 {
		return fmt.Errorf("%w: lineBreakWeight must not be negative", ErrInvalidConfig)
	}
	if c.MessagesPerPage > MaxMessagesPerPage {
		return fmt.Errorf("%w: messagesPerPage must be at most %d", ErrInvalidConfig, MaxMessagesPerPage)
	}
	if !ValidColor(c.BorderColor) {
		return fmt.Errorf("%w: borderColor %q is not a CSS color", ErrInvalidConfig, c.BorderColor)
	}
	if !ValidColor(c.TextColor) {
		return fmt.Errorf("%w: textColor %q is not a CSS color", ErrInvalidConfig, c.TextColor)
	}
	if c.MinFontSize <= 0 || c.MaxFontSize < c.MinFontSize {
		return fmt.Errorf("%w: font sizes must satisfy 0 < min <= max (got %.2f..%.2f)", ErrInvalidConfig, c.MinFontSize, c.MaxFontSize)
	}
	return nil
}
