package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"hey-sweetie-print/models"
)

var (
	// ErrMissingInput is returned when no export file was given
	ErrMissingInput = errors.New("an order export file wasn't specified")
	// ErrMissingDriveConfig is returned when uploading without Drive settings
	ErrMissingDriveConfig = errors.New("uploading requires GOOGLE_APPLICATION_CREDENTIALS and DRIVE_FOLDER_ID")
)

// Config holds everything a print run needs
type Config struct {
	InputPath        string
	Select           models.SelectOptions
	OutputDir        string
	LayoutConfigPath string
	MetricsFile      string
	FontPath         string
	LogoPath         string
	ChromePath       string
	ChromeRemoteURL  string
	RenderTimeout    time.Duration
	Upload           bool
	DriveFolderID    string
	CredentialsPath  string
	LogLevel         string
	LogJSON          bool
}

// LoadEnv loads .env in development (ignores error if file doesn't exist).
// In production, variables should be set directly.
func LoadEnv() {
	if os.Getenv("ENV") == "production" {
		return
	}
	envPath := ".env"
	if err := godotenv.Load(envPath); err != nil {
		log.Debugf(".env file not found at %s, using system environment variables", envPath)
		return
	}
	log.Debugf("Loaded environment variables from %s", envPath)
}

// ConfigFromEnv builds the defaults that command-line flags start from
func ConfigFromEnv() Config {
	cfg := Config{
		Select:           models.SelectOptions{Mode: models.SelectionMode(getEnv("SELECTION_MODE", string(models.ModeFulfillment)))},
		OutputDir:        getEnv("OUTPUT_DIR", "pdf"),
		LayoutConfigPath: os.Getenv("LAYOUT_CONFIG"),
		MetricsFile:      os.Getenv("METRICS_FILE"),
		FontPath:         os.Getenv("FONT_PATH"),
		LogoPath:         os.Getenv("LABEL_LOGO_PATH"),
		ChromePath:       os.Getenv("CHROME_PATH"),
		ChromeRemoteURL:  os.Getenv("CHROME_REMOTE_URL"),
		RenderTimeout:    30 * time.Second,
		DriveFolderID:    os.Getenv("DRIVE_FOLDER_ID"),
		CredentialsPath:  os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
	cfg.Select.IncludeToday, _ = strconv.ParseBool(os.Getenv("INCLUDE_TODAY"))

	if raw := os.Getenv("RENDER_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.RenderTimeout = d
		} else {
			log.Warnf("⚠️  Ignoring invalid RENDER_TIMEOUT %q", raw)
		}
	}
	return cfg
}

// Validate checks the configuration before any processing starts
func (c Config) Validate() error {
	if c.InputPath == "" {
		return ErrMissingInput
	}
	if _, err := os.Stat(c.InputPath); err != nil {
		return fmt.Errorf("cannot read input file: %w", err)
	}
	if _, err := models.ParseSelectionMode(string(c.Select.Mode)); err != nil {
		return err
	}
	if c.Upload && (c.CredentialsPath == "" || c.DriveFolderID == "") {
		return ErrMissingDriveConfig
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
