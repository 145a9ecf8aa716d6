package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"hey-sweetie-print/models"
	"hey-sweetie-print/repository"
	"hey-sweetie-print/service"
)

// NewRootCommand builds the CLI. Flag defaults come from the environment.
func NewRootCommand() *cobra.Command {
	cfg := ConfigFromEnv()
	var mode string

	cmd := &cobra.Command{
		Use:   "hey-sweetie-print [orders.csv|orders.xlsx]",
		Short: "Print greeting-card messages and address labels from an order export",
		Long: `hey-sweetie-print reads an Etsy, Wix or bulk order export and creates two PDFs:
a sheet of personalised messages (6 per page) and a sheet of address labels (14 per page).
Orders with a quantity above one are printed once per unit.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				cfg.InputPath = args[0]
			}
			SetupLogger(cfg.LogLevel, cfg.LogJSON)

			modeSet := cmd.Flags().Changed("mode") || os.Getenv("SELECTION_MODE") != ""
			parsed, err := selectionMode(mode, modeSet, cfg.Select.IncludeToday)
			if err != nil {
				return err
			}
			cfg.Select.Mode = parsed

			return run(cmd, cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&mode, "mode", string(cfg.Select.Mode), "Selection policy: fulfillment or date-window")
	flags.BoolVar(&cfg.Select.IncludeToday, "include-today", cfg.Select.IncludeToday, "Also print orders sold today (implies --mode date-window unless --mode is given)")
	flags.StringVarP(&cfg.OutputDir, "output-dir", "o", cfg.OutputDir, "Directory the PDFs are written to")
	flags.StringVar(&cfg.LayoutConfigPath, "layout-config", cfg.LayoutConfigPath, "JSON file overriding layout constants")
	flags.StringVar(&cfg.MetricsFile, "metrics-file", cfg.MetricsFile, "Write run metrics to this Prometheus textfile")
	flags.StringVar(&cfg.FontPath, "font", cfg.FontPath, "Font file embedded into the messages document")
	flags.StringVar(&cfg.LogoPath, "label-logo", cfg.LogoPath, "Image printed on every address label")
	flags.BoolVar(&cfg.Upload, "upload", false, "Upload the PDFs to the Google Drive folder in DRIVE_FOLDER_ID")
	flags.DurationVar(&cfg.RenderTimeout, "render-timeout", cfg.RenderTimeout, "Timeout for rendering one document")
	flags.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error")
	flags.BoolVar(&cfg.LogJSON, "log-json", false, "Log as JSON")

	return cmd
}

// selectionMode resolves --mode. --include-today on its own picks the date window,
// since fulfillment selection never looks at sale dates.
func selectionMode(mode string, modeSet, includeToday bool) (models.SelectionMode, error) {
	parsed, err := models.ParseSelectionMode(mode)
	if err != nil {
		return "", err
	}
	if !includeToday {
		return parsed, nil
	}
	if !modeSet {
		return models.ModeDateWindow, nil
	}
	if parsed == models.ModeFulfillment {
		log.Warnf("⚠️  --include-today only applies to %s mode, ignoring it", models.ModeDateWindow)
	}
	return parsed, nil
}

func run(cmd *cobra.Command, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	startAt := time.Now()
	log.Infof("💌 Creating those messages from %s...", cfg.InputPath)

	application, err := Initialize(ctx, cfg)
	if err != nil {
		return err
	}

	source, err := repository.NewRowSource(cfg.InputPath)
	if err != nil {
		return err
	}

	summary, err := application.Printer.Print(ctx, service.PrintRequest{
		Source:        source,
		Select:        cfg.Select,
		StartAt:       startAt,
		DriveFolderID: cfg.DriveFolderID,
	})
	if err != nil && application.Metrics != nil {
		application.Metrics.MarkFailed()
	}
	if application.Metrics != nil {
		if werr := application.Metrics.WriteTextfile(cfg.MetricsFile); werr != nil {
			log.Warnf("⚠️  %v", werr)
		}
	}
	if err != nil {
		return fmt.Errorf("print run failed: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), Banner(summary))
	return nil
}
