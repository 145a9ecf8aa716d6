package app

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"hey-sweetie-print/layout"
	"hey-sweetie-print/metrics"
	"hey-sweetie-print/service"
)

// App bundles the services wired for one run
type App struct {
	Config  Config
	Printer *service.PrintService
	Metrics *metrics.Registry
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg Config) (*App, error) {
	layoutConfig := layout.DefaultConfig()
	if cfg.LayoutConfigPath != "" {
		loaded, err := layout.LoadConfig(cfg.LayoutConfigPath)
		if err != nil {
			return nil, err
		}
		layoutConfig = loaded
	}
	engine, err := layout.NewEngine(layoutConfig)
	if err != nil {
		return nil, err
	}

	renderService, err := service.NewRenderService(service.RenderOptions{
		BorderColor:     layoutConfig.BorderColor,
		TextColor:       layoutConfig.TextColor,
		MessagesPerPage: layoutConfig.MessagesPerPage,
		LabelsPerPage:   layoutConfig.LabelsPerPage,
		FontPath:        cfg.FontPath,
		LogoPath:        cfg.LogoPath,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize render service: %w", err)
	}

	renderer := service.NewChromedpRenderer(service.ChromedpConfig{
		ExecPath:  cfg.ChromePath,
		RemoteURL: cfg.ChromeRemoteURL,
		Timeout:   cfg.RenderTimeout,
	})

	var opts []service.PrintOption

	var registry *metrics.Registry
	if cfg.MetricsFile != "" {
		registry = metrics.NewRegistry()
		opts = append(opts, service.WithMetrics(registry))
	}

	if cfg.Upload {
		driveService, err := service.NewDriveService(ctx, cfg.CredentialsPath)
		if err != nil {
			return nil, err
		}
		opts = append(opts, service.WithDrive(driveService))
		log.Infof("☁️  Documents will be uploaded to Drive folder %s", cfg.DriveFolderID)
	}

	printer := service.NewPrintService(engine, renderService, renderer, service.NewFileWriter(cfg.OutputDir), opts...)

	return &App{
		Config:  cfg,
		Printer: printer,
		Metrics: registry,
	}, nil
}
