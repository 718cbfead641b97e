package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-media-publisher/internal/adapter"
	"github.com/MKhiriev/go-media-publisher/internal/config"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/report"
	"github.com/MKhiriev/go-media-publisher/internal/service"
	"github.com/MKhiriev/go-media-publisher/internal/validators"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/spf13/afero"
)

const appName = "uploader"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fmt.Println(report.BuildInfo(appName, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)))

	flags, err := config.ParseFlags(appName, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	log := logger.NewLogger(appName)
	if flags.JSONLogs {
		log = logger.NewJSONLogger(appName, os.Stdout)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.GetUploaderConfig(flags.ConfigPath)
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		return 1
	}

	log.Debug().
		Str("config_path", cfg.ConfigPath).
		Str("base_url", cfg.Adapter.BaseURL).
		Bool("proxy", cfg.Adapter.ProxyURL != "").
		Int64("max_image_size", cfg.Validation.MaxImageSize).
		Msg("received configs")

	fs := afero.NewOsFs()

	platform, err := adapter.NewHTTPPlatformAdapter(cfg.Adapter, fs, log)
	if err != nil {
		log.Error().Err(err).Msg("create platform adapter")
		return 1
	}

	validator := validators.NewImageValidator(fs, cfg.Validation.MaxImageSize, cfg.Validation.MaxImageSizeLabel)
	services := service.NewUploaderServices(platform, validator, log)

	result, err := services.PublishService.Publish(ctx, cfg.Credentials, flags.ImagePath)
	fmt.Println(report.Upload(result, err))
	if err != nil {
		return 1
	}

	return 0
}
