package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-media-publisher/internal/config"
	"github.com/MKhiriev/go-media-publisher/internal/logger"
	"github.com/MKhiriev/go-media-publisher/internal/report"
	"github.com/MKhiriev/go-media-publisher/internal/service"
	"github.com/MKhiriev/go-media-publisher/models"
	"github.com/spf13/afero"
)

const appName = "doclinks"

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

	flags, err := config.ParseDocFlags(appName, args, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		return 1
	}

	log := logger.NewLogger(appName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	svc := service.NewDocumentService(afero.NewOsFs(), service.DocumentOptions{
		Title:   flags.Title,
		LinkURL: flags.LinkURL,
	}, log)

	err = svc.BuildLinkDocument(ctx, flags.OutputPath)
	fmt.Println(report.Document(flags.OutputPath, err))
	if err != nil {
		return 1
	}

	return 0
}
