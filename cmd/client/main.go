package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/qa-demo-api/internal/adapter"
	"github.com/MKhiriev/qa-demo-api/internal/client"
	"github.com/MKhiriev/qa-demo-api/internal/config"
	"github.com/MKhiriev/qa-demo-api/internal/logger"
	"github.com/MKhiriev/qa-demo-api/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("qa-demo-smoke")
	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	apiAdapter, err := adapter.NewHTTPAPIAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create api adapter")
	}

	var app client.Client = client.NewApp(apiAdapter, cfg.Credentials, log)
	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("smoke run failed")
	}

	log.Info().Msg("smoke run passed")
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
