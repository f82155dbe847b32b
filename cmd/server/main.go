package main

import (
	"context"
	"fmt"

	"github.com/babynumtime/babynumtime/internal/app"
	"github.com/babynumtime/babynumtime/internal/config"
	myHTTP "github.com/babynumtime/babynumtime/internal/handler/http"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/server"
	"github.com/babynumtime/babynumtime/internal/service"
	"github.com/babynumtime/babynumtime/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("babynumtime-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg(app.MsgServerMisconfigured)
	}

	services := service.NewServices(storages, log)
	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
