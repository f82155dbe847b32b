package main

import (
	"fmt"

	"github.com/babynumtime/babynumtime/internal/adapter"
	"github.com/babynumtime/babynumtime/internal/app"
	"github.com/babynumtime/babynumtime/internal/client"
	"github.com/babynumtime/babynumtime/internal/config"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/service"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewAgentLogger("babynumtime-agent")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	gateway, err := adapter.NewHTTPCloudGateway(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create cloud gateway")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	callbacks := service.SyncCallbacks{
		OnPush: func(err error) {
			if err != nil {
				log.Warn().Err(err).Msg(app.MsgSyncFailed)
			}
		},
		OnPull: func(data models.DataSnapshot, err error) {
			if err != nil {
				log.Warn().Err(err).Msg(app.MsgFetchFailed)
				return
			}
			log.Debug().Int("records", data.Count()).Msg("records pulled from backend")
		},
	}

	services := service.NewClientServices(localStorage, gateway, cfg.Workers.SyncInterval, callbacks, log)

	agent, err := client.NewApp(services, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init agent app error")
	}

	if err = agent.Run(); err != nil {
		log.Fatal().Err(err).Msg("agent run error")
	}
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
