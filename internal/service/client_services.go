package service

import (
	"time"

	"github.com/babynumtime/babynumtime/internal/adapter"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
)

type ClientServices struct {
	Records     RecordService
	Profile     ProfileService
	Portability PortabilityService
	Sync        SyncCoordinator
}

func NewClientServices(storages *store.ClientStorages, gateway adapter.CloudGateway, syncInterval time.Duration, callbacks SyncCallbacks, log *logger.Logger) *ClientServices {
	coordinator := NewSyncCoordinator(storages.RecordStore, gateway, syncInterval, callbacks, log)

	return &ClientServices{
		Records:     NewRecordService(storages.RecordStore, coordinator, log),
		Profile:     NewProfileService(storages.RecordStore, gateway, coordinator, log),
		Portability: NewPortabilityService(storages.RecordStore, log),
		Sync:        coordinator,
	}
}
