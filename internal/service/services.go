package service

import (
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
)

type Services struct {
	RecordsService RecordsService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		RecordsService: NewRecordsService(storages.Records, logger),
	}
}
