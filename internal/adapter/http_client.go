package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/babynumtime/babynumtime/internal/config"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/models"
)

// sheetsEndpoint is the backend's single RPC endpoint. The name is kept from
// the spreadsheet era of the backend; the wire contract never changed.
const sheetsEndpoint = "/api/sheets"

type httpCloudGateway struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPCloudGateway constructs a [CloudGateway] speaking the action RPC
// over HTTP using the supplied adapter settings.
func NewHTTPCloudGateway(cfg config.ClientAdapter, log *logger.Logger) (CloudGateway, error) {
	if cfg.BaseURL == "" {
		return nil, config.ErrEmptyBaseURL
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpCloudGateway{client: cli, logger: log}, nil
}

func (h *httpCloudGateway) CreateBaby(ctx context.Context, birthDate, babyName string) (models.BabyProfile, error) {
	resp, err := h.call(ctx, models.ActionRequest{
		Action:    models.ActionCreateBaby,
		BirthDate: birthDate,
		BabyName:  babyName,
	})
	if err != nil {
		return models.BabyProfile{}, fmt.Errorf("create baby: %w", err)
	}
	if resp.Baby == nil {
		return models.BabyProfile{}, fmt.Errorf("create baby: %w: no baby in response", ErrInvalidResponse)
	}

	return *resp.Baby, nil
}

func (h *httpCloudGateway) GetBaby(ctx context.Context, babyID string) (models.BabyProfile, error) {
	resp, err := h.call(ctx, models.ActionRequest{
		Action: models.ActionGetBaby,
		BabyID: babyID,
	})
	if err != nil {
		return models.BabyProfile{}, fmt.Errorf("get baby: %w", err)
	}
	if resp.Baby == nil {
		return models.BabyProfile{}, fmt.Errorf("get baby: %w: no baby in response", ErrInvalidResponse)
	}

	return *resp.Baby, nil
}

func (h *httpCloudGateway) GetData(ctx context.Context, babyID string) (models.DataSnapshot, error) {
	resp, err := h.call(ctx, models.ActionRequest{
		Action: models.ActionGetData,
		BabyID: babyID,
	})
	if err != nil {
		return models.DataSnapshot{}, fmt.Errorf("get data: %w", err)
	}
	if resp.Data == nil {
		return models.DataSnapshot{}, fmt.Errorf("get data: %w: no data in response", ErrInvalidResponse)
	}

	// Collections missing from the response become empty lists instead of
	// failing the whole pull.
	snapshot := *resp.Data
	snapshot.Normalize()

	return snapshot, nil
}

func (h *httpCloudGateway) SyncData(ctx context.Context, babyID string, data models.DataSnapshot) error {
	data.Normalize()

	_, err := h.call(ctx, models.ActionRequest{
		Action: models.ActionSyncData,
		BabyID: babyID,
		Data:   &data,
	})
	if err != nil {
		return fmt.Errorf("sync data: %w", err)
	}

	return nil
}

func (h *httpCloudGateway) DeleteAllData(ctx context.Context, babyID string) error {
	_, err := h.call(ctx, models.ActionRequest{
		Action: models.ActionDeleteAllData,
		BabyID: babyID,
	})
	if err != nil {
		return fmt.Errorf("delete all data: %w", err)
	}

	return nil
}

// call posts one action request and decodes the uniform response envelope.
// Transport failures, non-2xx statuses, undecodable bodies, and
// success=false all come back as errors; the sentinel mapping lives in
// mapActionError.
func (h *httpCloudGateway) call(ctx context.Context, req models.ActionRequest) (models.ActionResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(sheetsEndpoint)
	if err != nil {
		return models.ActionResponse{}, fmt.Errorf("%s request: %w", req.Action, err)
	}

	var parsed models.ActionResponse
	if err = json.Unmarshal(resp.Body(), &parsed); err != nil {
		h.logger.Err(err).
			Str("action", req.Action).
			Int("status", resp.StatusCode()).
			Msg("undecodable backend response")
		return models.ActionResponse{}, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}

	if err = mapActionError(resp, parsed); err != nil {
		return models.ActionResponse{}, err
	}

	return parsed, nil
}

// mapActionError translates a response into a sentinel error. A non-true
// success flag and a non-2xx status are treated identically; the status code
// only refines which sentinel applies.
func mapActionError(resp *resty.Response, parsed models.ActionResponse) error {
	if parsed.Success && resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := parsed.Error
	if msg == "" {
		msg = http.StatusText(resp.StatusCode())
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrBabyNotFound, msg)
	case http.StatusInternalServerError:
		if strings.Contains(strings.ToLower(msg), "konfigur") {
			return fmt.Errorf("%w: %s", ErrNotConfigured, msg)
		}
	}

	return fmt.Errorf("backend error (http %d): %s", resp.StatusCode(), msg)
}
