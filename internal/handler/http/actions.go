package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/babynumtime/babynumtime/internal/app"
	"github.com/babynumtime/babynumtime/internal/logger"
	"github.com/babynumtime/babynumtime/internal/store"
	"github.com/babynumtime/babynumtime/internal/utils"
	"github.com/babynumtime/babynumtime/internal/validators"
	"github.com/babynumtime/babynumtime/models"
)

// actions is the single entry point of the record backend. Every operation is
// a POST carrying an action field; which other fields are required depends on
// the action.
func (h *Handler) actions(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.fail(w, r, app.MsgServerError, http.StatusInternalServerError)
		return
	}

	switch req.Action {
	case models.ActionCreateBaby:
		h.createBaby(w, r, req)
	case models.ActionGetBaby:
		h.getBaby(w, r, req)
	case models.ActionGetData:
		h.getData(w, r, req)
	case models.ActionSyncData:
		h.syncData(w, r, req)
	case models.ActionDeleteAllData:
		h.deleteAllData(w, r, req)
	default:
		log.Warn().Str("action", req.Action).Msg("unknown action requested")
		h.fail(w, r, app.MsgInvalidAction, http.StatusBadRequest)
	}
}

func (h *Handler) createBaby(w http.ResponseWriter, r *http.Request, req models.ActionRequest) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if req.BirthDate == "" {
		h.fail(w, r, app.MsgBirthDateRequired, http.StatusBadRequest)
		return
	}

	baby, err := h.services.RecordsService.CreateBaby(ctx, req.BirthDate, req.BabyName)
	if err != nil {
		switch {
		case errors.Is(err, validators.ErrInvalidBirthDate), errors.Is(err, validators.ErrEmptyBirthDate):
			log.Err(err).Msg("invalid birth date provided")
			h.fail(w, r, app.MsgBirthDateRequired, http.StatusBadRequest)
		default:
			log.Err(err).Msg("unexpected error occurred during baby creation")
			h.fail(w, r, app.MsgServerError, http.StatusInternalServerError)
		}
		return
	}

	h.respond(w, r, models.ActionResponse{Success: true, Baby: &baby}, http.StatusOK)
}

func (h *Handler) getBaby(w http.ResponseWriter, r *http.Request, req models.ActionRequest) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if req.BabyID == "" {
		h.fail(w, r, app.MsgBabyIDRequired, http.StatusBadRequest)
		return
	}

	baby, err := h.services.RecordsService.GetBaby(ctx, req.BabyID)
	if err != nil {
		h.failFromError(w, r, err)
		return
	}

	log.Debug().Str("babyId", baby.BabyID).Msg("baby profile fetched")
	h.respond(w, r, models.ActionResponse{Success: true, Baby: &baby}, http.StatusOK)
}

func (h *Handler) getData(w http.ResponseWriter, r *http.Request, req models.ActionRequest) {
	ctx := r.Context()

	if req.BabyID == "" {
		h.fail(w, r, app.MsgBabyIDRequired, http.StatusBadRequest)
		return
	}

	data, err := h.services.RecordsService.GetData(ctx, req.BabyID)
	if err != nil {
		h.failFromError(w, r, err)
		return
	}

	h.respond(w, r, models.ActionResponse{Success: true, Data: &data}, http.StatusOK)
}

func (h *Handler) syncData(w http.ResponseWriter, r *http.Request, req models.ActionRequest) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if req.BabyID == "" || req.Data == nil {
		h.fail(w, r, app.MsgBabyIDAndDataRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.RecordsService.SyncData(ctx, req.BabyID, *req.Data); err != nil {
		h.failFromError(w, r, err)
		return
	}

	log.Info().Str("babyId", req.BabyID).Msg("records replaced")
	h.respond(w, r, models.ActionResponse{Success: true}, http.StatusOK)
}

func (h *Handler) deleteAllData(w http.ResponseWriter, r *http.Request, req models.ActionRequest) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if req.BabyID == "" {
		h.fail(w, r, app.MsgBabyIDRequired, http.StatusBadRequest)
		return
	}

	if err := h.services.RecordsService.DeleteAllData(ctx, req.BabyID); err != nil {
		h.failFromError(w, r, err)
		return
	}

	log.Info().Str("babyId", req.BabyID).Msg("all records deleted")
	h.respond(w, r, models.ActionResponse{Success: true}, http.StatusOK)
}

// failFromError maps service errors of the read/write actions to the uniform
// error envelope: unknown baby is a 404, everything else a 500.
func (h *Handler) failFromError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	switch {
	case errors.Is(err, store.ErrBabyNotFound):
		log.Err(err).Msg("baby not found")
		h.fail(w, r, app.MsgBabyNotFound, http.StatusNotFound)
	default:
		log.Err(err).Msg("unexpected error occurred")
		h.fail(w, r, app.MsgServerError, http.StatusInternalServerError)
	}
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, resp models.ActionResponse, statusCode int) {
	if _, err := utils.WriteJSON(w, resp, statusCode); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, message string, statusCode int) {
	h.respond(w, r, models.ActionResponse{Success: false, Error: message}, statusCode)
}
