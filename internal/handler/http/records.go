package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/seanhoyal/go-carbon-api/internal/logger"
	"github.com/seanhoyal/go-carbon-api/internal/service"
	"github.com/seanhoyal/go-carbon-api/internal/utils"
	"github.com/seanhoyal/go-carbon-api/models"
)

func (h *Handler) listRecords(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	records, err := h.services.RecordService.ListAll(ctx)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if records == nil {
		records = []models.Record{}
	}

	_, _ = utils.WriteJSON(w, records, http.StatusOK)
}

// getRecord answers with the stored record when one exists for the postcode,
// or with the live regional payload when the postcode is known upstream but
// not stored yet.
func (h *Handler) getRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lookup, err := h.services.RecordService.GetByPostcode(ctx, chi.URLParam(r, "postcode"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	if lookup.Record != nil {
		_, _ = utils.WriteJSON(w, lookup.Record, http.StatusOK)
		return
	}
	_, _ = utils.WriteJSON(w, lookup.Regional, http.StatusOK)
}

func (h *Handler) createRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var record models.Record
	if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON", service.ErrInvalidDataProvided))
		return
	}

	if err := h.services.RecordService.Create(ctx, record); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	log.Info().Int64("user_id", userID).Str("postcode", record.Postcode).Msg("record created by user")

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("created: /record/%s", service.NormalizePostcode(record.Postcode)),
	}, http.StatusCreated)
}

func (h *Handler) updateRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var update models.RecordUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON", service.ErrInvalidDataProvided))
		return
	}

	if err := h.services.RecordService.Update(ctx, update); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	log.Info().Int64("user_id", userID).Str("postcode", update.Postcode).Msg("record updated by user")

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("updated: /record/%s", service.NormalizePostcode(update.Postcode)),
	}, http.StatusOK)
}

func (h *Handler) deleteRecord(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: invalid JSON", service.ErrInvalidDataProvided))
		return
	}

	if err := h.services.RecordService.Delete(ctx, req.Postcode); err != nil {
		writeError(w, r, err)
		return
	}

	userID, _ := utils.GetUserIDFromContext(ctx)
	log.Info().Int64("user_id", userID).Str("postcode", req.Postcode).Msg("record deleted by user")

	_, _ = utils.WriteJSON(w, models.MessageResponse{
		Message: fmt.Sprintf("deleted: /record/%s", service.NormalizePostcode(req.Postcode)),
	}, http.StatusOK)
}
