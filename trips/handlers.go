package trips

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"travelhub/middleware"
	"travelhub/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

// POST /api/trips
func (h *Handler) CreateTrip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req CreateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	trip, err := h.svc.Create(ctx, middleware.GetUserID(r), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, trip)
}

// GET /api/trips
func (h *Handler) GetTrips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	page, limit := utils.ParsePagination(r)
	filter := ListFilter{
		Status: r.URL.Query().Get("status"),
		Page:   page,
		Limit:  limit,
	}

	trips, total, err := h.svc.List(ctx, middleware.GetUserID(r), filter)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondList(w, trips, total, page, limit)
}

// GET /api/trips/:id
func (h *Handler) GetTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	trip, err := h.svc.Get(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, trip)
}

// PUT /api/trips/:id
func (h *Handler) UpdateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req UpdateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	trip, err := h.svc.Update(ctx, middleware.GetUserID(r), ps.ByName("id"), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, trip)
}

// DELETE /api/trips/:id
func (h *Handler) DeleteTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	if err := h.svc.Delete(ctx, middleware.GetUserID(r), ps.ByName("id")); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Trip deleted")
}

// POST /api/trips/:id/duplicate
func (h *Handler) DuplicateTrip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	trip, err := h.svc.Duplicate(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, trip)
}

// PATCH /api/trips/:id/status
func (h *Handler) SetTripStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	trip, err := h.svc.SetStatus(ctx, middleware.GetUserID(r), ps.ByName("id"), req.Status)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, trip)
}
