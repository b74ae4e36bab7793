package prefs

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"travelhub/middleware"
	"travelhub/models"
	"travelhub/utils"

	"github.com/julienschmidt/httprouter"
)

// PostLister resolves saved post ids to full posts.
type PostLister interface {
	ListByIDs(ctx context.Context, postIDs []string) ([]models.Post, error)
}

type Handler struct {
	svc   *Service
	posts PostLister
}

func NewHandler(svc *Service, posts PostLister) *Handler {
	return &Handler{svc: svc, posts: posts}
}

func requestCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 5*time.Second)
}

// GET /api/users/preferences
func (h *Handler) GetPreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	p, err := h.svc.Get(ctx, middleware.GetUserID(r))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, p)
}

// PUT /api/users/preferences
func (h *Handler) UpdatePreferences(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var changes TagChanges
	if err := json.NewDecoder(r.Body).Decode(&changes); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	p, err := h.svc.ApplyTagChanges(ctx, middleware.GetUserID(r), changes)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, p)
}

// POST and DELETE /api/posts/:id/save both flip membership.
func (h *Handler) ToggleSave(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	saved, err := h.svc.ToggleSave(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, map[string]bool{"saved": saved})
}

// POST /api/posts/:id/report
func (h *Handler) ReportPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var body struct {
		Reason string `json:"reason"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.ReportPost(ctx, middleware.GetUserID(r), ps.ByName("id"), body.Reason); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Report recorded")
}

// GET /api/users/saved-posts
func (h *Handler) SavedPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	p, err := h.svc.Get(ctx, middleware.GetUserID(r))
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	saved, err := h.posts.ListByIDs(ctx, p.SavedPosts)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, saved)
}
