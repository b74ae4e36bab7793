package posts

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"travelhub/middleware"
	"travelhub/models"
	"travelhub/rdx"
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

// POST /api/posts
func (h *Handler) CreatePost(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req CreatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	post, err := h.svc.Create(ctx, middleware.GetUserID(r), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	created := []models.Post{post}
	hydrateUsernames(ctx, created)
	utils.RespondSuccess(w, http.StatusCreated, created[0])
}

// GET /api/posts
func (h *Handler) ListPosts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := r.URL.Query()
	page, limit := utils.ParsePagination(r)
	filter := ListFilter{
		Tags:     utils.SplitTags(q.Get("tag")),
		Location: q.Get("location"),
		GroupID:  q.Get("group"),
		Sort:     q.Get("sort"),
		Page:     page,
		Limit:    limit,
	}

	list, total, err := h.svc.List(ctx, middleware.GetUserID(r), filter)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	hydrateUsernames(ctx, list)
	utils.RespondList(w, list, total, page, limit)
}

// GET /api/posts/:id
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	post, err := h.svc.Get(ctx, ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, post)
}

// PUT /api/posts/:id
func (h *Handler) UpdatePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req UpdatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	post, err := h.svc.Update(ctx, middleware.GetUserID(r), ps.ByName("id"), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, post)
}

// DELETE /api/posts/:id
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	err := h.svc.Delete(ctx, middleware.GetUserID(r), middleware.GetRoles(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Post deleted")
}

// POST and DELETE /api/posts/:id/like both flip membership.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	result, err := h.svc.ToggleLike(ctx, middleware.GetUserID(r), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, result)
}

// POST /api/posts/:id/comment
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.svc.AddComment(ctx, middleware.GetUserID(r), ps.ByName("id"), req.Content)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, comment)
}

// PUT /api/posts/:id/comment/:cid
func (h *Handler) UpdateComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	comment, err := h.svc.UpdateComment(ctx, middleware.GetUserID(r), ps.ByName("id"), ps.ByName("cid"), req.Content)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, comment)
}

// DELETE /api/posts/:id/comment/:cid
func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	err := h.svc.DeleteComment(ctx, middleware.GetUserID(r), middleware.GetRoles(r), ps.ByName("id"), ps.ByName("cid"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondMessage(w, http.StatusOK, "Comment deleted")
}

// POST /api/posts/:id/comment/:cid/reply
func (h *Handler) AddReply(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	var req CommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	reply, err := h.svc.AddReply(ctx, middleware.GetUserID(r), ps.ByName("id"), ps.ByName("cid"), req.Content)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusCreated, reply)
}

// GET /api/users/my-comments
func (h *Handler) MyComments(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	comments, err := h.svc.ListUserComments(ctx, middleware.GetUserID(r))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondSuccess(w, http.StatusOK, comments)
}

// GET /api/tags/trending
func (h *Handler) TrendingTags(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := requestCtx(r)
	defer cancel()

	entries, err := rdx.TrendingTags(ctx, 20)
	if err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "trending unavailable")
		return
	}

	type trendingTag struct {
		Tag   string `json:"tag"`
		Count int64  `json:"count"`
	}
	tags := make([]trendingTag, 0, len(entries))
	for _, z := range entries {
		if name, ok := z.Member.(string); ok {
			tags = append(tags, trendingTag{Tag: name, Count: int64(z.Score)})
		}
	}
	utils.RespondSuccess(w, http.StatusOK, tags)
}

// hydrateUsernames fills display names from the Redis user hash;
// stored usernames win only when the cache has nothing.
func hydrateUsernames(ctx context.Context, list []models.Post) {
	idSet := make(map[string]struct{})
	for _, p := range list {
		idSet[p.UserID] = struct{}{}
	}
	ids := make([]string, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := rdx.GetUsernames(ctx, ids)
	for i := range list {
		if name := names[list[i].UserID]; name != "" {
			list[i].Username = name
		}
	}
}
