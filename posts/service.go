package posts

import (
	"context"
	"time"

	"travelhub/apperrors"
	"travelhub/middleware"
	"travelhub/models"
	"travelhub/mq"
	"travelhub/prefs"
	"travelhub/utils"
)

// PrefsSource supplies the viewer's content preferences for feed
// composition. A nil source means no filtering.
type PrefsSource interface {
	Get(ctx context.Context, userID string) (models.Prefs, error)
}

type Service struct {
	store        Store
	prefsSource  PrefsSource
	filterPolicy prefs.FilterPolicy
}

func NewService(store Store, prefsSource PrefsSource, policy prefs.FilterPolicy) *Service {
	return &Service{store: store, prefsSource: prefsSource, filterPolicy: policy}
}

func (s *Service) Create(ctx context.Context, authorID string, req CreatePostRequest) (models.Post, error) {
	req.trim()
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Post{}, err
	}

	post := models.Post{
		PostID:    utils.GetUUID(),
		UserID:    authorID,
		Content:   req.Content,
		Images:    req.Images,
		Location:  req.Location,
		Tags:      utils.NormalizeTags(req.Tags),
		Likes:     []string{},
		Comments:  []models.Comment{},
		GroupID:   req.GroupID,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if post.Images == nil {
		post.Images = []string{}
	}

	if err := s.store.Create(ctx, post); err != nil {
		return models.Post{}, err
	}

	mq.Emit(ctx, mq.Event{EntityType: "post", EntityID: post.PostID, Method: "POST", UserID: authorID, Tags: post.Tags})
	return post, nil
}

// List composes the feed for a viewer. Soft-deleted posts never
// appear; an authenticated viewer's preferences shape the result.
// Preference filtering runs over the whole candidate set before
// pagination, so the reported total and the page contents agree no
// matter which page is requested.
func (s *Service) List(ctx context.Context, viewerID string, filter ListFilter) ([]models.Post, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 10
	}
	// stored tags are lowercase, so the filter must be too
	filter.Tags = utils.NormalizeTags(filter.Tags)

	candidates, total, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if viewerID != "" && s.prefsSource != nil {
		viewerPrefs, err := s.prefsSource.Get(ctx, viewerID)
		if err == nil {
			before := len(candidates)
			candidates = prefs.FilterPosts(candidates, viewerPrefs, s.filterPolicy)
			total -= int64(before - len(candidates))
		}
	}
	return paginate(candidates, filter.Page, filter.Limit), total, nil
}

func (s *Service) Get(ctx context.Context, postID string) (models.Post, error) {
	post, err := s.store.Get(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if !post.IsActive {
		return models.Post{}, apperrors.ErrNotFound
	}
	return post, nil
}

// Update is author-only; an admin may remove content but not rewrite it.
func (s *Service) Update(ctx context.Context, actorID, postID string, req UpdatePostRequest) (models.Post, error) {
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Post{}, err
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return models.Post{}, err
	}
	if !middleware.Owns(actorID, post.UserID) {
		return models.Post{}, apperrors.ErrForbidden
	}

	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Images != nil {
		post.Images = *req.Images
	}
	if req.Location != nil {
		post.Location = *req.Location
	}
	if req.Tags != nil {
		post.Tags = utils.NormalizeTags(*req.Tags)
	}

	if err := s.store.Replace(ctx, post); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// Delete soft-deletes; author or admin.
func (s *Service) Delete(ctx context.Context, actorID string, roles []string, postID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}
	if !middleware.CanDelete(actorID, post.UserID, roles) {
		return apperrors.ErrForbidden
	}

	post.IsActive = false
	if err := s.store.Replace(ctx, post); err != nil {
		return err
	}
	mq.Emit(ctx, mq.Event{EntityType: "post", EntityID: postID, Method: "DELETE", UserID: actorID})
	return nil
}

type LikeResult struct {
	Likes int  `json:"likes"`
	Liked bool `json:"liked"`
}

// ToggleLike flips the actor's membership in the like set. Toggling
// twice restores the original state.
func (s *Service) ToggleLike(ctx context.Context, actorID, postID string) (LikeResult, error) {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return LikeResult{}, err
	}

	liked := false
	if post.LikedBy(actorID) {
		// fresh slice: the old one may back a stored document
		likes := make([]string, 0, len(post.Likes))
		for _, id := range post.Likes {
			if id != actorID {
				likes = append(likes, id)
			}
		}
		post.Likes = likes
	} else {
		post.Likes = append(post.Likes, actorID)
		liked = true
	}

	if err := s.store.Replace(ctx, post); err != nil {
		return LikeResult{}, err
	}
	if liked {
		mq.Emit(ctx, mq.Event{EntityType: "like", EntityID: postID, Method: "POST", UserID: actorID, Tags: post.Tags})
	}
	return LikeResult{Likes: len(post.Likes), Liked: liked}, nil
}

func (s *Service) AddComment(ctx context.Context, actorID, postID, content string) (models.Comment, error) {
	req := CommentRequest{Content: content}
	req.trim()
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Comment{}, err
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}

	now := time.Now().UTC()
	comment := models.Comment{
		CommentID: utils.GetUUID(),
		UserID:    actorID,
		Content:   req.Content,
		Likes:     []string{},
		Replies:   []models.Reply{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	post.Comments = append(post.Comments, comment)

	if err := s.store.Replace(ctx, post); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// AddReply nests one level under a comment; replies cannot have replies.
func (s *Service) AddReply(ctx context.Context, actorID, postID, commentID, content string) (models.Reply, error) {
	req := CommentRequest{Content: content}
	req.trim()
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Reply{}, err
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return models.Reply{}, err
	}

	idx := findComment(post, commentID)
	if idx < 0 {
		return models.Reply{}, apperrors.ErrNotFound
	}

	reply := models.Reply{
		ReplyID:   utils.GetUUID(),
		UserID:    actorID,
		Content:   req.Content,
		Likes:     []string{},
		CreatedAt: time.Now().UTC(),
	}
	post.Comments[idx].Replies = append(post.Comments[idx].Replies, reply)

	if err := s.store.Replace(ctx, post); err != nil {
		return models.Reply{}, err
	}
	return reply, nil
}

func (s *Service) UpdateComment(ctx context.Context, actorID, postID, commentID, content string) (models.Comment, error) {
	req := CommentRequest{Content: content}
	req.trim()
	if err := utils.ValidateStruct(&req); err != nil {
		return models.Comment{}, err
	}

	post, err := s.Get(ctx, postID)
	if err != nil {
		return models.Comment{}, err
	}

	idx := findComment(post, commentID)
	if idx < 0 {
		return models.Comment{}, apperrors.ErrNotFound
	}
	if !middleware.Owns(actorID, post.Comments[idx].UserID) {
		return models.Comment{}, apperrors.ErrForbidden
	}

	post.Comments[idx].Content = req.Content
	post.Comments[idx].UpdatedAt = time.Now().UTC()

	if err := s.store.Replace(ctx, post); err != nil {
		return models.Comment{}, err
	}
	return post.Comments[idx], nil
}

func (s *Service) DeleteComment(ctx context.Context, actorID string, roles []string, postID, commentID string) error {
	post, err := s.Get(ctx, postID)
	if err != nil {
		return err
	}

	idx := findComment(post, commentID)
	if idx < 0 {
		return apperrors.ErrNotFound
	}
	if !middleware.CanDelete(actorID, post.Comments[idx].UserID, roles) {
		return apperrors.ErrForbidden
	}

	post.Comments = append(post.Comments[:idx], post.Comments[idx+1:]...)
	return s.store.Replace(ctx, post)
}

func (s *Service) ListByIDs(ctx context.Context, postIDs []string) ([]models.Post, error) {
	return s.store.ListByIDs(ctx, postIDs)
}

// UserComment is one comment or reply authored by a user, flattened
// across posts for the my-comments view.
type UserComment struct {
	PostID    string    `json:"postid"`
	CommentID string    `json:"commentid"`
	ReplyID   string    `json:"replyid,omitempty"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *Service) ListUserComments(ctx context.Context, userID string) ([]UserComment, error) {
	posts, err := s.store.ListByCommenter(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := []UserComment{}
	for _, post := range posts {
		for _, c := range post.Comments {
			if c.UserID == userID {
				out = append(out, UserComment{
					PostID:    post.PostID,
					CommentID: c.CommentID,
					Content:   c.Content,
					CreatedAt: c.CreatedAt,
				})
			}
			for _, rep := range c.Replies {
				if rep.UserID == userID {
					out = append(out, UserComment{
						PostID:    post.PostID,
						CommentID: c.CommentID,
						ReplyID:   rep.ReplyID,
						Content:   rep.Content,
						CreatedAt: rep.CreatedAt,
					})
				}
			}
		}
	}
	return out, nil
}

func findComment(post models.Post, commentID string) int {
	for i, c := range post.Comments {
		if c.CommentID == commentID {
			return i
		}
	}
	return -1
}
