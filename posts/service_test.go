package posts

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"travelhub/apperrors"
	"travelhub/models"
	"travelhub/prefs"
	"travelhub/utils"
)

type stubPrefs struct {
	prefs models.Prefs
}

func (s stubPrefs) Get(_ context.Context, _ string) (models.Prefs, error) {
	return s.prefs, nil
}

func newTestService() (*Service, *MemoryStore) {
	store := NewMemoryStore()
	return NewService(store, nil, prefs.PolicyDeprioritize), store
}

func mustPost(t *testing.T, svc *Service, authorID string, req CreatePostRequest) models.Post {
	t.Helper()
	post, err := svc.Create(context.Background(), authorID, req)
	if err != nil {
		t.Fatalf("create post: %v", err)
	}
	return post
}

func TestCreatePost(t *testing.T) {
	svc, _ := newTestService()

	post := mustPost(t, svc, "u1", CreatePostRequest{
		Content: "  Sunset at Varkala  ",
		Tags:    []string{"Beach", "beach", " KERALA "},
	})
	if post.Content != "Sunset at Varkala" {
		t.Fatalf("content not trimmed: %q", post.Content)
	}
	if len(post.Tags) != 2 || post.Tags[0] != "beach" || post.Tags[1] != "kerala" {
		t.Fatalf("tags not normalized: %v", post.Tags)
	}
	if !post.IsActive {
		t.Fatal("new post must be active")
	}

	_, err := svc.Create(context.Background(), "u1", CreatePostRequest{Content: "   "})
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("blank content = %v, want ValidationError", err)
	}
}

func TestListFilterByTagIsCaseInsensitive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mustPost(t, svc, "u1", CreatePostRequest{Content: "ramen", Tags: []string{"Food", "Tokyo"}})
	mustPost(t, svc, "u1", CreatePostRequest{Content: "dunes", Tags: []string{"desert"}})

	for _, query := range []string{"food", "Food", "FOOD"} {
		list, total, err := svc.List(ctx, "", ListFilter{Tags: []string{query}})
		if err != nil {
			t.Fatalf("list tag %q: %v", query, err)
		}
		if total != 1 || len(list) != 1 || list[0].Content != "ramen" {
			t.Fatalf("tag %q matched %d posts", query, len(list))
		}
	}

	// a comma-separated query matches posts carrying any of the tags
	list, total, err := svc.List(ctx, "", ListFilter{Tags: utils.SplitTags("Food, desert")})
	if err != nil {
		t.Fatalf("list multi tag: %v", err)
	}
	if total != 2 || len(list) != 2 {
		t.Fatalf("multi tag matched %d posts (total %d), want 2", len(list), total)
	}
}

func TestToggleLikeRoundTrip(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	post := mustPost(t, svc, "author", CreatePostRequest{Content: "hi"})

	res, err := svc.ToggleLike(ctx, "u1", post.PostID)
	if err != nil {
		t.Fatalf("like: %v", err)
	}
	if !res.Liked || res.Likes != 1 {
		t.Fatalf("first toggle = %+v, want liked with 1", res)
	}

	res, err = svc.ToggleLike(ctx, "u1", post.PostID)
	if err != nil {
		t.Fatalf("unlike: %v", err)
	}
	if res.Liked || res.Likes != 0 {
		t.Fatalf("second toggle = %+v, want unliked with 0", res)
	}

	// independent actors do not clobber each other
	if _, err := svc.ToggleLike(ctx, "u1", post.PostID); err != nil {
		t.Fatalf("like u1: %v", err)
	}
	res, err = svc.ToggleLike(ctx, "u2", post.PostID)
	if err != nil {
		t.Fatalf("like u2: %v", err)
	}
	if res.Likes != 2 {
		t.Fatalf("likes = %d, want 2", res.Likes)
	}
}

func TestUpdatePostAuthorOnly(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	post := mustPost(t, svc, "author", CreatePostRequest{Content: "original"})

	edited := "edited"
	updated, err := svc.Update(ctx, "author", post.PostID, UpdatePostRequest{Content: &edited})
	if err != nil {
		t.Fatalf("author update: %v", err)
	}
	if updated.Content != "edited" {
		t.Fatalf("content = %q", updated.Content)
	}

	// even an admin may not rewrite someone else's words
	if _, err := svc.Update(ctx, "admin-user", post.PostID, UpdatePostRequest{Content: &edited}); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("foreign update = %v, want ErrForbidden", err)
	}
}

func TestDeletePost(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	post := mustPost(t, svc, "author", CreatePostRequest{Content: "gone soon"})

	if err := svc.Delete(ctx, "stranger", nil, post.PostID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("stranger delete = %v, want ErrForbidden", err)
	}
	if err := svc.Delete(ctx, "moderator", []string{"admin"}, post.PostID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}
	if _, err := svc.Get(ctx, post.PostID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("get after delete = %v, want ErrNotFound", err)
	}

	list, total, err := svc.List(ctx, "", ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 0 || len(list) != 0 {
		t.Fatalf("deleted post still listed: %v", list)
	}
}

func TestListSortOrders(t *testing.T) {
	store := NewMemoryStore()
	svc := NewService(store, nil, prefs.PolicyDeprioritize)
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []models.Post{
		{PostID: "old-popular", UserID: "a", Content: "x", IsActive: true,
			Likes:     []string{"1", "2", "3", "4", "5", "6", "7", "8"},
			CreatedAt: now.Add(-72 * time.Hour)},
		{PostID: "fresh-modest", UserID: "b", Content: "x", IsActive: true,
			Likes:     []string{"1", "2", "3"},
			CreatedAt: now.Add(-1 * time.Hour)},
		{PostID: "newest-quiet", UserID: "c", Content: "x", IsActive: true,
			Likes:     []string{},
			CreatedAt: now.Add(-10 * time.Minute)},
	}
	for _, p := range seed {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	assertOrder := func(sortBy string, want []string) {
		t.Helper()
		posts, _, err := svc.List(ctx, "", ListFilter{Sort: sortBy})
		if err != nil {
			t.Fatalf("list %s: %v", sortBy, err)
		}
		if len(posts) != len(want) {
			t.Fatalf("list %s returned %d posts", sortBy, len(posts))
		}
		for i, id := range want {
			if posts[i].PostID != id {
				t.Fatalf("%s order[%d] = %s, want %s", sortBy, i, posts[i].PostID, id)
			}
		}
	}

	assertOrder("latest", []string{"newest-quiet", "fresh-modest", "old-popular"})
	assertOrder("popular", []string{"old-popular", "fresh-modest", "newest-quiet"})
	// fresh post with modest likes beats the stale heavyweight
	assertOrder("trending", []string{"fresh-modest", "old-popular", "newest-quiet"})
}

func TestListAppliesViewerPrefs(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	seed := []models.Post{
		{PostID: "p-beach", UserID: "a", Content: "x", Tags: []string{"beach"}, IsActive: true, CreatedAt: now.Add(-1 * time.Minute)},
		{PostID: "p-crowds", UserID: "b", Content: "x", Tags: []string{"crowds"}, IsActive: true, CreatedAt: now.Add(-2 * time.Minute)},
		{PostID: "p-plain", UserID: "c", Content: "x", IsActive: true, CreatedAt: now.Add(-3 * time.Minute)},
		{PostID: "p-reported", UserID: "d", Content: "x", IsActive: true, CreatedAt: now.Add(-4 * time.Minute)},
	}
	for _, p := range seed {
		if err := store.Create(ctx, p); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	viewerPrefs := models.Prefs{
		InterestedTags:    []string{"beach"},
		NotInterestedTags: []string{"crowds"},
		ReportedPosts:     []models.ReportEntry{{PostID: "p-reported", Reason: "spam"}},
	}

	svc := NewService(store, stubPrefs{prefs: viewerPrefs}, prefs.PolicyDeprioritize)
	posts, total, err := svc.List(ctx, "viewer", ListFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 3 {
		t.Fatalf("total = %d, want 3", total)
	}
	got := []string{}
	for _, p := range posts {
		got = append(got, p.PostID)
	}
	want := []string{"p-beach", "p-plain", "p-crowds"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("feed order = %v, want %v", got, want)
		}
	}

	strict := NewService(store, stubPrefs{prefs: viewerPrefs}, prefs.PolicyExclude)
	posts, total, err = strict.List(ctx, "viewer", ListFilter{})
	if err != nil {
		t.Fatalf("strict list: %v", err)
	}
	if total != 2 || len(posts) != 2 {
		t.Fatalf("strict feed = %d posts (total %d), want 2", len(posts), total)
	}
	for _, p := range posts {
		if p.PostID == "p-crowds" || p.PostID == "p-reported" {
			t.Fatalf("excluded post leaked: %s", p.PostID)
		}
	}

	// anonymous viewers see everything
	anon := NewService(store, stubPrefs{prefs: viewerPrefs}, prefs.PolicyExclude)
	_, total, err = anon.List(ctx, "", ListFilter{})
	if err != nil {
		t.Fatalf("anon list: %v", err)
	}
	if total != 4 {
		t.Fatalf("anon total = %d, want 4", total)
	}
}

func TestListFiltersBeforePagination(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	// six posts, every other one tagged with something the viewer
	// does not want to see
	for i := 0; i < 6; i++ {
		tags := []string{"scenic"}
		if i%2 == 0 {
			tags = []string{"crowds"}
		}
		post := models.Post{
			PostID:    fmt.Sprintf("p%d", i),
			UserID:    "a",
			Content:   "x",
			Tags:      tags,
			IsActive:  true,
			CreatedAt: now.Add(-time.Duration(i) * time.Minute),
		}
		if err := store.Create(ctx, post); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	viewerPrefs := models.Prefs{NotInterestedTags: []string{"crowds"}}

	// exclude: the total and page fill reflect the filtered feed,
	// identically on every page
	strict := NewService(store, stubPrefs{prefs: viewerPrefs}, prefs.PolicyExclude)
	page1, total1, err := strict.List(ctx, "viewer", ListFilter{Page: 1, Limit: 3})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	page2, total2, err := strict.List(ctx, "viewer", ListFilter{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("page 2: %v", err)
	}
	if total1 != 3 || total2 != 3 {
		t.Fatalf("totals = %d/%d, want 3 on every page", total1, total2)
	}
	if len(page1) != 3 || len(page2) != 0 {
		t.Fatalf("pages = %d+%d posts, want 3+0", len(page1), len(page2))
	}
	for _, p := range page1 {
		if p.Tags[0] == "crowds" {
			t.Fatalf("excluded post leaked: %s", p.PostID)
		}
	}

	// deprioritize: demoted posts sink to the end of the feed, past
	// the page boundary
	soft := NewService(store, stubPrefs{prefs: viewerPrefs}, prefs.PolicyDeprioritize)
	page1, total1, err = soft.List(ctx, "viewer", ListFilter{Page: 1, Limit: 3})
	if err != nil {
		t.Fatalf("soft page 1: %v", err)
	}
	page2, _, err = soft.List(ctx, "viewer", ListFilter{Page: 2, Limit: 3})
	if err != nil {
		t.Fatalf("soft page 2: %v", err)
	}
	if total1 != 6 {
		t.Fatalf("soft total = %d, want 6", total1)
	}
	for _, p := range page1 {
		if p.Tags[0] == "crowds" {
			t.Fatalf("demoted post on page 1: %s", p.PostID)
		}
	}
	for _, p := range page2 {
		if p.Tags[0] != "crowds" {
			t.Fatalf("non-demoted post pushed to page 2: %s", p.PostID)
		}
	}
}

func TestToggleLikeLeavesSnapshotsIntact(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	post := mustPost(t, svc, "author", CreatePostRequest{Content: "hi"})

	if _, err := svc.ToggleLike(ctx, "u1", post.PostID); err != nil {
		t.Fatalf("like u1: %v", err)
	}
	if _, err := svc.ToggleLike(ctx, "u2", post.PostID); err != nil {
		t.Fatalf("like u2: %v", err)
	}

	snapshot, err := svc.Get(ctx, post.PostID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}

	// unliking must not write through the snapshot's backing array
	if _, err := svc.ToggleLike(ctx, "u1", post.PostID); err != nil {
		t.Fatalf("unlike u1: %v", err)
	}
	if len(snapshot.Likes) != 2 || snapshot.Likes[0] != "u1" || snapshot.Likes[1] != "u2" {
		t.Fatalf("snapshot mutated: %v", snapshot.Likes)
	}
}

func TestComments(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()
	post := mustPost(t, svc, "author", CreatePostRequest{Content: "post"})

	comment, err := svc.AddComment(ctx, "c1", post.PostID, "  nice place  ")
	if err != nil {
		t.Fatalf("add comment: %v", err)
	}
	if comment.Content != "nice place" {
		t.Fatalf("comment content = %q", comment.Content)
	}

	if _, err := svc.AddComment(ctx, "c1", post.PostID, "   "); err == nil {
		t.Fatal("blank comment accepted")
	}

	reply, err := svc.AddReply(ctx, "r1", post.PostID, comment.CommentID, "agreed")
	if err != nil {
		t.Fatalf("add reply: %v", err)
	}
	if reply.ReplyID == "" {
		t.Fatal("reply id missing")
	}
	if _, err := svc.AddReply(ctx, "r1", post.PostID, "missing-comment", "x"); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("reply to absent comment = %v, want ErrNotFound", err)
	}

	if _, err := svc.UpdateComment(ctx, "someone-else", post.PostID, comment.CommentID, "hijacked"); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("foreign comment edit = %v, want ErrForbidden", err)
	}
	updated, err := svc.UpdateComment(ctx, "c1", post.PostID, comment.CommentID, "really nice place")
	if err != nil {
		t.Fatalf("update comment: %v", err)
	}
	if updated.Content != "really nice place" {
		t.Fatalf("comment not updated: %q", updated.Content)
	}

	if err := svc.DeleteComment(ctx, "someone-else", nil, post.PostID, comment.CommentID); !errors.Is(err, apperrors.ErrForbidden) {
		t.Fatalf("foreign comment delete = %v, want ErrForbidden", err)
	}
	if err := svc.DeleteComment(ctx, "mod", []string{"admin"}, post.PostID, comment.CommentID); err != nil {
		t.Fatalf("admin comment delete: %v", err)
	}
	stored, err := svc.Get(ctx, post.PostID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(stored.Comments) != 0 {
		t.Fatalf("comment not removed: %+v", stored.Comments)
	}
}

func TestListUserComments(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	p1 := mustPost(t, svc, "author", CreatePostRequest{Content: "one"})
	p2 := mustPost(t, svc, "author", CreatePostRequest{Content: "two"})

	c1, err := svc.AddComment(ctx, "talker", p1.PostID, "first")
	if err != nil {
		t.Fatalf("comment p1: %v", err)
	}
	other, err := svc.AddComment(ctx, "other", p2.PostID, "unrelated")
	if err != nil {
		t.Fatalf("comment p2: %v", err)
	}
	if _, err := svc.AddReply(ctx, "talker", p2.PostID, other.CommentID, "a reply"); err != nil {
		t.Fatalf("reply p2: %v", err)
	}

	mine, err := svc.ListUserComments(ctx, "talker")
	if err != nil {
		t.Fatalf("list user comments: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("user comments = %d, want 2", len(mine))
	}
	var sawComment, sawReply bool
	for _, uc := range mine {
		if uc.CommentID == c1.CommentID && uc.ReplyID == "" {
			sawComment = true
		}
		if uc.PostID == p2.PostID && uc.ReplyID != "" {
			sawReply = true
		}
	}
	if !sawComment || !sawReply {
		t.Fatalf("missing entries: %+v", mine)
	}
}

func TestListByIDsSkipsInactive(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	keep := mustPost(t, svc, "a", CreatePostRequest{Content: "keep"})
	drop := mustPost(t, svc, "a", CreatePostRequest{Content: "drop"})
	if err := svc.Delete(ctx, "a", nil, drop.PostID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	got, err := svc.ListByIDs(ctx, []string{keep.PostID, drop.PostID, "ghost"})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(got) != 1 || got[0].PostID != keep.PostID {
		t.Fatalf("list by ids = %+v", got)
	}
}
