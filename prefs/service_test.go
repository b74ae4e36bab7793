package prefs

import (
	"context"
	"errors"
	"testing"

	"travelhub/apperrors"
)

func TestTagListsStayExclusive(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	p, err := svc.ApplyTagChanges(ctx, "u1", TagChanges{
		AddInterested: []string{"Beach", "beach", " hiking "},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(p.InterestedTags) != 2 || p.InterestedTags[0] != "beach" || p.InterestedTags[1] != "hiking" {
		t.Fatalf("interested = %v", p.InterestedTags)
	}

	// moving a tag to not-interested evicts it from interested
	p, err = svc.ApplyTagChanges(ctx, "u1", TagChanges{
		AddNotInterested: []string{"beach"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(p.InterestedTags) != 1 || p.InterestedTags[0] != "hiking" {
		t.Fatalf("interested after move = %v", p.InterestedTags)
	}
	if len(p.NotInterestedTags) != 1 || p.NotInterestedTags[0] != "beach" {
		t.Fatalf("notInterested = %v", p.NotInterestedTags)
	}

	// and back again
	p, err = svc.ApplyTagChanges(ctx, "u1", TagChanges{
		AddInterested: []string{"beach"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(p.NotInterestedTags) != 0 {
		t.Fatalf("notInterested after move back = %v", p.NotInterestedTags)
	}

	p, err = svc.ApplyTagChanges(ctx, "u1", TagChanges{
		RemoveInterested: []string{"hiking", "never-there"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(p.InterestedTags) != 1 || p.InterestedTags[0] != "beach" {
		t.Fatalf("interested after remove = %v", p.InterestedTags)
	}
}

func TestTagRemovalLeavesSnapshotsIntact(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	before, err := svc.ApplyTagChanges(ctx, "u1", TagChanges{
		AddInterested: []string{"beach", "hiking"},
	})
	if err != nil {
		t.Fatalf("apply: %v", err)
	}

	// removing a tag must not write through the snapshot's backing array
	if _, err := svc.ApplyTagChanges(ctx, "u1", TagChanges{
		RemoveInterested: []string{"beach"},
	}); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(before.InterestedTags) != 2 || before.InterestedTags[0] != "beach" || before.InterestedTags[1] != "hiking" {
		t.Fatalf("snapshot mutated: %v", before.InterestedTags)
	}
}

func TestGetUnknownUserIsEmpty(t *testing.T) {
	svc := NewService(NewMemoryStore())
	p, err := svc.Get(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if p.UserID != "nobody" {
		t.Fatalf("user id = %q", p.UserID)
	}
	if p.InterestedTags == nil || p.SavedPosts == nil || p.ReportedPosts == nil {
		t.Fatal("empty document must have non-nil slices")
	}
}

func TestToggleSave(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	saved, err := svc.ToggleSave(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !saved {
		t.Fatal("first toggle should save")
	}

	p, _ := svc.Get(ctx, "u1")
	if len(p.SavedPosts) != 1 || p.SavedPosts[0] != "p1" {
		t.Fatalf("saved = %v", p.SavedPosts)
	}

	saved, err = svc.ToggleSave(ctx, "u1", "p1")
	if err != nil {
		t.Fatalf("unsave: %v", err)
	}
	if saved {
		t.Fatal("second toggle should unsave")
	}
	p, _ = svc.Get(ctx, "u1")
	if len(p.SavedPosts) != 0 {
		t.Fatalf("saved after unsave = %v", p.SavedPosts)
	}
}

func TestReportPost(t *testing.T) {
	svc := NewService(NewMemoryStore())
	ctx := context.Background()

	err := svc.ReportPost(ctx, "u1", "p1", "  ")
	var ve *apperrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("blank reason = %v, want ValidationError", err)
	}

	if err := svc.ReportPost(ctx, "u1", "p1", "spam"); err != nil {
		t.Fatalf("report: %v", err)
	}
	// same pair again is a silent no-op
	if err := svc.ReportPost(ctx, "u1", "p1", "different reason"); err != nil {
		t.Fatalf("duplicate report: %v", err)
	}

	p, _ := svc.Get(ctx, "u1")
	if len(p.ReportedPosts) != 1 {
		t.Fatalf("reports = %+v", p.ReportedPosts)
	}
	if p.ReportedPosts[0].Reason != "spam" {
		t.Fatalf("first reason must win: %+v", p.ReportedPosts[0])
	}
	if p.ReportedPosts[0].ReportedAt.IsZero() {
		t.Fatal("report timestamp missing")
	}

	// a different post by the same user is a new entry
	if err := svc.ReportPost(ctx, "u1", "p2", "scam"); err != nil {
		t.Fatalf("second report: %v", err)
	}
	p, _ = svc.Get(ctx, "u1")
	if len(p.ReportedPosts) != 2 {
		t.Fatalf("reports = %+v", p.ReportedPosts)
	}
}
