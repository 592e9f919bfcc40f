package dao

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"lawchat-backend/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestSessionCreate_Defaults(t *testing.T) {
	d := NewSessionDAO(openTestDB(t))
	ctx := context.Background()

	s := &model.Session{}
	if err := d.Create(ctx, s); err != nil {
		t.Fatalf("create session: %v", err)
	}
	if s.ID == "" {
		t.Fatalf("expected generated id")
	}
	if s.Title != model.DefaultSessionTitle {
		t.Fatalf("expected default title, got %q", s.Title)
	}
	if s.CreatedAt.IsZero() || s.UpdatedAt.IsZero() {
		t.Fatalf("expected timestamps to be set")
	}
	if !s.CreatedAt.Equal(s.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at at creation, got %v / %v", s.CreatedAt, s.UpdatedAt)
	}
}

func TestSessionGetByID_RoundTrip(t *testing.T) {
	d := NewSessionDAO(openTestDB(t))
	ctx := context.Background()

	s := &model.Session{Title: "Contract review", ConversationID: "conv-1"}
	if err := d.Create(ctx, s); err != nil {
		t.Fatalf("create session: %v", err)
	}

	got, err := d.GetByID(ctx, s.ID)
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if got == nil {
		t.Fatalf("expected session, got nil")
	}
	if got.ID != s.ID || got.Title != s.Title || got.ConversationID != s.ConversationID {
		t.Fatalf("round trip mismatch: %+v vs %+v", got, s)
	}
}

func TestSessionGetByID_AbsentIsNotAnError(t *testing.T) {
	d := NewSessionDAO(openTestDB(t))

	got, err := d.GetByID(context.Background(), "no-such-id")
	if err != nil {
		t.Fatalf("expected nil error for absent session, got %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil session, got %+v", got)
	}
}

func TestSessionList_OrderedByUpdatedAtDesc(t *testing.T) {
	db := openTestDB(t)
	d := NewSessionDAO(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, title := range []string{"oldest", "middle", "newest"} {
		s := &model.Session{Title: title}
		if err := d.Create(ctx, s); err != nil {
			t.Fatalf("create session %d: %v", i, err)
		}
		ts := base.Add(time.Duration(i) * time.Minute)
		if err := db.Model(s).UpdateColumn("updated_at", ts).Error; err != nil {
			t.Fatalf("set updated_at: %v", err)
		}
	}

	sessions, err := d.List(ctx)
	if err != nil {
		t.Fatalf("list sessions: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(sessions))
	}
	if sessions[0].Title != "newest" || sessions[2].Title != "oldest" {
		t.Fatalf("unexpected order: %q, %q, %q", sessions[0].Title, sessions[1].Title, sessions[2].Title)
	}
}

func TestSessionUpdate_PartialMerge(t *testing.T) {
	d := NewSessionDAO(openTestDB(t))
	ctx := context.Background()

	s := &model.Session{Title: "before", ConversationID: "conv-1"}
	if err := d.Create(ctx, s); err != nil {
		t.Fatalf("create session: %v", err)
	}

	updated, err := d.Update(ctx, s.ID, map[string]any{"title": "after"})
	if err != nil {
		t.Fatalf("update session: %v", err)
	}
	if updated == nil {
		t.Fatalf("expected updated session, got nil")
	}
	if updated.Title != "after" {
		t.Fatalf("expected updated title, got %q", updated.Title)
	}
	if updated.ConversationID != "conv-1" {
		t.Fatalf("expected untouched conversation id, got %q", updated.ConversationID)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updated_at to advance")
	}
}

func TestSessionUpdate_AbsentReturnsNil(t *testing.T) {
	d := NewSessionDAO(openTestDB(t))

	updated, err := d.Update(context.Background(), "no-such-id", map[string]any{"title": "x"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != nil {
		t.Fatalf("expected nil for absent session, got %+v", updated)
	}
}

func TestMessageListBySession_OrderedByCreatedAtAsc(t *testing.T) {
	db := openTestDB(t)
	d := NewMessageDAO(db)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	// insert out of order on purpose
	for _, i := range []int{2, 0, 1} {
		m := &model.Message{
			SessionID: "sess-1",
			Content:   fmt.Sprintf("msg-%d", i),
			Role:      model.RoleUser,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := d.Create(ctx, m); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	messages, err := d.ListBySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, m := range messages {
		want := fmt.Sprintf("msg-%d", i)
		if m.Content != want {
			t.Fatalf("message %d: expected %q, got %q", i, want, m.Content)
		}
	}
}

func TestMessageDeleteBySession(t *testing.T) {
	db := openTestDB(t)
	d := NewMessageDAO(db)
	ctx := context.Background()

	for _, sid := range []string{"sess-1", "sess-1", "sess-2"} {
		if err := d.Create(ctx, &model.Message{SessionID: sid, Content: "x", Role: model.RoleUser}); err != nil {
			t.Fatalf("create message: %v", err)
		}
	}

	if err := d.DeleteBySession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete by session: %v", err)
	}

	gone, err := d.ListBySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list sess-1: %v", err)
	}
	if len(gone) != 0 {
		t.Fatalf("expected no messages for sess-1, got %d", len(gone))
	}

	kept, err := d.ListBySession(ctx, "sess-2")
	if err != nil {
		t.Fatalf("list sess-2: %v", err)
	}
	if len(kept) != 1 {
		t.Fatalf("expected sess-2 messages untouched, got %d", len(kept))
	}
}

func TestMessageDeleteByID(t *testing.T) {
	d := NewMessageDAO(openTestDB(t))
	ctx := context.Background()

	m := &model.Message{SessionID: "sess-1", Content: "x", Role: model.RoleAssistant}
	if err := d.Create(ctx, m); err != nil {
		t.Fatalf("create message: %v", err)
	}
	if err := d.DeleteByID(ctx, m.ID); err != nil {
		t.Fatalf("delete message: %v", err)
	}

	messages, err := d.ListBySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("list messages: %v", err)
	}
	if len(messages) != 0 {
		t.Fatalf("expected no messages, got %d", len(messages))
	}
}
