package sessions

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/viniciusmachado/adega-backend/internal/catalog"
	"github.com/viniciusmachado/adega-backend/internal/notifications"
	"github.com/viniciusmachado/adega-backend/pkg/enums"
)

type stubCatalog struct{}

func (stubCatalog) Products(context.Context) ([]catalog.Product, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) Notify(context.Context, notifications.Notification) {}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	manager, err := NewManager(stubCatalog{}, noopNotifier{}, enums.DecrementPolicyRemove)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return manager
}

func TestGetOrCreateReturnsSameSession(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)

	created, err := manager.GetOrCreate(uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == uuid.Nil {
		t.Fatal("expected a generated session id")
	}
	if created.Cart == nil || created.Composer == nil {
		t.Fatal("expected cart and composer to be wired")
	}

	again, err := manager.GetOrCreate(created.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != created {
		t.Fatal("expected the same session instance")
	}
	if manager.Len() != 1 {
		t.Fatalf("expected 1 live session, got %d", manager.Len())
	}
}

func TestUnknownIDStartsFreshSession(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	id := uuid.New()

	session, err := manager.GetOrCreate(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.ID != id {
		t.Fatalf("expected session to keep the presented id, got %s", session.ID)
	}
}

func TestEndDropsSession(t *testing.T) {
	t.Parallel()

	manager := newTestManager(t)
	session, err := manager.GetOrCreate(uuid.Nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	manager.End(session.ID)
	manager.End(session.ID)

	if _, ok := manager.Get(session.ID); ok {
		t.Fatal("expected session to be gone")
	}
	if manager.Len() != 0 {
		t.Fatalf("expected no live sessions, got %d", manager.Len())
	}
}
