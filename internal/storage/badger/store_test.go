package badger

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

// --- Test helpers ---

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(common.NewSilentLogger(), filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// --- Store tests ---

func TestStore_OpenClose(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(common.NewSilentLogger(), filepath.Join(dir, "badger"))
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	if store.DB() == nil {
		t.Fatal("expected non-nil DB")
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
}

func TestStore_CloseNilDB(t *testing.T) {
	store := &Store{}
	if err := store.Close(); err != nil {
		t.Fatalf("Close on nil DB should not error: %v", err)
	}
}

// --- Portfolio storage tests ---

func TestPortfolioStorage_CRUD(t *testing.T) {
	store := newTestStore(t)
	ps := NewPortfolioStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	// Get non-existent
	_, err := ps.GetPortfolio(ctx, "missing")
	if !errors.Is(err, interfaces.ErrPortfolioNotFound) {
		t.Fatalf("expected ErrPortfolioNotFound, got %v", err)
	}

	// Save assigns an ID and timestamps
	portfolio := &models.SavedPortfolio{
		Name: "retirement",
		Holdings: []models.Holding{
			{Symbol: "AAPL", Quantity: 10, PurchasePrice: 100},
			{Symbol: "JNJ", Quantity: 5, PurchasePrice: 150},
		},
	}
	if err := ps.SavePortfolio(ctx, portfolio); err != nil {
		t.Fatalf("SavePortfolio failed: %v", err)
	}
	if portfolio.ID == "" {
		t.Fatal("expected generated portfolio ID")
	}
	if portfolio.CreatedAt.IsZero() || portfolio.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be assigned")
	}

	// Get existing
	got, err := ps.GetPortfolio(ctx, portfolio.ID)
	if err != nil {
		t.Fatalf("GetPortfolio failed: %v", err)
	}
	if got.Name != "retirement" {
		t.Errorf("Name = %q, want retirement", got.Name)
	}
	if len(got.Holdings) != 2 {
		t.Errorf("len(Holdings) = %d, want 2", len(got.Holdings))
	}

	// List
	ids, err := ps.ListPortfolios(ctx)
	if err != nil {
		t.Fatalf("ListPortfolios failed: %v", err)
	}
	if len(ids) != 1 || ids[0] != portfolio.ID {
		t.Errorf("ListPortfolios = %v, want [%s]", ids, portfolio.ID)
	}

	// Delete
	if err := ps.DeletePortfolio(ctx, portfolio.ID); err != nil {
		t.Fatalf("DeletePortfolio failed: %v", err)
	}
	if _, err := ps.GetPortfolio(ctx, portfolio.ID); !errors.Is(err, interfaces.ErrPortfolioNotFound) {
		t.Fatalf("expected ErrPortfolioNotFound after delete, got %v", err)
	}

	// Deleting a missing ID is not an error
	if err := ps.DeletePortfolio(ctx, "missing"); err != nil {
		t.Fatalf("DeletePortfolio on missing ID: %v", err)
	}
}

func TestPortfolioStorage_UpsertPreservesCreatedAt(t *testing.T) {
	store := newTestStore(t)
	ps := NewPortfolioStorage(store, common.NewSilentLogger())
	ctx := context.Background()

	portfolio := &models.SavedPortfolio{Name: "growth"}
	if err := ps.SavePortfolio(ctx, portfolio); err != nil {
		t.Fatalf("SavePortfolio failed: %v", err)
	}
	created := portfolio.CreatedAt

	portfolio.Holdings = []models.Holding{{Symbol: "NVDA", Quantity: 2, PurchasePrice: 400}}
	if err := ps.SavePortfolio(ctx, portfolio); err != nil {
		t.Fatalf("second SavePortfolio failed: %v", err)
	}
	if !portfolio.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt changed on update: %v -> %v", created, portfolio.CreatedAt)
	}
}
