package repository

import (
	"fmt"
	"testing"
	"time"

	"github.com/vietcart-next/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func newTestRepo(t *testing.T, name string) *GormCartLineRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return NewCartLineRepository(db)
}

func testLine(userID, variantID uint, quantity int) *models.CartLine {
	return &models.CartLine{
		UserID:    userID,
		VariantID: variantID,
		Quantity:  quantity,
		UnitPrice: models.NewMoneyFromDecimal(decimal.NewFromInt(100000)),
		Selected:  true,
		UpdatedAt: time.Now(),
	}
}

func TestUpsertCreatesThenUpdates(t *testing.T) {
	repo := newTestRepo(t, "repo_upsert")

	if err := repo.Upsert(testLine(1, 7, 2)); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := repo.Upsert(testLine(1, 7, 5)); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 1 {
		t.Fatalf("expected single row per user+variant, got %d", len(lines))
	}
	if lines[0].Quantity != 5 {
		t.Fatalf("unexpected quantity, want 5, got %d", lines[0].Quantity)
	}
}

func TestGetByUserAndVariantMissingReturnsNil(t *testing.T) {
	repo := newTestRepo(t, "repo_get_missing")

	line, err := repo.GetByUserAndVariant(1, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if line != nil {
		t.Fatalf("expected nil for missing row, got %+v", line)
	}
}

func TestReplaceAllRebuildsUserMirror(t *testing.T) {
	repo := newTestRepo(t, "repo_replace_all")

	if err := repo.Upsert(testLine(1, 1, 1)); err != nil {
		t.Fatalf("seed user 1 failed: %v", err)
	}
	if err := repo.Upsert(testLine(2, 9, 4)); err != nil {
		t.Fatalf("seed user 2 failed: %v", err)
	}

	replacement := []models.CartLine{
		*testLine(1, 2, 3),
		*testLine(1, 3, 1),
	}
	if err := repo.ReplaceAll(1, replacement); err != nil {
		t.Fatalf("replace all failed: %v", err)
	}

	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected rebuilt mirror with 2 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if line.VariantID == 1 {
			t.Fatalf("old row must be gone after replace")
		}
	}

	other, err := repo.ListByUser(2)
	if err != nil {
		t.Fatalf("list user 2 failed: %v", err)
	}
	if len(other) != 1 {
		t.Fatalf("replace must not touch other users, got %d rows", len(other))
	}
}

func TestSetSelectedAllTogglesEveryRow(t *testing.T) {
	repo := newTestRepo(t, "repo_select_all")

	if err := repo.Upsert(testLine(1, 1, 1)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := repo.Upsert(testLine(1, 2, 1)); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	if err := repo.SetSelectedAll(1, false); err != nil {
		t.Fatalf("set selected all failed: %v", err)
	}
	lines, err := repo.ListByUser(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, line := range lines {
		if line.Selected {
			t.Fatalf("expected all rows deselected, got %+v", line)
		}
	}
}
