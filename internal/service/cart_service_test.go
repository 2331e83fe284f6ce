package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/vietcart-next/internal/client"
	"github.com/vietcart-next/internal/models"
	"github.com/vietcart-next/internal/repository"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

type fakeCartAPI struct {
	items   []client.RemoteCartItem
	listErr error
	failAll bool

	upserts []client.RemoteCartItem
	removed []uint
	cleared int
}

var errRemoteDown = errors.New("remote cart unavailable")

func (f *fakeCartAPI) List(_ context.Context, _ string) ([]client.RemoteCartItem, error) {
	if f.failAll || f.listErr != nil {
		if f.listErr != nil {
			return nil, f.listErr
		}
		return nil, errRemoteDown
	}
	return f.items, nil
}

func (f *fakeCartAPI) Upsert(_ context.Context, _ string, item client.RemoteCartItem) error {
	if f.failAll {
		return errRemoteDown
	}
	f.upserts = append(f.upserts, item)
	return nil
}

func (f *fakeCartAPI) Remove(_ context.Context, _ string, variantID uint) error {
	if f.failAll {
		return errRemoteDown
	}
	f.removed = append(f.removed, variantID)
	return nil
}

func (f *fakeCartAPI) Clear(_ context.Context, _ string) error {
	if f.failAll {
		return errRemoteDown
	}
	f.cleared++
	return nil
}

func newMirrorRepo(t *testing.T, name string) repository.CartLineRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := db.AutoMigrate(&models.CartLine{}); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}
	return repository.NewCartLineRepository(db)
}

func TestCartAddMergesSameVariant(t *testing.T) {
	api := &fakeCartAPI{}
	svc := NewCartService(api, newMirrorRepo(t, "cart_add_merge"))
	ctx := context.Background()

	input := AddItemInput{
		VariantID:   7,
		Quantity:    1,
		UnitPrice:   moneyFromInt(100000),
		ProductName: "Ao thun nam",
	}
	if _, err := svc.Add(ctx, "token", 1, input); err != nil {
		t.Fatalf("first add failed: %v", err)
	}
	input.Quantity = 2
	if _, err := svc.Add(ctx, "token", 1, input); err != nil {
		t.Fatalf("second add failed: %v", err)
	}

	view, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Lines) != 1 {
		t.Fatalf("expected single merged line, got %d", len(view.Lines))
	}
	if view.Lines[0].Quantity != 3 {
		t.Fatalf("unexpected merged quantity, want 3, got %d", view.Lines[0].Quantity)
	}
	if len(api.upserts) != 2 || api.upserts[1].Quantity != 3 {
		t.Fatalf("remote upsert must carry merged quantity, got %+v", api.upserts)
	}
}

func TestCartAddRejectsInvalidInput(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{}, newMirrorRepo(t, "cart_add_invalid"))

	if _, err := svc.Add(context.Background(), "token", 1, AddItemInput{VariantID: 0, Quantity: 1}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for zero variant, got %v", err)
	}
	if _, err := svc.Add(context.Background(), "token", 1, AddItemInput{VariantID: 5, Quantity: 0}); !errors.Is(err, ErrInvalidCartItem) {
		t.Fatalf("expected ErrInvalidCartItem for zero quantity, got %v", err)
	}
}

func TestCartAddKeepsMirrorOnRemoteFailure(t *testing.T) {
	api := &fakeCartAPI{failAll: true}
	svc := NewCartService(api, newMirrorRepo(t, "cart_add_remote_fail"))

	_, err := svc.Add(context.Background(), "token", 1, AddItemInput{
		VariantID: 7,
		Quantity:  1,
		UnitPrice: moneyFromInt(100000),
	})
	if !errors.Is(err, errRemoteDown) {
		t.Fatalf("expected remote failure to propagate, got %v", err)
	}

	view, listErr := svc.List(1)
	if listErr != nil {
		t.Fatalf("list failed: %v", listErr)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("mirror must stay empty when remote commit fails, got %d lines", len(view.Lines))
	}
}

func TestCartUpdateQuantityZeroRemovesLine(t *testing.T) {
	api := &fakeCartAPI{}
	svc := NewCartService(api, newMirrorRepo(t, "cart_qty_zero"))
	ctx := context.Background()

	if _, err := svc.Add(ctx, "token", 1, AddItemInput{VariantID: 7, Quantity: 2, UnitPrice: moneyFromInt(100000)}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.UpdateQuantity(ctx, "token", 1, 7, 0); err != nil {
		t.Fatalf("update to zero failed: %v", err)
	}

	view, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected line removed, got %d lines", len(view.Lines))
	}
	if len(api.removed) != 1 || api.removed[0] != 7 {
		t.Fatalf("expected remote removal of variant 7, got %v", api.removed)
	}
}

func TestCartUpdateQuantityUnknownLine(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{}, newMirrorRepo(t, "cart_qty_unknown"))
	if err := svc.UpdateQuantity(context.Background(), "token", 1, 99, 2); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("expected ErrCartLineNotFound, got %v", err)
	}
}

func TestCartSelectionAndRunningTotal(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{}, newMirrorRepo(t, "cart_selection"))
	ctx := context.Background()

	if _, err := svc.Add(ctx, "token", 1, AddItemInput{VariantID: 1, Quantity: 2, UnitPrice: moneyFromInt(100000)}); err != nil {
		t.Fatalf("add variant 1 failed: %v", err)
	}
	if _, err := svc.Add(ctx, "token", 1, AddItemInput{VariantID: 2, Quantity: 1, UnitPrice: moneyFromInt(50000)}); err != nil {
		t.Fatalf("add variant 2 failed: %v", err)
	}

	view, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !view.AllSelected {
		t.Fatalf("new lines default to selected, expected all selected")
	}
	if view.SelectedSubtotal.String() != "250000" {
		t.Fatalf("unexpected running total, want 250000, got %s", view.SelectedSubtotal.String())
	}

	if err := svc.SetSelected(1, 2, false); err != nil {
		t.Fatalf("deselect failed: %v", err)
	}
	view, err = svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if view.AllSelected {
		t.Fatalf("expected all-selected flag cleared after deselect")
	}
	if view.SelectedSubtotal.String() != "200000" {
		t.Fatalf("unexpected running total, want 200000, got %s", view.SelectedSubtotal.String())
	}

	if err := svc.SetSelectedAll(1, true); err != nil {
		t.Fatalf("select all failed: %v", err)
	}
	view, err = svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !view.AllSelected || view.SelectedSubtotal.String() != "250000" {
		t.Fatalf("expected full selection restored, got all=%v total=%s", view.AllSelected, view.SelectedSubtotal.String())
	}

	selected, err := svc.SelectedLines(1)
	if err != nil {
		t.Fatalf("selected lines failed: %v", err)
	}
	if len(selected) != 2 {
		t.Fatalf("unexpected selected line count, want 2, got %d", len(selected))
	}
}

func TestCartSetSelectedUnknownLine(t *testing.T) {
	svc := NewCartService(&fakeCartAPI{}, newMirrorRepo(t, "cart_select_unknown"))
	if err := svc.SetSelected(1, 42, true); !errors.Is(err, ErrCartLineNotFound) {
		t.Fatalf("expected ErrCartLineNotFound, got %v", err)
	}
}

func TestCartClearEmptiesMirrorAfterRemote(t *testing.T) {
	api := &fakeCartAPI{}
	svc := NewCartService(api, newMirrorRepo(t, "cart_clear"))
	ctx := context.Background()

	if _, err := svc.Add(ctx, "token", 1, AddItemInput{VariantID: 1, Quantity: 1, UnitPrice: moneyFromInt(10000)}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.Clear(ctx, "token", 1); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if api.cleared != 1 {
		t.Fatalf("expected one remote clear call, got %d", api.cleared)
	}
	view, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Lines) != 0 {
		t.Fatalf("expected empty mirror after clear, got %d lines", len(view.Lines))
	}
}

func TestCartSyncFromRemotePreservesSelection(t *testing.T) {
	api := &fakeCartAPI{}
	svc := NewCartService(api, newMirrorRepo(t, "cart_sync"))
	ctx := context.Background()

	if _, err := svc.Add(ctx, "token", 1, AddItemInput{VariantID: 1, Quantity: 1, UnitPrice: moneyFromInt(100000)}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := svc.SetSelected(1, 1, false); err != nil {
		t.Fatalf("deselect failed: %v", err)
	}

	api.items = []client.RemoteCartItem{
		{VariantID: 1, Quantity: 5, UnitPrice: moneyFromInt(100000)},
		{VariantID: 2, Quantity: 1, UnitPrice: moneyFromInt(30000)},
		{VariantID: 0, Quantity: 1},
	}
	if err := svc.SyncFromRemote(ctx, "token", 1); err != nil {
		t.Fatalf("sync failed: %v", err)
	}

	view, err := svc.List(1)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(view.Lines) != 2 {
		t.Fatalf("expected invalid remote rows skipped, got %d lines", len(view.Lines))
	}
	byVariant := make(map[uint]models.CartLine, len(view.Lines))
	for _, line := range view.Lines {
		byVariant[line.VariantID] = line
	}
	if byVariant[1].Selected {
		t.Fatalf("expected variant 1 to keep deselected state after sync")
	}
	if byVariant[1].Quantity != 5 {
		t.Fatalf("expected remote quantity to win, want 5, got %d", byVariant[1].Quantity)
	}
	if !byVariant[2].Selected {
		t.Fatalf("expected new variant 2 to default to selected")
	}
}
