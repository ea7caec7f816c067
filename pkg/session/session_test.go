package session

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	snap := New("wip material", []byte{0x53, 0x48, 0x44, 0x47, 1, 2, 3})
	if err := store.Put(ctx, snap); err != nil {
		t.Fatal(err)
	}

	got, err := store.Get(ctx, snap.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "wip material" {
		t.Errorf("Name = %q", got.Name)
	}
	if !bytes.Equal(got.Data, snap.Data) {
		t.Errorf("Data = %v, want %v", got.Data, snap.Data)
	}
}

func TestFileStoreGetMissing(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreDelete(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	snap := New("doomed", []byte("x"))
	if err := store.Put(ctx, snap); err != nil {
		t.Fatal(err)
	}
	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Get(ctx, snap.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}

	// Deleting again is fine.
	if err := store.Delete(ctx, snap.ID); err != nil {
		t.Errorf("second delete: %v", err)
	}
}

func TestFileStoreListNewestFirst(t *testing.T) {
	ctx := context.Background()
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	old := New("old", []byte("a"))
	old.SavedAt = time.Now().Add(-time.Hour)
	recent := New("recent", []byte("b"))
	if err := store.Put(ctx, old); err != nil {
		t.Fatal(err)
	}
	if err := store.Put(ctx, recent); err != nil {
		t.Fatal(err)
	}

	snaps, err := store.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(snaps) != 2 {
		t.Fatalf("len = %d, want 2", len(snaps))
	}
	if snaps[0].Name != "recent" || snaps[1].Name != "old" {
		t.Errorf("order = %q, %q", snaps[0].Name, snaps[1].Name)
	}
	if snaps[0].Data != nil {
		t.Error("List should strip snapshot data")
	}
}
