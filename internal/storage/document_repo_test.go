package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func newTestRepo(t *testing.T) *DocumentRepo {
	t.Helper()
	db, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close()
	})

	if err := Migrate(db); err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	return NewDocumentRepo(db)
}

func TestNewDocumentRepo(t *testing.T) {
	repo := newTestRepo(t)
	if repo == nil {
		t.Fatal("NewDocumentRepo() returned nil")
	}
}

func TestDocumentRepo_GetNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "never saved")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentRepo_SetGet(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		docName string
		content string
	}{
		{name: "simple", docName: "Untitled Document", content: `{"blocks":[]}`},
		{name: "unicode name", docName: "Bericht über Ärger", content: `{"blocks":[{"key":"a","text":"ü"}]}`},
		{name: "empty content", docName: "blank", content: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := repo.Set(ctx, tt.docName, tt.content); err != nil {
				t.Fatalf("Set() error = %v", err)
			}
			got, err := repo.Get(ctx, tt.docName)
			if err != nil {
				t.Fatalf("Get() error = %v", err)
			}
			if got != tt.content {
				t.Errorf("Get() = %q, want %q", got, tt.content)
			}
		})
	}
}

func TestDocumentRepo_SetLastWriteWins(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "doc", "first"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Set(ctx, "doc", "second"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	got, err := repo.Get(ctx, "doc")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "second" {
		t.Errorf("Get() = %q, want %q", got, "second")
	}

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 1 {
		t.Errorf("List() returned %d documents, want 1", len(docs))
	}
}

func TestDocumentRepo_List(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(docs) != 0 {
		t.Fatalf("List() on empty store returned %d documents", len(docs))
	}

	for _, name := range []string{"beta", "alpha", "gamma"} {
		if err := repo.Set(ctx, name, "{}"); err != nil {
			t.Fatalf("Set(%q) error = %v", name, err)
		}
	}

	docs, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(docs) != len(want) {
		t.Fatalf("List() returned %d documents, want %d", len(docs), len(want))
	}
	for i, doc := range docs {
		if doc.Name != want[i] {
			t.Errorf("List()[%d].Name = %q, want %q", i, doc.Name, want[i])
		}
		if doc.Content != "" {
			t.Errorf("List()[%d].Content should be empty", i)
		}
		if doc.UpdatedAt.IsZero() {
			t.Errorf("List()[%d].UpdatedAt is zero", i)
		}
	}
}

func TestDocumentRepo_Delete(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Set(ctx, "doc", "{}"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := repo.Delete(ctx, "doc"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := repo.Get(ctx, "doc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get() after Delete() error = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, "doc"); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}
