package storage_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nikbrunner/vscroll/internal/model"
	"github.com/nikbrunner/vscroll/internal/storage"
)

func testDataset() *model.Dataset {
	return &model.Dataset{Users: []model.User{
		{ID: "u1", Username: "ada", Email: "ada@example.com"},
		{ID: "u2", Username: "alan", Email: "alan@example.com"},
		{ID: "u3", Username: "grace", Email: "grace@example.com"},
	}}
}

func TestJSONStorage_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(testDataset()); err != nil {
		t.Fatalf("failed to save: %v", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("data file was not created")
	}

	loaded, err := s.Load()
	if err != nil {
		t.Fatalf("failed to load: %v", err)
	}

	expectedNames := []string{"ada", "alan", "grace"}
	if loaded.Len() != len(expectedNames) {
		t.Fatalf("expected %d users, got %d", len(expectedNames), loaded.Len())
	}
	for i, name := range expectedNames {
		if loaded.At(i).Username != name {
			t.Errorf("order not preserved: expected %q at position %d, got %q",
				name, i, loaded.At(i).Username)
		}
	}
}

func TestJSONStorage_LoadNonexistent(t *testing.T) {
	s := storage.NewJSONStorage(filepath.Join(t.TempDir(), "nonexistent.json"))

	dataset, err := s.Load()
	if err != nil {
		t.Fatalf("expected no error for missing file, got: %v", err)
	}
	if dataset.Len() != 0 {
		t.Error("expected empty dataset for missing file")
	}
}

func TestJSONStorage_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "users.json")

	s := storage.NewJSONStorage(path)
	if err := s.Save(model.NewDataset()); err != nil {
		t.Fatalf("failed to save with nested dir: %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("data file was not created in nested directory")
	}
}

func TestDatasetSource(t *testing.T) {
	src := storage.NewDatasetSource(testDataset())

	n, err := src.Count()
	if err != nil || n != 3 {
		t.Fatalf("Count() = (%d, %v), want (3, nil)", n, err)
	}

	u, err := src.At(1)
	if err != nil {
		t.Fatalf("At(1) error: %v", err)
	}
	if u.Username != "alan" {
		t.Errorf("At(1) = %q, want 'alan'", u.Username)
	}

	if _, err := src.At(3); err == nil {
		t.Error("expected error for index past the end")
	}
}
