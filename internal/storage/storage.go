package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/nikbrunner/vscroll/internal/model"
)

// ErrIndexOutOfRange is returned by a Source asked for a row it does not have.
var ErrIndexOutOfRange = errors.New("index out of range")

// ErrUnknownSource is returned for a config naming no known backend.
var ErrUnknownSource = errors.New("unknown source")

// Storage defines the interface for persisting the dataset.
type Storage interface {
	Load() (*model.Dataset, error)
	Save(dataset *model.Dataset) error
}

// Source hands out rows by index. The list only ever asks for the rows it is
// about to show, so a Source need not hold the whole dataset in memory.
type Source interface {
	Count() (int, error)
	At(index int) (model.User, error)
}

// DatasetSource serves rows from an in-memory dataset.
type DatasetSource struct {
	dataset *model.Dataset
}

// NewDatasetSource wraps d as a Source.
func NewDatasetSource(d *model.Dataset) *DatasetSource {
	return &DatasetSource{dataset: d}
}

// Count returns the number of rows.
func (s *DatasetSource) Count() (int, error) {
	return s.dataset.Len(), nil
}

// At returns the row at index.
func (s *DatasetSource) At(index int) (model.User, error) {
	if index < 0 || index >= s.dataset.Len() {
		return model.User{}, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	return s.dataset.At(index), nil
}

// JSONStorage implements Storage using a JSON file.
type JSONStorage struct {
	path string
}

// NewJSONStorage creates a new JSONStorage with the given file path.
func NewJSONStorage(path string) *JSONStorage {
	return &JSONStorage{path: path}
}

// Path returns the storage file path.
func (s *JSONStorage) Path() string {
	return s.path
}

// Load reads the dataset from the JSON file.
// Returns an empty dataset if the file doesn't exist.
func (s *JSONStorage) Load() (*model.Dataset, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.NewDataset(), nil
		}
		return nil, err
	}

	var dataset model.Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, err
	}

	if dataset.Users == nil {
		dataset.Users = []model.User{}
	}

	return &dataset, nil
}

// Save writes the dataset to the JSON file.
// Creates the directory if it doesn't exist.
func (s *JSONStorage) Save(dataset *model.Dataset) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path, data, 0644)
}

// DefaultDir returns the directory holding config and data: ~/.config/vscroll
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".config", "vscroll"), nil
}

// Backend is a Storage that can also serve rows by index.
type Backend interface {
	Storage
	Source
	Path() string
	Close() error
}

// jsonBackend serves rows from a JSON file loaded once.
type jsonBackend struct {
	*JSONStorage
	source *DatasetSource
}

func (b *jsonBackend) Count() (int, error) {
	if err := b.ensureLoaded(); err != nil {
		return 0, err
	}
	return b.source.Count()
}

func (b *jsonBackend) At(index int) (model.User, error) {
	if err := b.ensureLoaded(); err != nil {
		return model.User{}, err
	}
	return b.source.At(index)
}

func (b *jsonBackend) Save(dataset *model.Dataset) error {
	if err := b.JSONStorage.Save(dataset); err != nil {
		return err
	}
	b.source = NewDatasetSource(dataset)
	return nil
}

func (b *jsonBackend) ensureLoaded() error {
	if b.source != nil {
		return nil
	}
	dataset, err := b.Load()
	if err != nil {
		return err
	}
	b.source = NewDatasetSource(dataset)
	return nil
}

func (b *jsonBackend) Close() error { return nil }

// OpenBackend opens the backend named by cfg.Source inside dir:
// users.db for SQLite, users.json for JSON.
func OpenBackend(cfg *Config, dir string) (Backend, error) {
	switch cfg.Source {
	case SourceJSON:
		return &jsonBackend{JSONStorage: NewJSONStorage(filepath.Join(dir, "users.json"))}, nil
	case SourceSQLite, "":
		return NewSQLiteStorage(filepath.Join(dir, "users.db"))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Source)
	}
}
