package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"smartthings-bridge/internal/domain/model"
	"smartthings-bridge/internal/ports"
)

var _ ports.AccessoryRuntime = (*AccessoryStore)(nil)

// AccessoryStore persists accessory bindings as a JSON document so that
// accessory identities survive restarts.
type AccessoryStore struct {
	path string
	mu   sync.Mutex
}

type storeDocument struct {
	Accessories []model.AccessoryBinding `json:"accessories"`
}

func NewAccessoryStore(path string) *AccessoryStore {
	return &AccessoryStore{path: path}
}

// Load returns the stored bindings. A missing file is an empty store.
func (s *AccessoryStore) Load(ctx context.Context) ([]model.AccessoryBinding, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	return doc.Accessories, nil
}

// RegisterAccessories adds bindings to the store, replacing any stored
// binding with the same accessory id.
func (s *AccessoryStore) RegisterAccessories(ctx context.Context, bindings ...model.AccessoryBinding) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.read()
	if err != nil {
		return err
	}

	for _, b := range bindings {
		replaced := false
		for i := range doc.Accessories {
			if doc.Accessories[i].AccessoryID == b.AccessoryID {
				doc.Accessories[i] = b
				replaced = true
				break
			}
		}
		if !replaced {
			doc.Accessories = append(doc.Accessories, b)
		}
	}

	return s.write(doc)
}

func (s *AccessoryStore) read() (*storeDocument, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &storeDocument{}, nil
		}
		return nil, fmt.Errorf("reading accessory store: %w", err)
	}

	var doc storeDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing accessory store: %w", err)
	}
	return &doc, nil
}

// write replaces the file atomically.
func (s *AccessoryStore) write(doc *storeDocument) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("writing accessory store: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("writing accessory store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing accessory store: %w", err)
	}
	return os.Rename(tmp.Name(), s.path)
}
