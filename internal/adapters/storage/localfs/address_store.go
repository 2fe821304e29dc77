// Package localfs persists the saved delivery address as a single JSON blob
// on disk. No schema version, no address book: every save overwrites the
// whole file.
package localfs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"audiomart/internal/domain"
)

type AddressStore struct {
	path string
}

func NewAddressStore(path string) *AddressStore {
	return &AddressStore{path: path}
}

// Load returns (nil, nil) when no address has ever been saved.
func (s *AddressStore) Load() (*domain.SavedAddress, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read address file: %w", err)
	}
	var addr domain.SavedAddress
	if err := json.Unmarshal(data, &addr); err != nil {
		return nil, fmt.Errorf("decode address file: %w", err)
	}
	return &addr, nil
}

// Save writes to a temp file and renames so a crash mid-write never leaves a
// torn blob behind.
func (s *AddressStore) Save(a *domain.SavedAddress) error {
	data, err := json.Marshal(a)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create address dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write address file: %w", err)
	}
	return os.Rename(tmp, s.path)
}
