package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"hotel-frontdesk/models"
)

// RecordStore persists the registry's full contents between runs.
type RecordStore interface {
	LoadAll() ([]models.OccupancyRecord, error)
	SaveAll(records []models.OccupancyRecord) error
}

// FileStore keeps the records as a JSON array in a single flat file. Saves
// overwrite the whole file; loads read the whole file. A missing file means
// an empty registry, not an error.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

func (s *FileStore) LoadAll() ([]models.OccupancyRecord, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		return []models.OccupancyRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read record file: %w", err)
	}

	var records []models.OccupancyRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to decode record file: %w", err)
	}
	return records, nil
}

// SaveAll writes to a temp file in the same directory and renames it over
// the target, so a failed save leaves the previous file intact.
func (s *FileStore) SaveAll(records []models.OccupancyRecord) error {
	if records == nil {
		records = []models.OccupancyRecord{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode records: %w", err)
	}

	dir := filepath.Dir(s.Path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp record file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write record file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close record file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace record file: %w", err)
	}
	return nil
}
