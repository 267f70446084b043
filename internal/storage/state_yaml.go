package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"studyhub/internal/core/model"

	"gopkg.in/yaml.v3"
)

const stateFileName = "pomodoro.yaml"

type yamlRecord struct {
	CompletedFocusCount int    `yaml:"completed_focus_count"`
	CurrentStage        string `yaml:"current_stage"`
}

// YAMLStateStore keeps the record in a YAML file.
type YAMLStateStore struct {
	path string
}

// NewYAMLStateStore stores the record in home/pomodoro.yaml.
func NewYAMLStateStore(home string) *YAMLStateStore {
	return &YAMLStateStore{path: filepath.Join(home, stateFileName)}
}

// Load reads the record file.
func (store *YAMLStateStore) Load(context.Context) (model.Record, error) {
	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return model.DefaultRecord(), nil
		}
		return model.Record{}, fmt.Errorf("read state file: %w", err)
	}

	var fileData yamlRecord
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return model.Record{}, fmt.Errorf("%w: parse state yaml: %v", model.ErrMalformedRecord, err)
	}
	return decodeRecord(fileData.CompletedFocusCount, fileData.CurrentStage)
}

// Save replaces the record file.
func (store *YAMLStateStore) Save(_ context.Context, record model.Record) error {
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	serialized, err := yaml.Marshal(yamlRecord{
		CompletedFocusCount: record.CompletedFocusCount,
		CurrentStage:        string(record.CurrentStage),
	})
	if err != nil {
		return fmt.Errorf("marshal state yaml: %w", err)
	}

	if err := writeFileAtomic(store.path, serialized); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

// Clear deletes the record file.
func (store *YAMLStateStore) Clear(context.Context) error {
	if err := os.Remove(store.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

// Close is a no-op.
func (store *YAMLStateStore) Close() error {
	return nil
}
