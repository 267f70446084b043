// Package storage persists user settings and the pomodoro progress record.
package storage

import (
	"context"
	"fmt"

	"studyhub/internal/config"
	"studyhub/internal/core/model"
)

// StateStore persists the single pomodoro record.
type StateStore interface {
	// Load returns the stored record, the default record when none exists,
	// or an error wrapping model.ErrMalformedRecord for unreadable data.
	Load(ctx context.Context) (model.Record, error)
	Save(ctx context.Context, record model.Record) error
	// Clear removes the stored record.
	Clear(ctx context.Context) error
	Close() error
}

// OpenStateStore opens the record store selected by backend inside home.
func OpenStateStore(home, backend string) (StateStore, error) {
	switch backend {
	case config.BackendYAML, "":
		return NewYAMLStateStore(home), nil
	case config.BackendSQLite:
		return OpenSQLiteStateStore(home)
	case config.BackendBadger:
		return OpenBadgerStateStore(home)
	}
	return nil, fmt.Errorf("open state store: %w: unknown state backend %q", config.ErrInvalidSettings, backend)
}

// decodeRecord validates raw persisted fields.
func decodeRecord(completed int, stage string) (model.Record, error) {
	kind, err := model.ParseStage(stage)
	if err != nil {
		return model.Record{}, err
	}
	record := model.Record{CompletedFocusCount: completed, CurrentStage: kind}
	if err := record.Validate(); err != nil {
		return model.Record{}, err
	}
	return record, nil
}
