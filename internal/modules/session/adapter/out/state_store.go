package out

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"studybud/internal/modules/session/domain"
	sessionout "studybud/internal/modules/session/port/out"
	"studybud/internal/platform/clock"
)

// FileStateStore persists the whole blob as one JSON file, last-writer-wins.
// A missing or corrupt file never blocks startup: Load substitutes the seeded
// default dataset and logs the substitution.
type FileStateStore struct {
	path  string
	clock clock.Clock
}

func NewFileStateStore(path string, clock clock.Clock) sessionout.StateStore {
	return &FileStateStore{path: path, clock: clock}
}

func (s *FileStateStore) Load(_ context.Context) (domain.State, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("state store: read failed, using default dataset: %v", err)
		}
		return domain.DefaultState(s.clock.Now()), nil
	}
	state := domain.State{}
	if err := json.Unmarshal(payload, &state); err != nil {
		log.Printf("state store: corrupt blob, using default dataset: %v", err)
		return domain.DefaultState(s.clock.Now()), nil
	}
	if state.SchemaVersion == 0 || state.Sessions == nil {
		log.Printf("state store: unexpected blob shape, using default dataset")
		return domain.DefaultState(s.clock.Now()), nil
	}
	if state.Settings == (domain.Settings{}) {
		state.Settings = domain.DefaultSettings()
	}
	return state, nil
}

func (s *FileStateStore) Save(_ context.Context, state domain.State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	state.SchemaVersion = domain.SchemaVersion
	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}
