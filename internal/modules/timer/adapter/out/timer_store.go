package out

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"studybud/internal/modules/timer/domain"
	timerout "studybud/internal/modules/timer/port/out"
)

type FileTimerStore struct {
	path string
}

func NewFileTimerStore(path string) timerout.TimerStore {
	return &FileTimerStore{path: path}
}

func (s *FileTimerStore) Load(_ context.Context) (domain.Timer, error) {
	payload, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return domain.Idle(), nil
		}
		return domain.Timer{}, fmt.Errorf("read timer state: %w", err)
	}
	timer := domain.Timer{}
	if err := json.Unmarshal(payload, &timer); err != nil {
		log.Printf("timer store: corrupt state, using idle: %v", err)
		return domain.Idle(), nil
	}
	if timer.Round < 1 {
		return domain.Idle(), nil
	}
	return timer, nil
}

func (s *FileTimerStore) Save(_ context.Context, timer domain.Timer) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create timer state dir: %w", err)
	}
	payload, err := json.MarshalIndent(timer, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal timer state: %w", err)
	}
	if err := os.WriteFile(s.path, payload, 0o644); err != nil {
		return fmt.Errorf("write timer state: %w", err)
	}
	return nil
}
