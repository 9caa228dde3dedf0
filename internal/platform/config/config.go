package config

import (
	"fmt"
	"path/filepath"
)

type Config struct {
	DataPath  string
	StatePath string
	TimerPath string
	DBPath    string
	NotesPath string
}

func New(dataPath string) (Config, error) {
	if dataPath == "" {
		return Config{}, fmt.Errorf("data path is required")
	}
	return Config{
		DataPath:  dataPath,
		StatePath: filepath.Join(dataPath, "state.json"),
		TimerPath: filepath.Join(dataPath, "timer.json"),
		DBPath:    filepath.Join(dataPath, "studybud.db"),
		NotesPath: filepath.Join(dataPath, "notes"),
	}, nil
}
