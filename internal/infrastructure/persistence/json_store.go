package persistence

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// JSONStore keeps the save slot in a flat JSON file
type JSONStore struct {
	filePath string
	mutex    sync.Mutex
	closed   bool
}

// NewJSONStore creates a store backed by filePath.
// The file is not created until the first Save.
func NewJSONStore(filePath string) *JSONStore {
	return &JSONStore{filePath: filePath}
}

// Path returns the save file path
func (js *JSONStore) Path() string {
	return js.filePath
}

// Save writes state to the file, replacing any previous save
func (js *JSONStore) Save(state PlayerState) error {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	if js.closed {
		return ErrClosed
	}

	if state.Achievements == nil {
		state.Achievements = []string{}
	}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("persistence: encode save: %w", err)
	}

	if dir := filepath.Dir(js.filePath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("persistence: create directory %s: %w", dir, err)
		}
	}

	// Write then rename so a crash never leaves a half-written save
	tmp := js.filePath + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("persistence: write save: %w", err)
	}
	if err := os.Rename(tmp, js.filePath); err != nil {
		return fmt.Errorf("persistence: replace save: %w", err)
	}
	return nil
}

// Load reads the save file
func (js *JSONStore) Load() (PlayerState, bool, error) {
	js.mutex.Lock()
	defer js.mutex.Unlock()

	if js.closed {
		return PlayerState{}, false, ErrClosed
	}

	data, err := os.ReadFile(js.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		return PlayerState{}, false, nil
	}
	if err != nil {
		return PlayerState{}, false, fmt.Errorf("persistence: read save: %w", err)
	}

	var state PlayerState
	if err := json.Unmarshal(data, &state); err != nil {
		return PlayerState{}, false, fmt.Errorf("persistence: decode save %s: %w", js.filePath, err)
	}
	return state, true, nil
}

// Close marks the store closed. The file is left in place.
func (js *JSONStore) Close() error {
	js.mutex.Lock()
	defer js.mutex.Unlock()
	js.closed = true
	return nil
}

var _ Store = (*JSONStore)(nil)
