package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes one exported image.
type Manifest struct {
	File      string  `json:"file"`
	Format    string  `json:"format"`
	Pattern   string  `json:"pattern"`
	Cols      int     `json:"cols"`
	Rows      int     `json:"rows"`
	Samples   int     `json:"samples"`
	Seed      uint64  `json:"seed"`
	Gamma     float32 `json:"gamma"`
	Exposure  float32 `json:"exposure"`
	ACES      bool    `json:"aces"`
	Workers   int     `json:"workers"`
	ElapsedMS int64   `json:"elapsed_ms"`
}

// WriteManifest writes m as indented JSON.
func WriteManifest(path string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("batch: manifest %s: %w", path, err)
	}
	return nil
}

// ReadManifest loads a manifest written by WriteManifest.
func ReadManifest(path string) (Manifest, error) {
	var m Manifest
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("batch: manifest %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("batch: parse manifest %s: %w", path, err)
	}
	return m, nil
}
