// Package storage writes and reads the flat-file artifacts of a run.
package storage

import (
	"fmt"
	"os"
)

type Storage struct{}

// SaveFile writes an artifact. A failure here is fatal to the run and
// surfaces to the invoker; it is the only non-recoverable failure class.
func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.WriteFile(filePath, content, 0644); err != nil {
		return fmt.Errorf("error saving file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return data, nil
}

func (s *Storage) HasFile(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil || !os.IsNotExist(err)
}
