package service

import (
	"encoding/json"
	"errors"
	"time"

	"tourneyserver/internal/tournament"

	"github.com/google/uuid"
)

const exportVersion = 1

type export struct {
	Version    int                 `json:"version"`
	ID         uuid.UUID           `json:"id"`
	CreatedAt  time.Time           `json:"created_at"`
	Tournament tournament.Snapshot `json:"tournament"`
}

// Export serializes the whole tournament for backup or transfer.
func (s *TournamentService) Export() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	exportData := export{
		Version:    exportVersion,
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		Tournament: s.t.Snapshot(),
	}
	data, err := json.Marshal(exportData)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Import replaces the current tournament with an exported one. The
// running tournament stays untouched if the file does not validate.
func (s *TournamentService) Import(data []byte) error {
	var importData export
	err := json.Unmarshal(data, &importData)
	if err != nil {
		return err
	}
	if importData.Version != exportVersion {
		return errors.New("invalid export file version")
	}
	t, err := tournament.FromSnapshot(importData.Tournament)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t = t
	return s.persist()
}
