package tournament

import (
	"testing"

	"tourneyserver/internal/domain"
)

func newTestTournament(t *testing.T, names ...string) (*Tournament, []domain.PlayerID) {
	t.Helper()
	tour := New()
	ids := make([]domain.PlayerID, 0, len(names))
	for _, name := range names {
		id, err := tour.RegisterPlayer(name)
		if err != nil {
			t.Fatalf("RegisterPlayer(%q) error = %v", name, err)
		}
		ids = append(ids, id)
	}
	return tour, ids
}

func playGame(t *testing.T, tour *Tournament, players [4]domain.PlayerID, winner domain.PlayerID) {
	t.Helper()
	rec, err := domain.NewGameRecord(players, winner)
	if err != nil {
		t.Fatalf("NewGameRecord() error = %v", err)
	}
	if err := tour.RegisterRecord(rec); err != nil {
		t.Fatalf("RegisterRecord() error = %v", err)
	}
}

func mustStats(t *testing.T, tour *Tournament, id domain.PlayerID) domain.PlayerStats {
	t.Helper()
	stats, err := tour.PlayerStats(id)
	if err != nil {
		t.Fatalf("PlayerStats(%d) error = %v", id, err)
	}
	return stats
}
