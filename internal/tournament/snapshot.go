package tournament

import (
	"tourneyserver/internal/domain"
)

// Snapshot is the persisted form of a tournament. Derived state (stats,
// name index) is deliberately absent; loaders rebuild it via Reload.
type Snapshot struct {
	Config      domain.ScoreConfig                    `json:"config"`
	MatchConfig *domain.MatchmakerConfig              `json:"match_config,omitempty"`
	Players     map[domain.PlayerID]domain.PlayerInfo `json:"players"`
	Games       []domain.GameRecord                   `json:"games"`
}

func (t *Tournament) Snapshot() Snapshot {
	matchConfig := t.matchConfig
	s := Snapshot{
		Config:      t.config,
		MatchConfig: &matchConfig,
		Players:     make(map[domain.PlayerID]domain.PlayerInfo, len(t.players)),
		Games:       make([]domain.GameRecord, len(t.games)),
	}
	for id, info := range t.players {
		s.Players[id] = info
	}
	copy(s.Games, t.games)
	return s
}

// FromSnapshot restores a tournament and immediately replays its
// history, so derived stats are trustworthy the moment it returns.
func FromSnapshot(s Snapshot) (*Tournament, error) {
	t := New()
	t.config = s.Config
	if s.MatchConfig != nil {
		t.matchConfig = *s.MatchConfig
	}
	for id, info := range s.Players {
		t.players[id] = info
	}
	t.games = make([]domain.GameRecord, 0, len(s.Games))
	for _, g := range s.Games {
		rec, err := domain.NewGameRecord(g.Players, g.Winner)
		if err != nil {
			return nil, err
		}
		t.games = append(t.games, rec)
	}
	if err := t.Reload(); err != nil {
		return nil, err
	}
	return t, nil
}
