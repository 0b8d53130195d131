package tournament

import (
	"sort"

	"tourneyserver/internal/domain"
)

// Tournament is the aggregate root. The game log is the authoritative
// history; the name index and the stats map are derived from it and the
// score config, and are rebuilt by Reload whenever either changes.
type Tournament struct {
	config      domain.ScoreConfig
	matchConfig domain.MatchmakerConfig

	players map[domain.PlayerID]domain.PlayerInfo
	names   map[string]domain.PlayerID
	stats   map[domain.PlayerID]domain.PlayerStats
	games   []domain.GameRecord

	configVersion uint64
}

func New() *Tournament {
	return &Tournament{
		config:      domain.DefaultScoreConfig(),
		matchConfig: domain.DefaultMatchmakerConfig(),
		players:     make(map[domain.PlayerID]domain.PlayerInfo),
		names:       make(map[string]domain.PlayerID),
		stats:       make(map[domain.PlayerID]domain.PlayerStats),
	}
}

func (t *Tournament) ScoreConfig() domain.ScoreConfig {
	return t.config
}

func (t *Tournament) MatchConfig() domain.MatchmakerConfig {
	return t.matchConfig
}

func (t *Tournament) PlayerIDs() []domain.PlayerID {
	ids := make([]domain.PlayerID, 0, len(t.players))
	for id := range t.players {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t *Tournament) Games() []domain.GameRecord {
	games := make([]domain.GameRecord, len(t.games))
	copy(games, t.games)
	return games
}

func (t *Tournament) PlayerStats(id domain.PlayerID) (domain.PlayerStats, error) {
	if _, ok := t.players[id]; !ok {
		return domain.PlayerStats{}, &domain.InvalidPlayerIDError{ID: id}
	}
	return t.statsOrFresh(id), nil
}

func (t *Tournament) statsOrFresh(id domain.PlayerID) domain.PlayerStats {
	if stats, ok := t.stats[id]; ok {
		return stats
	}
	return t.config.NewPlayerStats()
}

func (t *Tournament) elo(id domain.PlayerID) float64 {
	return t.statsOrFresh(id).Elo
}

func (t *Tournament) winRate(id domain.PlayerID) float64 {
	wr, ok := t.statsOrFresh(id).WinRate()
	if !ok {
		return baseWinRate
	}
	return wr
}
