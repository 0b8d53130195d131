package tournament

import (
	"math"

	"tourneyserver/internal/domain"
)

// baseWinRate stands in for the winrate of a player with no games,
// calibrated for four-way games.
const baseWinRate = 0.25

// deltaScale rescales a four-player delta back to the magnitude of a
// two-player elo step. Inherited tuning constant.
const deltaScale = 0.75

type statsLookup func(domain.PlayerID) (domain.PlayerStats, bool)

func computeMatchup(cfg domain.ScoreConfig, version uint64, lookup statsLookup, ids [4]domain.PlayerID) domain.Matchup {
	var stats [4]domain.PlayerStats
	var scaledElo, scaledWr [4]float64
	var eloTotal, wrTotal float64
	for i, id := range ids {
		s, ok := lookup(id)
		if !ok {
			s = cfg.NewPlayerStats()
		}
		stats[i] = s
		scaledElo[i] = math.Pow(s.Elo, cfg.EloPow)
		wr, ok := s.WinRate()
		if !ok {
			wr = baseWinRate
		}
		scaledWr[i] = math.Pow(wr, cfg.WrPow)
		eloTotal += scaledElo[i]
		wrTotal += scaledWr[i]
	}

	weightTotal := cfg.EloWeight + cfg.WrWeight
	m := domain.Matchup{ConfigVersion: version}
	for i, id := range ids {
		expected := cfg.EloWeight/weightTotal*share(scaledElo[i], eloTotal) +
			cfg.WrWeight/weightTotal*share(scaledWr[i], wrTotal)
		m.Players[i] = domain.MatchupPlayer{
			ID:       id,
			Stats:    stats[i],
			Expected: expected,
			EloWin:   cfg.GamePoints * (1 - expected) / deltaScale,
			EloLoss:  cfg.GamePoints * expected / deltaScale,
		}
	}
	return m
}

// share keeps the expected vector summing to one even when every scaled
// value degenerates to zero.
func share(v, total float64) float64 {
	if total == 0 {
		return baseWinRate
	}
	return v / total
}

// CreateMatch computes expected outcomes and rating deltas for the four
// given players against their current stats. Read only; an unregistered
// id is treated as a fresh player.
func (t *Tournament) CreateMatch(ids [4]domain.PlayerID) domain.Matchup {
	return computeMatchup(t.config, t.configVersion, t.lookupStats, ids)
}

func (t *Tournament) lookupStats(id domain.PlayerID) (domain.PlayerStats, bool) {
	s, ok := t.stats[id]
	return s, ok
}

// UpdateMatch recomputes the matchup if the score config changed since
// it was created, otherwise returns it unchanged.
func (t *Tournament) UpdateMatch(m domain.Matchup) domain.Matchup {
	if m.ConfigVersion == t.configVersion {
		return m
	}
	return t.CreateMatch(m.IDs())
}

// RegisterMatch commits a finished game. All four game counters, the
// winner's win and every elo delta are applied together with the log
// append, or not at all.
func (t *Tournament) RegisterMatch(m domain.Matchup, winner domain.PlayerID) error {
	m = t.UpdateMatch(m)
	if !m.Contains(winner) {
		return &domain.WinnerNotInMatchError{ID: winner}
	}
	if err := applyMatch(t.stats, m, winner); err != nil {
		return err
	}
	t.games = append(t.games, domain.GameRecord{Players: m.IDs(), Winner: winner})
	return nil
}

func (t *Tournament) RegisterRecord(rec domain.GameRecord) error {
	return t.RegisterMatch(t.CreateMatch(rec.Players), rec.Winner)
}

func applyMatch(stats map[domain.PlayerID]domain.PlayerStats, m domain.Matchup, winner domain.PlayerID) error {
	for _, p := range m.Players {
		if _, ok := stats[p.ID]; !ok {
			return &domain.InvalidPlayerIDError{ID: p.ID}
		}
	}
	for _, p := range m.Players {
		s := stats[p.ID]
		s.Games++
		if p.ID == winner {
			s.Wins++
			s.Elo += p.EloWin
		} else {
			s.Elo -= p.EloLoss
		}
		stats[p.ID] = s
	}
	return nil
}
