package tournament

import (
	"tourneyserver/internal/domain"
)

// Reload rebuilds the name index and every player's stats from the game
// log. The rebuild runs against staging maps that replace the live ones
// only after every record applied cleanly, so a corrupt log never leaves
// half-rebuilt stats behind.
func (t *Tournament) Reload() error {
	names := make(map[string]domain.PlayerID, len(t.players))
	stats := make(map[domain.PlayerID]domain.PlayerStats, len(t.players))
	for id, info := range t.players {
		names[info.Name] = id
		stats[id] = t.config.NewPlayerStats()
	}
	lookup := func(id domain.PlayerID) (domain.PlayerStats, bool) {
		s, ok := stats[id]
		return s, ok
	}
	for _, rec := range t.games {
		m := computeMatchup(t.config, t.configVersion, lookup, rec.Players)
		if err := applyMatch(stats, m, rec.Winner); err != nil {
			return err
		}
	}
	t.names = names
	t.stats = stats
	return nil
}

// SetGameWinner overwrites the winner at the given log position and
// rescores the whole history.
func (t *Tournament) SetGameWinner(index int, winner domain.PlayerID) error {
	if index < 0 || index >= len(t.games) {
		return &domain.GameNotFoundError{Index: index}
	}
	if !t.games[index].Contains(winner) {
		return &domain.WinnerNotInMatchError{ID: winner}
	}
	t.games[index].Winner = winner
	return t.Reload()
}

// DeleteGame removes the game at the given log position and rescores
// the remaining history.
func (t *Tournament) DeleteGame(index int) error {
	if index < 0 || index >= len(t.games) {
		return &domain.GameNotFoundError{Index: index}
	}
	t.games = append(t.games[:index], t.games[index+1:]...)
	return t.Reload()
}

// SetScoreConfig swaps the scoring parameters and rescores the whole
// history, since every committed delta depends on them.
func (t *Tournament) SetScoreConfig(cfg domain.ScoreConfig) error {
	t.config = cfg
	t.configVersion++
	return t.Reload()
}

// SetMatchConfig only affects future matchmaking; no rescore needed.
func (t *Tournament) SetMatchConfig(cfg domain.MatchmakerConfig) {
	t.matchConfig = cfg
}
