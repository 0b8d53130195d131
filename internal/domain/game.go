package domain

// GameRecord is the authoritative record of one finished game: four
// distinct participants and the winner among them.
type GameRecord struct {
	Players [4]PlayerID `json:"p"`
	Winner  PlayerID    `json:"w"`
}

func NewGameRecord(players [4]PlayerID, winner PlayerID) (GameRecord, error) {
	for i := 0; i < len(players); i++ {
		for j := i + 1; j < len(players); j++ {
			if players[i] == players[j] {
				return GameRecord{}, &InvalidPlayerIDError{ID: players[i]}
			}
		}
	}
	rec := GameRecord{Players: players, Winner: winner}
	if !rec.Contains(winner) {
		return GameRecord{}, &WinnerNotInMatchError{ID: winner}
	}
	return rec, nil
}

func (g GameRecord) Contains(id PlayerID) bool {
	for _, p := range g.Players {
		if p == id {
			return true
		}
	}
	return false
}

// MatchupPlayer is one seat of a proposed game: the stats snapshot the
// expectation was computed from, the win probability and both possible
// rating deltas.
type MatchupPlayer struct {
	ID       PlayerID    `json:"id"`
	Stats    PlayerStats `json:"stats"`
	Expected float64     `json:"expected"`
	EloWin   float64     `json:"elo_win"`
	EloLoss  float64     `json:"elo_loss"`
}

// Matchup is a proposed, not yet committed game. ConfigVersion records
// which score config it was computed against; a stale matchup must be
// refreshed before committing.
type Matchup struct {
	Players       [4]MatchupPlayer `json:"players"`
	ConfigVersion uint64           `json:"-"`
}

func (m Matchup) IDs() [4]PlayerID {
	var ids [4]PlayerID
	for i, p := range m.Players {
		ids[i] = p.ID
	}
	return ids
}

func (m Matchup) Contains(id PlayerID) bool {
	for _, p := range m.Players {
		if p.ID == id {
			return true
		}
	}
	return false
}
