package tournament

import (
	"errors"
	"math"
	"sort"

	"tourneyserver/internal/domain"
)

// Strategy selects one of the opponent ranking algorithms.
type Strategy int

const (
	StrategyLeastPlayed Strategy = iota
	StrategyNemesis
	StrategyNeighbors
	StrategyWrNeighbors
	StrategyLossWith
	StrategyCombined
)

var ErrUnknownStrategy = errors.New("unknown ranking strategy")

func (s Strategy) String() string {
	switch s {
	case StrategyLeastPlayed:
		return "least_played"
	case StrategyNemesis:
		return "nemesis"
	case StrategyNeighbors:
		return "neighbors"
	case StrategyWrNeighbors:
		return "wr_neighbors"
	case StrategyLossWith:
		return "loss_with"
	case StrategyCombined:
		return "combined"
	}
	return "unknown"
}

func ParseStrategy(s string) (Strategy, bool) {
	for _, strategy := range []Strategy{
		StrategyLeastPlayed,
		StrategyNemesis,
		StrategyNeighbors,
		StrategyWrNeighbors,
		StrategyLossWith,
		StrategyCombined,
	} {
		if strategy.String() == s {
			return strategy, true
		}
	}
	return 0, false
}

// Rank orders possible opponents for the given player, most recommended
// first. The player itself is never part of the result.
func (t *Tournament) Rank(strategy Strategy, id domain.PlayerID) ([]domain.PlayerID, error) {
	if _, ok := t.players[id]; !ok {
		return nil, &domain.InvalidPlayerIDError{ID: id}
	}
	switch strategy {
	case StrategyLeastPlayed:
		return t.rankLeastPlayed(id), nil
	case StrategyNemesis:
		return t.rankNemesis(id), nil
	case StrategyNeighbors:
		return t.rankNeighbors(id), nil
	case StrategyWrNeighbors:
		return t.rankWrNeighbors(id), nil
	case StrategyLossWith:
		return t.rankLossWith(id), nil
	case StrategyCombined:
		return t.rankCombined(id), nil
	}
	return nil, ErrUnknownStrategy
}

// ProposeMatch pairs the player with their top three ranked opponents.
func (t *Tournament) ProposeMatch(strategy Strategy, id domain.PlayerID) (domain.Matchup, error) {
	ranked, err := t.Rank(strategy, id)
	if err != nil {
		return domain.Matchup{}, err
	}
	if len(ranked) < 3 {
		return domain.Matchup{}, domain.ErrNotEnoughPlayers
	}
	return t.CreateMatch([4]domain.PlayerID{id, ranked[0], ranked[1], ranked[2]}), nil
}

func (t *Tournament) opponents(id domain.PlayerID) []domain.PlayerID {
	out := make([]domain.PlayerID, 0, len(t.players))
	for other := range t.players {
		if other != id {
			out = append(out, other)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// rankLeastPlayed prefers opponents the player shared the fewest games
// with, breaking ties by elo proximity.
func (t *Tournament) rankLeastPlayed(id domain.PlayerID) []domain.PlayerID {
	counts := make(map[domain.PlayerID]int, len(t.players))
	for _, g := range t.games {
		if !g.Contains(id) {
			continue
		}
		for _, p := range g.Players {
			if p != id {
				counts[p]++
			}
		}
	}
	focusElo := t.elo(id)
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := opps[i], opps[j]
		if counts[a] != counts[b] {
			return counts[a] < counts[b]
		}
		da, db := math.Abs(focusElo-t.elo(a)), math.Abs(focusElo-t.elo(b))
		if da != db {
			return da < db
		}
		return a < b
	})
	return opps
}

// rankNemesis prefers the opponents who beat the player most. Every game
// the player lost credits its winner; every game the player won debits
// each of the other three.
func (t *Tournament) rankNemesis(id domain.PlayerID) []domain.PlayerID {
	score := make(map[domain.PlayerID]int, len(t.players))
	for _, g := range t.games {
		if !g.Contains(id) {
			continue
		}
		if g.Winner == id {
			for _, p := range g.Players {
				if p != id {
					score[p]--
				}
			}
		} else {
			score[g.Winner]++
		}
	}
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := opps[i], opps[j]
		if score[a] != score[b] {
			return score[a] > score[b]
		}
		if ea, eb := t.elo(a), t.elo(b); ea != eb {
			return ea < eb
		}
		return a < b
	})
	return opps
}

// rankNeighbors prefers opponents closest in elo.
func (t *Tournament) rankNeighbors(id domain.PlayerID) []domain.PlayerID {
	focusElo := t.elo(id)
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := opps[i], opps[j]
		da, db := math.Abs(focusElo-t.elo(a)), math.Abs(focusElo-t.elo(b))
		if da != db {
			return da < db
		}
		return a < b
	})
	return opps
}

// rankWrNeighbors prefers opponents closest in winrate.
func (t *Tournament) rankWrNeighbors(id domain.PlayerID) []domain.PlayerID {
	focusWr := t.winRate(id)
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := opps[i], opps[j]
		da, db := math.Abs(focusWr-t.winRate(a)), math.Abs(focusWr-t.winRate(b))
		if da != db {
			return da < db
		}
		return a < b
	})
	return opps
}

// rankLossWith prefers the table mates the player keeps losing with: a
// shared loss counts double against a shared game.
func (t *Tournament) rankLossWith(id domain.PlayerID) []domain.PlayerID {
	together := make(map[domain.PlayerID]int, len(t.players))
	lost := make(map[domain.PlayerID]int, len(t.players))
	for _, g := range t.games {
		if !g.Contains(id) {
			continue
		}
		for _, p := range g.Players {
			if p == id {
				continue
			}
			together[p]++
			if g.Winner != id {
				lost[p]++
			}
		}
	}
	focusElo := t.elo(id)
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		a, b := opps[i], opps[j]
		sa := together[a] - 2*lost[a]
		sb := together[b] - 2*lost[b]
		if sa != sb {
			return sa < sb
		}
		if together[a] != together[b] {
			return together[a] > together[b]
		}
		da, db := math.Abs(focusElo-t.elo(a)), math.Abs(focusElo-t.elo(b))
		if da != db {
			return da < db
		}
		return a < b
	})
	return opps
}

// rankCombined merges the five orderings: each opponent accumulates its
// rank position in every strategy scaled by that strategy's weight, and
// the lowest total wins.
func (t *Tournament) rankCombined(id domain.PlayerID) []domain.PlayerID {
	parts := []struct {
		rank   []domain.PlayerID
		weight float64
	}{
		{t.rankLeastPlayed(id), t.matchConfig.WeightLeastPlayed},
		{t.rankNemesis(id), t.matchConfig.WeightNemesis},
		{t.rankNeighbors(id), t.matchConfig.WeightNeighbor},
		{t.rankWrNeighbors(id), t.matchConfig.WeightWrNeighbor},
		{t.rankLossWith(id), t.matchConfig.WeightLostWith},
	}
	total := make(map[domain.PlayerID]float64, len(t.players))
	for _, part := range parts {
		for pos, opp := range part.rank {
			total[opp] += float64(pos) * part.weight
		}
	}
	opps := t.opponents(id)
	sort.SliceStable(opps, func(i, j int) bool {
		if total[opps[i]] != total[opps[j]] {
			return total[opps[i]] < total[opps[j]]
		}
		return opps[i] < opps[j]
	})
	return opps
}
