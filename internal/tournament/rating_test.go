package tournament

import (
	"errors"
	"math"
	"testing"

	"tourneyserver/internal/domain"
)

const eps = 1e-9

func TestCreateMatch_ExpectedSumsToOne(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[1])

	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})
	var total float64
	for _, p := range m.Players {
		total += p.Expected
	}
	if math.Abs(total-1) > eps {
		t.Errorf("sum of expected = %v, want 1", total)
	}
}

func TestCreateMatch_FreshPlayersAreEven(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})
	for _, p := range m.Players {
		if math.Abs(p.Expected-0.25) > eps {
			t.Errorf("player %d expected = %v, want 0.25", p.ID, p.Expected)
		}
	}
}

func TestRegisterMatch_EvenGame(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])

	winner := mustStats(t, tour, ids[0])
	if math.Abs(winner.Elo-1525) > eps {
		t.Errorf("winner elo = %v, want 1525", winner.Elo)
	}
	if winner.Games != 1 || winner.Wins != 1 {
		t.Errorf("winner games/wins = %d/%d, want 1/1", winner.Games, winner.Wins)
	}
	wantLoss := 1500 - 25.0*0.25/0.75
	for _, id := range ids[1:] {
		loser := mustStats(t, tour, id)
		if math.Abs(loser.Elo-wantLoss) > eps {
			t.Errorf("loser %d elo = %v, want %v", id, loser.Elo, wantLoss)
		}
		if loser.Games != 1 || loser.Wins != 0 {
			t.Errorf("loser %d games/wins = %d/%d, want 1/0", id, loser.Games, loser.Wins)
		}
	}
}

func TestCreateMatch_HigherEloExpectsMore(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])

	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})
	if m.Players[0].Expected <= m.Players[1].Expected {
		t.Errorf("leader expected %v not above trailer expected %v",
			m.Players[0].Expected, m.Players[1].Expected)
	}
	if m.Players[0].EloWin >= m.Players[1].EloWin {
		t.Errorf("leader elo win %v not below trailer elo win %v",
			m.Players[0].EloWin, m.Players[1].EloWin)
	}
}

func TestRegisterMatch_WinnerNotInMatch(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})
	err := tour.RegisterMatch(m, ids[4])
	var want *domain.WinnerNotInMatchError
	if !errors.As(err, &want) {
		t.Fatalf("RegisterMatch() error = %v, want WinnerNotInMatchError", err)
	}
	if got := mustStats(t, tour, ids[0]); got.Games != 0 {
		t.Errorf("games after rejected match = %d, want 0", got.Games)
	}
	if len(tour.Games()) != 0 {
		t.Errorf("game log length = %d, want 0", len(tour.Games()))
	}
}

func TestRegisterMatch_UnregisteredPlayer(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol")
	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], 99})
	err := tour.RegisterMatch(m, ids[0])
	var want *domain.InvalidPlayerIDError
	if !errors.As(err, &want) {
		t.Fatalf("RegisterMatch() error = %v, want InvalidPlayerIDError", err)
	}
	if got := mustStats(t, tour, ids[0]); got.Games != 0 {
		t.Errorf("games after rejected match = %d, want 0", got.Games)
	}
}

func TestUpdateMatch_RefreshAfterConfigChange(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	stale := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})

	cfg := tour.ScoreConfig()
	cfg.GamePoints = 50
	if err := tour.SetScoreConfig(cfg); err != nil {
		t.Fatalf("SetScoreConfig() error = %v", err)
	}

	fresh := tour.UpdateMatch(stale)
	if math.Abs(fresh.Players[0].EloWin-50) > eps {
		t.Errorf("refreshed elo win = %v, want 50", fresh.Players[0].EloWin)
	}
	if math.Abs(stale.Players[0].EloWin-25) > eps {
		t.Errorf("stale elo win = %v, want 25", stale.Players[0].EloWin)
	}
}

func TestUpdateMatch_NoChangeKeepsMatchup(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	m := tour.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]})
	// Later games move the stats but not the config, so the matchup as
	// presented to the players stays valid.
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])
	got := tour.UpdateMatch(m)
	if got != m {
		t.Errorf("UpdateMatch() changed a matchup with current config")
	}
}
