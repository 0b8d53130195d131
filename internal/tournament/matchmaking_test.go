package tournament

import (
	"errors"
	"reflect"
	"testing"

	"tourneyserver/internal/domain"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{
		StrategyLeastPlayed,
		StrategyNemesis,
		StrategyNeighbors,
		StrategyWrNeighbors,
		StrategyLossWith,
		StrategyCombined,
	} {
		got, ok := ParseStrategy(s.String())
		if !ok || got != s {
			t.Errorf("ParseStrategy(%q) = %v, %v, want %v, true", s.String(), got, ok, s)
		}
	}
	if _, ok := ParseStrategy("bogus"); ok {
		t.Error("ParseStrategy accepted an unknown name")
	}
}

func TestRank_FreshPlayersTieByID(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	for _, s := range []Strategy{
		StrategyLeastPlayed,
		StrategyNemesis,
		StrategyNeighbors,
		StrategyWrNeighbors,
		StrategyLossWith,
		StrategyCombined,
	} {
		got, err := tour.Rank(s, ids[2])
		if err != nil {
			t.Fatalf("Rank(%v) error = %v", s, err)
		}
		want := []domain.PlayerID{ids[0], ids[1], ids[3], ids[4]}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Rank(%v) = %v, want %v", s, got, want)
		}
	}
}

func TestRank_UnknownPlayer(t *testing.T) {
	tour, _ := newTestTournament(t, "Alice", "Bob")
	_, err := tour.Rank(StrategyNeighbors, 99)
	var want *domain.InvalidPlayerIDError
	if !errors.As(err, &want) {
		t.Errorf("Rank() error = %v, want InvalidPlayerIDError", err)
	}
}

func TestRank_LeastPlayed(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])

	got, err := tour.Rank(StrategyLeastPlayed, ids[0])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	// Eve never played against Alice; the three losers tie and fall back
	// to id order.
	want := []domain.PlayerID{ids[4], ids[1], ids[2], ids[3]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_Nemesis(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	// Dave beat Alice once; Bob and Carol only ever lost to her.
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[3])

	got, err := tour.Rank(StrategyNemesis, ids[0])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	want := []domain.PlayerID{ids[3], ids[1], ids[2]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_Neighbors(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	playGame(t, tour, [4]domain.PlayerID{ids[1], ids[2], ids[3], ids[4]}, ids[1])

	// Alice sat out at 1500; Eve stayed closest among the players who
	// moved, but the three losers are all nearer than the winner.
	got, err := tour.Rank(StrategyNeighbors, ids[0])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	want := []domain.PlayerID{ids[2], ids[3], ids[4], ids[1]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_WrNeighbors(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	playGame(t, tour, [4]domain.PlayerID{ids[1], ids[2], ids[3], ids[4]}, ids[1])

	// Alice has no games, so her winrate defaults to one in four. Bob sits
	// at 1.0, the losers at 0.
	got, err := tour.Rank(StrategyWrNeighbors, ids[0])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	want := []domain.PlayerID{ids[2], ids[3], ids[4], ids[1]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Rank() = %v, want %v", got, want)
	}
}

func TestRank_LossWith(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	// Alice lost twice at Bob's table and once at Eve's.
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[3])
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[2])
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[2], ids[3], ids[4]}, ids[0])

	got, err := tour.Rank(StrategyLossWith, ids[0])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if got[0] != ids[1] {
		t.Errorf("Rank()[0] = %v, want %v (most shared losses)", got[0], ids[1])
	}
	if len(got) != 4 {
		t.Errorf("Rank() length = %d, want 4", len(got))
	}
}

func TestRank_CombinedExcludesFocus(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[1])
	playGame(t, tour, [4]domain.PlayerID{ids[1], ids[2], ids[3], ids[4]}, ids[4])

	got, err := tour.Rank(StrategyCombined, ids[1])
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(got) != 4 {
		t.Fatalf("Rank() length = %d, want 4", len(got))
	}
	for _, id := range got {
		if id == ids[1] {
			t.Fatal("combined ranking contains the focus player")
		}
	}
}

func TestProposeMatch(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave", "Eve")
	m, err := tour.ProposeMatch(StrategyCombined, ids[2])
	if err != nil {
		t.Fatalf("ProposeMatch() error = %v", err)
	}
	if m.Players[0].ID != ids[2] {
		t.Errorf("first seat = %v, want the requesting player %v", m.Players[0].ID, ids[2])
	}
	if !m.Contains(ids[2]) {
		t.Error("proposed match does not contain the requesting player")
	}
}

func TestProposeMatch_NotEnoughPlayers(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol")
	_, err := tour.ProposeMatch(StrategyNeighbors, ids[0])
	if !errors.Is(err, domain.ErrNotEnoughPlayers) {
		t.Errorf("ProposeMatch() error = %v, want ErrNotEnoughPlayers", err)
	}
}
