package tournament

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourneyserver/internal/domain"
)

func TestSnapshot_RoundTrip(t *testing.T) {
	tour, ids := newTestTournament(t, "Alice", "Bob", "Carol", "Dave")
	require.NoError(t, tour.SetPlayerInfo(ids[0], domain.PlayerInfo{
		Name:       "Alice",
		Colors:     []domain.Color{domain.Blue, domain.Black},
		MoxfieldID: "alice-deck",
	}))
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])
	playGame(t, tour, [4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[2])

	data, err := json.Marshal(tour.Snapshot())
	require.NoError(t, err)

	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	restored, err := FromSnapshot(snap)
	require.NoError(t, err)

	assert.Equal(t, tour.ScoreConfig(), restored.ScoreConfig())
	assert.Equal(t, tour.MatchConfig(), restored.MatchConfig())
	assert.Equal(t, tour.Games(), restored.Games())
	for _, id := range ids {
		wantInfo, err := tour.GetPlayerInfo(id)
		require.NoError(t, err)
		gotInfo, err := restored.GetPlayerInfo(id)
		require.NoError(t, err)
		assert.Equal(t, wantInfo, gotInfo)
		assert.Equal(t, mustStats(t, tour, id), mustStats(t, restored, id))
	}
}

func TestFromSnapshot_MissingMatchConfigDefaults(t *testing.T) {
	data := []byte(`{
		"config": {"starting_elo": 1500, "game_points": 25, "elo_pow": 6, "wr_pow": 1, "elo_weight": 65, "wr_weight": 100},
		"players": {"0": {"name": "Alice"}, "1": {"name": "Bob"}},
		"games": []
	}`)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	restored, err := FromSnapshot(snap)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultMatchmakerConfig(), restored.MatchConfig())

	id, err := restored.GetIDByName("Bob")
	require.NoError(t, err)
	assert.Equal(t, domain.PlayerID(1), id)
}

func TestFromSnapshot_RejectsCorruptGame(t *testing.T) {
	snap := Snapshot{
		Config: domain.DefaultScoreConfig(),
		Players: map[domain.PlayerID]domain.PlayerInfo{
			0: {Name: "Alice"},
			1: {Name: "Bob"},
			2: {Name: "Carol"},
			3: {Name: "Dave"},
		},
		Games: []domain.GameRecord{
			{Players: [4]domain.PlayerID{0, 0, 1, 2}, Winner: 0},
		},
	}
	_, err := FromSnapshot(snap)
	require.Error(t, err)
}
