package service

import (
	"testing"

	"tourneyserver/internal/domain"
	"tourneyserver/internal/logger"
	"tourneyserver/internal/tournament"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	snapshot tournament.Snapshot
	stored   bool
	saves    int
}

func (m *memStorage) Load() (tournament.Snapshot, bool, error) {
	return m.snapshot, m.stored, nil
}

func (m *memStorage) Save(snapshot tournament.Snapshot) error {
	m.snapshot = snapshot
	m.stored = true
	m.saves++
	return nil
}

func newTestService(t *testing.T) (*TournamentService, *memStorage) {
	t.Helper()
	st := &memStorage{}
	svc, err := New(st, logger.New(false))
	require.NoError(t, err)
	return svc, st
}

func TestService_RegisterAndRatings(t *testing.T) {
	svc, st := newTestService(t)

	var ids []domain.PlayerID
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		player, err := svc.RegisterPlayer(name)
		require.NoError(t, err)
		ids = append(ids, player.ID)
	}
	assert.Equal(t, 4, st.saves)

	rec, err := domain.NewGameRecord([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[1])
	require.NoError(t, err)
	require.NoError(t, svc.RegisterGame(rec))

	ratings := svc.GetRatings()
	require.Len(t, ratings, 4)
	assert.Equal(t, ids[1], ratings[0].ID)
	assert.Equal(t, 1, ratings[0].Rank)
	assert.Equal(t, 2, ratings[1].Rank)
	assert.InDelta(t, 1525, ratings[0].Stats.Elo, 1e-9)
}

func TestService_LoadsStoredTournament(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.RegisterPlayer("Alice")
	require.NoError(t, err)

	reopened, err := New(st, logger.New(false))
	require.NoError(t, err)
	player, err := reopened.GetByName("Alice")
	require.NoError(t, err)
	assert.Equal(t, "Alice", player.Info.Name)
}

func TestService_FailedMutationDoesNotPersist(t *testing.T) {
	svc, st := newTestService(t)
	_, err := svc.RegisterPlayer("Alice")
	require.NoError(t, err)
	saves := st.saves

	_, err = svc.RegisterPlayer("Alice")
	require.Error(t, err)
	assert.Equal(t, saves, st.saves)
}

func TestService_CreateMatchRequiresRegisteredPlayers(t *testing.T) {
	svc, _ := newTestService(t)
	var ids []domain.PlayerID
	for _, name := range []string{"Alice", "Bob", "Carol"} {
		player, err := svc.RegisterPlayer(name)
		require.NoError(t, err)
		ids = append(ids, player.ID)
	}
	_, err := svc.CreateMatch([4]domain.PlayerID{ids[0], ids[1], ids[2], 99})
	var invalid *domain.InvalidPlayerIDError
	require.ErrorAs(t, err, &invalid)
}

func TestService_ExportImport(t *testing.T) {
	svc, _ := newTestService(t)
	var ids []domain.PlayerID
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave"} {
		player, err := svc.RegisterPlayer(name)
		require.NoError(t, err)
		ids = append(ids, player.ID)
	}
	rec, err := domain.NewGameRecord([4]domain.PlayerID{ids[0], ids[1], ids[2], ids[3]}, ids[0])
	require.NoError(t, err)
	require.NoError(t, svc.RegisterGame(rec))

	data, err := svc.Export()
	require.NoError(t, err)

	other, _ := newTestService(t)
	require.NoError(t, other.Import(data))
	assert.Equal(t, svc.GetRatings(), other.GetRatings())

	require.Error(t, other.Import([]byte(`{"version": 99}`)))
}

func TestService_IngestTSVPersistsPartialBatch(t *testing.T) {
	svc, st := newTestService(t)
	require.NoError(t, svc.IngestTSV("Alice\tBob\tCarol\tDave\tAlice\n"))
	assert.True(t, st.stored)
	ratings := svc.GetRatings()
	assert.Len(t, ratings, 4)
}

func TestService_ProposeMatch(t *testing.T) {
	svc, _ := newTestService(t)
	var ids []domain.PlayerID
	for _, name := range []string{"Alice", "Bob", "Carol", "Dave", "Eve"} {
		player, err := svc.RegisterPlayer(name)
		require.NoError(t, err)
		ids = append(ids, player.ID)
	}
	m, err := svc.ProposeMatch(tournament.StrategyCombined, ids[4])
	require.NoError(t, err)
	assert.Equal(t, ids[4], m.Players[0].ID)
}
