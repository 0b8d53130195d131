package service

import (
	"errors"
	"sort"
	"sync"

	"tourneyserver/internal/domain"
	"tourneyserver/internal/storage"
	"tourneyserver/internal/tournament"

	"github.com/sirupsen/logrus"
)

// TournamentService serializes access to the in-memory tournament and
// writes a snapshot to storage after every successful mutation.
type TournamentService struct {
	mu      sync.Mutex
	t       *tournament.Tournament
	storage storage.SnapshotStorage
	log     *logrus.Entry
}

func New(st storage.SnapshotStorage, l *logrus.Logger) (*TournamentService, error) {
	log := l.WithField("from", "tournament-service")
	snapshot, ok, err := st.Load()
	if err != nil {
		return nil, err
	}
	var t *tournament.Tournament
	if ok {
		t, err = tournament.FromSnapshot(snapshot)
		if err != nil {
			return nil, err
		}
	} else {
		log.Info("no stored tournament, starting fresh")
		t = tournament.New()
	}
	return &TournamentService{
		t:       t,
		storage: st,
		log:     log,
	}, nil
}

func (s *TournamentService) persist() error {
	err := s.storage.Save(s.t.Snapshot())
	if err != nil {
		s.log.WithError(err).Error("unable to persist tournament")
	}
	return err
}

func (s *TournamentService) RegisterPlayer(name string) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.t.RegisterPlayer(name)
	if err != nil {
		return domain.Player{}, err
	}
	if err := s.persist(); err != nil {
		return domain.Player{}, err
	}
	return s.playerView(id)
}

func (s *TournamentService) GetPlayer(id domain.PlayerID) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playerView(id)
}

func (s *TournamentService) GetByName(name string) (domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.t.GetIDByName(name)
	if err != nil {
		return domain.Player{}, err
	}
	return s.playerView(id)
}

func (s *TournamentService) SetPlayerInfo(id domain.PlayerID, info domain.PlayerInfo) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.SetPlayerInfo(id, info); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) RenamePlayer(from, to string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.RenamePlayer(from, to); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) RemovePlayer(id domain.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.RemovePlayer(id); err != nil {
		return err
	}
	return s.persist()
}

// GetRatings returns every player ordered by elo, best first, with the
// leaderboard rank filled in.
func (s *TournamentService) GetRatings() []domain.Player {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ratings()
}

func (s *TournamentService) ratings() []domain.Player {
	ids := s.t.PlayerIDs()
	players := make([]domain.Player, 0, len(ids))
	for _, id := range ids {
		player, err := s.playerView(id)
		if err != nil {
			continue
		}
		players = append(players, player)
	}
	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Stats.Elo > players[j].Stats.Elo
	})
	for i := range players {
		players[i].Rank = i + 1
	}
	return players
}

func (s *TournamentService) playerView(id domain.PlayerID) (domain.Player, error) {
	info, err := s.t.GetPlayerInfo(id)
	if err != nil {
		return domain.Player{}, err
	}
	stats, err := s.t.PlayerStats(id)
	if err != nil {
		return domain.Player{}, err
	}
	return domain.Player{
		ID:    id,
		Info:  info,
		Stats: stats,
	}, nil
}

// GameView is a game log entry joined with current player cards.
type GameView struct {
	Index   int              `json:"index"`
	Players [4]domain.Player `json:"players"`
	Winner  domain.PlayerID  `json:"winner"`
}

func (s *TournamentService) ListGames() []GameView {
	s.mu.Lock()
	defer s.mu.Unlock()
	games := s.t.Games()
	views := make([]GameView, 0, len(games))
	for i, g := range games {
		view := GameView{Index: i, Winner: g.Winner}
		for j, id := range g.Players {
			player, err := s.playerView(id)
			if err != nil {
				player = domain.Player{ID: id}
			}
			view.Players[j] = player
		}
		views = append(views, view)
	}
	return views
}

// CreateMatch previews a game between four registered players without
// committing anything.
func (s *TournamentService) CreateMatch(ids [4]domain.PlayerID) (domain.Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range ids {
		if _, err := s.t.GetPlayerInfo(id); err != nil {
			return domain.Matchup{}, err
		}
	}
	return s.t.CreateMatch(ids), nil
}

func (s *TournamentService) RegisterMatch(m domain.Matchup, winner domain.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.RegisterMatch(m, winner); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) RegisterGame(rec domain.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.RegisterRecord(rec); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) SetGameWinner(index int, winner domain.PlayerID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.SetGameWinner(index, winner); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) DeleteGame(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.DeleteGame(index); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) ScoreConfig() domain.ScoreConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.ScoreConfig()
}

func (s *TournamentService) SetScoreConfig(cfg domain.ScoreConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.t.SetScoreConfig(cfg); err != nil {
		return err
	}
	return s.persist()
}

func (s *TournamentService) MatchConfig() domain.MatchmakerConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.MatchConfig()
}

func (s *TournamentService) SetMatchConfig(cfg domain.MatchmakerConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.t.SetMatchConfig(cfg)
	return s.persist()
}

func (s *TournamentService) Rank(strategy tournament.Strategy, id domain.PlayerID) ([]domain.Player, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids, err := s.t.Rank(strategy, id)
	if err != nil {
		return nil, err
	}
	players := make([]domain.Player, 0, len(ids))
	for _, rankedID := range ids {
		player, err := s.playerView(rankedID)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}
	return players, nil
}

func (s *TournamentService) ProposeMatch(strategy tournament.Strategy, id domain.PlayerID) (domain.Matchup, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.ProposeMatch(strategy, id)
}

// Reload forces a rebuild of all derived stats from the game log.
func (s *TournamentService) Reload() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.t.Reload()
}

// IngestTSV feeds a batch of historical games. Records committed before
// a mid-batch failure stay committed, so the snapshot is persisted even
// on error.
func (s *TournamentService) IngestTSV(text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	ingestErr := s.t.IngestTSV(text)
	return errors.Join(ingestErr, s.persist())
}
