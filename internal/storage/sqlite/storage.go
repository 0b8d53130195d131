package sqlite

import (
	"database/sql"
	"errors"

	"tourneyserver/gen/model"
	"tourneyserver/gen/table"
	"tourneyserver/internal/domain"
	"tourneyserver/internal/storage"
	"tourneyserver/internal/tournament"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sirupsen/logrus"
)

type Storage struct {
	db  *sql.DB
	log *logrus.Entry
}

var _ storage.SnapshotStorage = (*Storage)(nil)

func New(db *sql.DB, l *logrus.Logger) *Storage {
	return &Storage{
		db:  db,
		log: l.WithField("from", "sqlite-storage"),
	}
}

func (s *Storage) Load() (tournament.Snapshot, bool, error) {
	var settings model.Settings
	err := table.Settings.
		SELECT(table.Settings.AllColumns).
		FROM(table.Settings).
		Query(s.db, &settings)
	if errors.Is(err, qrm.ErrNoRows) {
		return tournament.Snapshot{}, false, nil
	}
	if err != nil {
		return tournament.Snapshot{}, false, err
	}

	var players []model.Players
	err = table.Players.
		SELECT(table.Players.AllColumns).
		FROM(table.Players).
		Query(s.db, &players)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return tournament.Snapshot{}, false, err
	}

	var games []model.Games
	err = table.Games.
		SELECT(table.Games.AllColumns).
		FROM(table.Games).
		ORDER_BY(table.Games.Position.ASC()).
		Query(s.db, &games)
	if err != nil && !errors.Is(err, qrm.ErrNoRows) {
		return tournament.Snapshot{}, false, err
	}

	cfg, matchCfg := convertSettingsToDomain(settings)
	snapshot := tournament.Snapshot{
		Config:      cfg,
		MatchConfig: &matchCfg,
		Players:     make(map[domain.PlayerID]domain.PlayerInfo, len(players)),
		Games:       make([]domain.GameRecord, 0, len(games)),
	}
	for _, player := range players {
		id, info := convertPlayerToDomain(player)
		snapshot.Players[id] = info
	}
	for _, game := range games {
		snapshot.Games = append(snapshot.Games, convertGameToDomain(game))
	}
	s.log.WithFields(map[string]interface{}{
		"players": len(players),
		"games":   len(games),
	}).Info("tournament loaded")
	return snapshot, true, nil
}

// Save rewrites all three tables inside one transaction, so a reader
// never observes a half-written tournament.
func (s *Storage) Save(snapshot tournament.Snapshot) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, t := range []sqlite.DeleteStatement{
		table.Players.DELETE().WHERE(sqlite.Bool(true)),
		table.Games.DELETE().WHERE(sqlite.Bool(true)),
		table.Settings.DELETE().WHERE(sqlite.Bool(true)),
	} {
		if _, err := t.Exec(tx); err != nil {
			return err
		}
	}

	matchCfg := domain.DefaultMatchmakerConfig()
	if snapshot.MatchConfig != nil {
		matchCfg = *snapshot.MatchConfig
	}
	_, err = table.Settings.
		INSERT(table.Settings.AllColumns).
		MODEL(convertSettingsFromDomain(snapshot.Config, matchCfg)).
		Exec(tx)
	if err != nil {
		return err
	}

	for id, info := range snapshot.Players {
		_, err = table.Players.
			INSERT(table.Players.AllColumns).
			MODEL(convertPlayerFromDomain(id, info)).
			Exec(tx)
		if err != nil {
			return err
		}
	}

	for position, game := range snapshot.Games {
		_, err = table.Games.
			INSERT(table.Games.AllColumns).
			MODEL(convertGameFromDomain(position, game)).
			Exec(tx)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
