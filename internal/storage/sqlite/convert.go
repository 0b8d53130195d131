package sqlite

import (
	"strings"

	"tourneyserver/gen/model"
	"tourneyserver/internal/domain"
)

func convertPlayerFromDomain(id domain.PlayerID, info domain.PlayerInfo) model.Players {
	colors := make([]string, 0, len(info.Colors))
	for _, c := range info.Colors {
		colors = append(colors, string(c))
	}
	var moxfield *string
	if info.MoxfieldID != "" {
		m := info.MoxfieldID
		moxfield = &m
	}
	return model.Players{
		ID:          int32(id),
		Name:        info.Name,
		Description: info.Description,
		Colors:      strings.Join(colors, ","),
		MoxfieldID:  moxfield,
	}
}

func convertPlayerToDomain(player model.Players) (domain.PlayerID, domain.PlayerInfo) {
	var colors []domain.Color
	if player.Colors != "" {
		for _, c := range strings.Split(player.Colors, ",") {
			colors = append(colors, domain.Color(c))
		}
	}
	var moxfield string
	if player.MoxfieldID != nil {
		moxfield = *player.MoxfieldID
	}
	return domain.PlayerID(player.ID), domain.PlayerInfo{
		Name:        player.Name,
		Description: player.Description,
		Colors:      domain.NormalizeColors(colors),
		MoxfieldID:  moxfield,
	}
}

func convertGameFromDomain(position int, game domain.GameRecord) model.Games {
	return model.Games{
		Position: int32(position),
		Player1:  int32(game.Players[0]),
		Player2:  int32(game.Players[1]),
		Player3:  int32(game.Players[2]),
		Player4:  int32(game.Players[3]),
		Winner:   int32(game.Winner),
	}
}

func convertGameToDomain(game model.Games) domain.GameRecord {
	return domain.GameRecord{
		Players: [4]domain.PlayerID{
			domain.PlayerID(game.Player1),
			domain.PlayerID(game.Player2),
			domain.PlayerID(game.Player3),
			domain.PlayerID(game.Player4),
		},
		Winner: domain.PlayerID(game.Winner),
	}
}

func convertSettingsFromDomain(cfg domain.ScoreConfig, matchCfg domain.MatchmakerConfig) model.Settings {
	return model.Settings{
		ID:                1,
		StartingElo:       cfg.StartingElo,
		GamePoints:        cfg.GamePoints,
		EloPow:            cfg.EloPow,
		WrPow:             cfg.WrPow,
		EloWeight:         cfg.EloWeight,
		WrWeight:          cfg.WrWeight,
		WeightLeastPlayed: matchCfg.WeightLeastPlayed,
		WeightNemesis:     matchCfg.WeightNemesis,
		WeightNeighbor:    matchCfg.WeightNeighbor,
		WeightWrNeighbor:  matchCfg.WeightWrNeighbor,
		WeightLostWith:    matchCfg.WeightLostWith,
	}
}

func convertSettingsToDomain(settings model.Settings) (domain.ScoreConfig, domain.MatchmakerConfig) {
	cfg := domain.ScoreConfig{
		StartingElo: settings.StartingElo,
		GamePoints:  settings.GamePoints,
		EloPow:      settings.EloPow,
		WrPow:       settings.WrPow,
		EloWeight:   settings.EloWeight,
		WrWeight:    settings.WrWeight,
	}
	matchCfg := domain.MatchmakerConfig{
		WeightLeastPlayed: settings.WeightLeastPlayed,
		WeightNemesis:     settings.WeightNemesis,
		WeightNeighbor:    settings.WeightNeighbor,
		WeightWrNeighbor:  settings.WeightWrNeighbor,
		WeightLostWith:    settings.WeightLostWith,
	}
	return cfg, matchCfg
}
