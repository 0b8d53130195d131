package web

import (
	"errors"

	"tourneyserver/internal/domain"
)

type createGame struct {
	Players [4]uint32 `json:"players"`
	Winner  uint32    `json:"winner"`
}

var ErrWrongWinner = errors.New("winner must be one of the four players")
var ErrRepeatedPlayer = errors.New("all four players must be distinct")

func (c createGame) Validate() error {
	for i := 0; i < len(c.Players); i++ {
		for j := i + 1; j < len(c.Players); j++ {
			if c.Players[i] == c.Players[j] {
				return ErrRepeatedPlayer
			}
		}
	}
	for _, p := range c.Players {
		if p == c.Winner {
			return nil
		}
	}
	return ErrWrongWinner
}

func (c createGame) convertToDomainRecord() (domain.GameRecord, error) {
	return domain.NewGameRecord([4]domain.PlayerID{
		domain.PlayerID(c.Players[0]),
		domain.PlayerID(c.Players[1]),
		domain.PlayerID(c.Players[2]),
		domain.PlayerID(c.Players[3]),
	}, domain.PlayerID(c.Winner))
}

type createPlayer struct {
	Name string `json:"name"`
}

type updatePlayer struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Colors      []string `json:"colors"`
	MoxfieldID  string   `json:"moxfield_id"`
}

func (u updatePlayer) convertToDomainInfo() domain.PlayerInfo {
	colors := make([]domain.Color, 0, len(u.Colors))
	for _, c := range u.Colors {
		colors = append(colors, domain.Color(c))
	}
	return domain.PlayerInfo{
		Name:        u.Name,
		Description: u.Description,
		Colors:      colors,
		MoxfieldID:  u.MoxfieldID,
	}
}

type renamePlayer struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type setWinner struct {
	Winner uint32 `json:"winner"`
}

type matchupRequest struct {
	Players [4]uint32 `json:"players"`
}

func (m matchupRequest) convertToDomainIDs() [4]domain.PlayerID {
	return [4]domain.PlayerID{
		domain.PlayerID(m.Players[0]),
		domain.PlayerID(m.Players[1]),
		domain.PlayerID(m.Players[2]),
		domain.PlayerID(m.Players[3]),
	}
}
