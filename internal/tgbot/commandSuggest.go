package tgbot

import (
	"errors"
	"fmt"
	"strings"

	"tourneyserver/internal/service"
	"tourneyserver/internal/tournament"
)

type SuggestCommand struct {
	tournamentService *service.TournamentService
}

func (c *SuggestCommand) Run(_ int64, args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("usage: /suggest <player name>")
	}
	player, err := c.tournamentService.GetByName(name)
	if err != nil {
		return "", err
	}
	m, err := c.tournamentService.ProposeMatch(tournament.StrategyCombined, player.ID)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("suggested table:\n")
	for _, seat := range m.Players {
		opponent, err := c.tournamentService.GetPlayer(seat.ID)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s (%.1f, win chance %.0f%%)\n",
			opponent.Info.Name, seat.Stats.Elo, seat.Expected*100)
	}
	return b.String(), nil
}

func (c *SuggestCommand) Help() string {
	return "Suggest a table for a player. Usage: /suggest <player name>"
}
