package tgbot

import (
	"strconv"
	"strings"

	"tourneyserver/internal/service"
)

type TopCommand struct {
	tournamentService *service.TournamentService
}

func (c *TopCommand) Run(_ int64, _ string) (string, error) {
	ratings := c.tournamentService.GetRatings()
	var buffer strings.Builder
	for i := range ratings {
		if i > 9 {
			break
		}
		buffer.WriteString(strconv.Itoa(ratings[i].Rank))
		buffer.WriteString(". ")
		buffer.WriteString(ratings[i].Info.Name)
		buffer.WriteString(" (")
		buffer.WriteString(strconv.FormatFloat(ratings[i].Stats.Elo, 'f', 1, 64))
		buffer.WriteString(")\n")
	}
	if buffer.Len() == 0 {
		return "no players yet", nil
	}
	return buffer.String(), nil
}

func (c *TopCommand) Help() string {
	return "Show the top of the leaderboard"
}
