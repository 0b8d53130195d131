package tgbot

import (
	"errors"
	"fmt"
	"strings"

	"tourneyserver/internal/service"
)

type InfoCommand struct {
	tournamentService *service.TournamentService
}

func (c *InfoCommand) Run(_ int64, args string) (string, error) {
	name := strings.TrimSpace(args)
	if name == "" {
		return "", errors.New("usage: /info <player name>")
	}
	player, err := c.tournamentService.GetByName(name)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", player.Info.Name)
	fmt.Fprintf(&b, "elo: %.1f\n", player.Stats.Elo)
	fmt.Fprintf(&b, "games: %d, wins: %d\n", player.Stats.Games, player.Stats.Wins)
	if wr, ok := player.Stats.WinRate(); ok {
		fmt.Fprintf(&b, "winrate: %.0f%%\n", wr*100)
	}
	if len(player.Info.Colors) > 0 {
		colors := make([]string, 0, len(player.Info.Colors))
		for _, color := range player.Info.Colors {
			colors = append(colors, string(color))
		}
		fmt.Fprintf(&b, "colors: %s\n", strings.Join(colors, ", "))
	}
	if player.Info.Description != "" {
		fmt.Fprintf(&b, "%s\n", player.Info.Description)
	}
	if link := player.Info.MoxfieldLink(); link != "" {
		fmt.Fprintf(&b, "deck: %s\n", link)
		fmt.Fprintf(&b, "goldfish: %s\n", player.Info.MoxfieldGoldfishLink())
	}
	return b.String(), nil
}

func (c *InfoCommand) Help() string {
	return "Show a player card. Usage: /info <player name>"
}
