package tgbot

import (
	"errors"
	"strings"

	"tourneyserver/internal/domain"
	"tourneyserver/internal/service"
)

type NewGameCommand struct {
	tournamentService *service.TournamentService
	notify            func(msg string)
}

func (c *NewGameCommand) Run(_ int64, args string) (string, error) {
	rec, names, err := c.processAddGame(args)
	if err != nil {
		return "", err
	}
	if err := c.tournamentService.RegisterGame(rec); err != nil {
		return "", err
	}
	c.notify("new game: " + strings.Join(names[:4], ", ") + ", winner " + names[4])
	return "game registered", nil
}

func (c *NewGameCommand) Help() string {
	return `Register a finished game. Usage: /game <player1> <player2> <player3> <player4> <winner>`
}

func (c *NewGameCommand) processAddGame(arguments string) (domain.GameRecord, [5]string, error) {
	fields := strings.Fields(arguments)
	if len(fields) != 5 {
		return domain.GameRecord{}, [5]string{}, errors.New("need four player names and the winner's name")
	}
	var ids [4]domain.PlayerID
	var names [5]string
	for i := 0; i < 4; i++ {
		player, err := c.tournamentService.GetByName(fields[i])
		if err != nil {
			return domain.GameRecord{}, [5]string{}, errors.New(fields[i] + " not found")
		}
		ids[i] = player.ID
		names[i] = player.Info.Name
	}
	winner, err := c.tournamentService.GetByName(fields[4])
	if err != nil {
		return domain.GameRecord{}, [5]string{}, errors.New(fields[4] + " not found")
	}
	names[4] = winner.Info.Name
	rec, err := domain.NewGameRecord(ids, winner.ID)
	if err != nil {
		return domain.GameRecord{}, [5]string{}, err
	}
	return rec, names, nil
}
