package tgbot

import (
	"tourneyserver/internal/service"
)

type Command interface {
	Run(chatID int64, args string) (string, error)
	Help() string
}

func newCommands(ts *service.TournamentService, subs *subscriptions, notify func(string)) map[string]Command {
	commands := map[string]Command{
		"top":     &TopCommand{tournamentService: ts},
		"game":    &NewGameCommand{tournamentService: ts, notify: notify},
		"info":    &InfoCommand{tournamentService: ts},
		"suggest": &SuggestCommand{tournamentService: ts},
		"sub":     &SubCommand{subs: subs},
		"unsub":   &UnsubCommand{subs: subs},
	}
	commands["help"] = &HelpCommand{commands: commands}
	return commands
}
