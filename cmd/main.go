package main

import (
	"database/sql"
	"fmt"
	"os"

	"tourneyserver/internal/config"
	"tourneyserver/internal/logger"
	"tourneyserver/internal/migrate"
	"tourneyserver/internal/service"
	"tourneyserver/internal/storage/sqlite"
	"tourneyserver/internal/tgbot"
	"tourneyserver/internal/web"

	_ "github.com/mattn/go-sqlite3"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Server.Debug)

	db, err := sql.Open("sqlite3", "file:"+cfg.Server.DBPath+"?cache=shared")
	if err != nil {
		return err
	}
	db.SetMaxOpenConns(1)
	err = db.Ping()
	if err != nil {
		return err
	}
	err = migrate.Up(db)
	if err != nil {
		return err
	}

	tournamentService, err := service.New(sqlite.New(db, log), log)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		bot, err := tgbot.New(tournamentService, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	server, err := web.New(tournamentService, cfg.Server)
	if err != nil {
		return err
	}
	return server.Serve()
}
