package tgbot

import (
	"context"
	"errors"
	"fmt"

	"tourneyserver/internal/config"
	"tourneyserver/internal/service"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/sirupsen/logrus"
)

type Bot struct {
	bot *tgbotapi.BotAPI
	log *logrus.Entry

	// cancel func to stop the bot
	cancel func()

	subs *subscriptions

	commands map[string]Command
}

var ErrBadRequest = errors.New("unknown command, try /help")

func New(ts *service.TournamentService, cfg config.Config, log *logrus.Logger) (*Bot, error) {
	bot, err := tgbotapi.NewBotAPI(cfg.TgBot.TelegramApiToken)
	if err != nil {
		return nil, fmt.Errorf("env TELEGRAM_APITOKEN: %w", err)
	}
	bot.Debug = cfg.Server.Debug
	_, err = bot.GetMe()
	if err != nil {
		return nil, err
	}

	b := Bot{
		bot:  bot,
		log:  log.WithField("name", "tg_bot"),
		subs: newSubs(),
	}
	b.commands = newCommands(ts, b.subs, b.sendNotification)
	return &b, nil
}

func (b *Bot) Run() {
	ctx, cancel := context.WithCancel(context.Background())
	b.cancel = cancel

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.bot.GetUpdatesChan(u)

	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleMessage(update)
		}
	}
}

func (b *Bot) Stop() {
	if b.cancel != nil {
		b.cancel()
	}
}

func (b *Bot) handleMessage(update tgbotapi.Update) {
	if update.Message == nil { // ignore any non-Message updates
		return
	}
	log := b.log.WithFields(map[string]interface{}{
		"chat_id": update.Message.Chat.ID,
		"text":    update.Message.Text,
	})

	msg := tgbotapi.NewMessage(update.Message.Chat.ID, "")
	command, ok := b.commands[update.Message.Command()]
	if !ok {
		msg.Text = ErrBadRequest.Error()
	} else {
		text, err := command.Run(update.Message.Chat.ID, update.Message.CommandArguments())
		if err != nil {
			text = err.Error()
		}
		msg.Text = text
	}
	if _, err := b.bot.Send(msg); err != nil {
		log.WithError(err).Error("send error")
	}
}

func (b *Bot) sendNotification(text string) {
	for _, chatID := range b.subs.List() {
		msg := tgbotapi.NewMessage(chatID, text)
		if _, err := b.bot.Send(msg); err != nil {
			b.log.WithError(err).Error("notification send error")
			return
		}
	}
}
