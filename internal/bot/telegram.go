package bot

import (
	"context"
	"strings"
	"time"

	"cryptobuddy/internal/domain"

	"github.com/sirupsen/logrus"
	tele "gopkg.in/telebot.v3"
)

const askTimeout = 30 * time.Second

// Asker answers a chat message.
type Asker interface {
	Ask(ctx context.Context, message string) (*domain.Exchange, error)
}

// StartTelegramBot starts long polling in the background and returns the bot so
// the caller can stop it. It returns nil when token is empty or the bot cannot
// be created.
func StartTelegramBot(token string, advisor Asker, logger logrus.FieldLogger) *tele.Bot {
	log := logger.WithField("component", "telegram")
	if token == "" {
		log.Info("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return nil
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.WithError(err).Error("failed to create Telegram bot")
		return nil
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	help := func(c tele.Context) error {
		return c.Send(replyFor(advisor, "help", log))
	}
	b.Handle("/start", help)
	b.Handle("/help", help)

	b.Handle("/price", func(c tele.Context) error {
		args := c.Args()
		if len(args) == 0 {
			return c.Send("Usage: /price bitcoin")
		}
		return c.Send(replyFor(advisor, "price of "+strings.Join(args, " "), log))
	})

	b.Handle(tele.OnText, func(c tele.Context) error {
		return c.Send(replyFor(advisor, c.Text(), log))
	})

	log.Info("Telegram bot started")
	go b.Start()
	return b
}

func replyFor(advisor Asker, text string, log logrus.FieldLogger) string {
	ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
	defer cancel()

	ex, err := advisor.Ask(ctx, text)
	if err != nil {
		log.WithError(err).Warn("advisor failed")
		return "Sorry, I couldn't answer that right now. Please try again."
	}
	return formatReply(ex.Reply)
}

func formatReply(r domain.Reply) string {
	if r.Detail == "" {
		return r.Headline
	}
	return r.Headline + "\n\n" + r.Detail
}
