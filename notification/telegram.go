package notification

import (
	"fmt"
	"time"

	"github.com/jpillora/backoff"
	log "github.com/sirupsen/logrus"
	tb "gopkg.in/tucnak/telebot.v2"

	"github.com/quantauri/bandplot/model"
)

// Notifier delivers exported charts to an external channel.
type Notifier interface {
	NotifyRender(record *model.RenderRecord) error
}

const maxSendAttempts = 3

type telegram struct {
	chatID int64
	client *tb.Bot
}

// NewTelegram builds a notifier that sends chart images to a chat.
func NewTelegram(token string, chatID int64) (Notifier, error) {
	client, err := tb.NewBot(tb.Settings{
		Token:     token,
		ParseMode: tb.ModeMarkdown,
	})
	if err != nil {
		return nil, err
	}

	return &telegram{
		chatID: chatID,
		client: client,
	}, nil
}

// NotifyRender uploads the PNG behind the record as a photo. Transient send
// failures are retried with exponential backoff.
func (t telegram) NotifyRender(record *model.RenderRecord) error {
	photo := &tb.Photo{
		File: tb.FromDisk(record.Path),
		Caption: fmt.Sprintf("Chart `%s` (%d panels, %d rows)",
			record.Path, record.Panels, record.Rows),
	}

	wait := &backoff.Backoff{
		Min:    500 * time.Millisecond,
		Max:    10 * time.Second,
		Factor: 2,
	}

	var err error
	for attempt := 0; attempt < maxSendAttempts; attempt++ {
		if attempt > 0 {
			time.Sleep(wait.Duration())
		}
		_, err = t.client.Send(&tb.Chat{ID: t.chatID}, photo)
		if err == nil {
			return nil
		}
		log.WithError(err).Warnf("notification/telegram: send attempt %d failed", attempt+1)
	}
	return err
}
