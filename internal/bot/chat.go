package bot

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const audioFileName = "translation.mp3"

// ChatPlayer plays speech by sending it to the user's private chat as an
// audio message. The chat id of a private chat is the user id.
type ChatPlayer struct {
	bot BotSender
}

func NewChatPlayer(bot BotSender) *ChatPlayer {
	return &ChatPlayer{bot: bot}
}

func (p *ChatPlayer) Play(ctx context.Context, userID int64, audio []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewAudio(userID, tgbotapi.FileBytes{Name: audioFileName, Bytes: audio})
	msg.Title = "Translation"

	_, err := p.bot.Send(msg)
	return err
}

// ChatClipboard replies with the text as inline code, which Telegram clients
// copy on tap.
type ChatClipboard struct {
	bot BotSender
}

func NewChatClipboard(bot BotSender) *ChatClipboard {
	return &ChatClipboard{bot: bot}
}

func (c *ChatClipboard) Copy(ctx context.Context, userID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := tgbotapi.NewMessage(userID, "<code>"+tgbotapi.EscapeText(tgbotapi.ModeHTML, text)+"</code>")
	msg.ParseMode = tgbotapi.ModeHTML

	_, err := c.bot.Send(msg)
	return err
}
