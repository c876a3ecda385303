package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/Minesh6684/OpenAI-Translator/internal/service"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

const (
	ButtonLanguage = "🌐 Language"
	ButtonHistory  = "📜 History"
	ButtonHelp     = "ℹ️ Help"

	ButtonSpeak          = "🔊 Speak"
	ButtonCopy           = "📋 Copy"
	ButtonSpeakCorrected = "🔊 Speak correction"
	ButtonCopyCorrected  = "📋 Copy correction"
)

const (
	cbSpeakTranslation = "speak_t"
	cbCopyTranslation  = "copy_t"
	cbSpeakCorrected   = "speak_c"
	cbCopyCorrected    = "copy_c"
	cbLanguagePrefix   = "lang_"
)

const (
	MsgBusy            = "⏳ Still translating your previous message."
	MsgUnknownCommand  = "Unknown command. Use /help"
	MsgUnknownLanguage = "Unknown language. Use /language to pick one."
	MsgHistoryDisabled = "History is disabled."
	MsgHistoryEmpty    = "📭 No translations yet."
	MsgHistoryFailed   = "❌ Could not load history. Please try again later."

	languageColumns = 3
	historyTimeout  = 10 * time.Second
)

func (t *TelegramAPI) handleCommand(ctx context.Context, message *tgbotapi.Message) {
	switch message.Command() {
	case "start":
		t.handleStartCommand(message)
	case "help":
		t.handleHelpCommand(message)
	case "language":
		t.handleLanguageCommand(message)
	case "history":
		t.handleHistoryCommand(ctx, message)
	case "clearhistory":
		t.handleClearHistoryCommand(ctx, message)
	default:
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, MsgUnknownCommand))
	}
}

func (t *TelegramAPI) handleStartCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	session := t.service.Reset(message.From.ID)

	welcomeText := "🤖 Hi! Send me a sentence and I will translate it.\n\n" +
		"✨ What I can do:\n" +
		"• 🌐 Translate into the language you pick\n" +
		"• ✏️ Fix mistakes in what you wrote\n" +
		"• 🔊 Read the translation aloud\n" +
		"• 📋 Give you text that is easy to copy\n\n" +
		fmt.Sprintf("Current language: *%s*", session.Language)

	msg := tgbotapi.NewMessage(message.Chat.ID, welcomeText)
	msg.ParseMode = tgbotapi.ModeMarkdown
	msg.ReplyMarkup = t.generateMenuKeyboard()

	t.sendMessage(msg)
}

func (t *TelegramAPI) generateMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	keyboard := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonLanguage),
			tgbotapi.NewKeyboardButton(ButtonHistory),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(ButtonHelp),
		),
	)

	keyboard.ResizeKeyboard = true
	keyboard.OneTimeKeyboard = false

	return keyboard
}

func (t *TelegramAPI) handleHelpCommand(message *tgbotapi.Message) {
	helpText := `
📚 Commands:
/start — start over
/language [name] — pick the target language
/history — your latest translations
/clearhistory — forget your translations
/help — this message

✍️ Any other text is translated into the current language.
`

	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, helpText))
}

func (t *TelegramAPI) handleLanguageCommand(message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	name := message.CommandArguments()
	if strings.TrimSpace(name) == "" {
		t.showLanguagePicker(message.Chat.ID, message.From.ID)
		return
	}

	lang, err := t.service.SelectLanguage(message.From.ID, name)
	if err != nil {
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, MsgUnknownLanguage))
		return
	}

	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, languageText(lang)))
}

func (t *TelegramAPI) showLanguagePicker(chatID, userID int64) {
	current := t.service.State(userID).Language

	var rows [][]tgbotapi.InlineKeyboardButton
	for i := 0; i < len(models.Languages); i += languageColumns {
		end := min(i+languageColumns, len(models.Languages))

		var row []tgbotapi.InlineKeyboardButton
		for _, lang := range models.Languages[i:end] {
			label := lang
			if lang == current {
				label = "✅ " + lang
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, cbLanguagePrefix+lang))
		}
		rows = append(rows, row)
	}

	keyboard := tgbotapi.NewInlineKeyboardMarkup(rows...)

	msg := tgbotapi.NewMessage(chatID, "🌐 Choose the language to translate into:")
	msg.ReplyMarkup = &keyboard

	t.sendMessage(msg)
}

func (t *TelegramAPI) handleHistoryCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	if !t.service.HistoryEnabled() {
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, MsgHistoryDisabled))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	text, err := t.service.History(ctx, message.From.ID)
	switch {
	case errors.Is(err, service.ErrEmptyHistory):
		text = MsgHistoryEmpty
	case err != nil:
		text = MsgHistoryFailed
	}

	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, text))
}

func (t *TelegramAPI) handleClearHistoryCommand(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	if !t.service.HistoryEnabled() {
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, MsgHistoryDisabled))
		return
	}

	ctx, cancel := context.WithTimeout(ctx, historyTimeout)
	defer cancel()

	n, err := t.service.ClearHistory(ctx, message.From.ID)
	if err != nil {
		t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, MsgHistoryFailed))
		return
	}

	t.sendMessage(tgbotapi.NewMessage(message.Chat.ID, fmt.Sprintf("🗑 Removed %d translations.", n)))
}

func (t *TelegramAPI) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		t.log.Warn("message without sender", zap.Int64("chat_id", message.Chat.ID))
		return
	}

	switch message.Text {
	case ButtonLanguage:
		t.showLanguagePicker(message.Chat.ID, message.From.ID)
	case ButtonHistory:
		t.handleHistoryCommand(ctx, message)
	case ButtonHelp:
		t.handleHelpCommand(message)
	default:
		t.translate(ctx, message)
	}
}

func (t *TelegramAPI) translate(ctx context.Context, message *tgbotapi.Message) {
	chatID := message.Chat.ID
	userID := message.From.ID

	t.request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	resp, err := t.service.Submit(ctx, userID, message.Text, "")
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		t.sendMessage(tgbotapi.NewMessage(chatID, service.MsgEmptyMessage))
		return
	case errors.Is(err, service.ErrBusy):
		t.sendMessage(tgbotapi.NewMessage(chatID, MsgBusy))
		return
	case errors.Is(err, service.ErrStale):
		return
	default:
		t.sendMessage(tgbotapi.NewMessage(chatID, "❌ "+service.MsgTranslationFailed))
		return
	}

	language := t.service.State(userID).Language

	msg := tgbotapi.NewMessage(chatID, resultText(language, resp))
	msg.ParseMode = tgbotapi.ModeHTML
	msg.ReplyToMessageID = message.MessageID
	keyboard := resultKeyboard(resp.CorrectedSentence != "")
	msg.ReplyMarkup = &keyboard

	t.sendMessage(msg)
}

func resultText(language string, resp models.TranslationResponse) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("🌐 <b>%s</b>\n%s", tgbotapi.EscapeText(tgbotapi.ModeHTML, language), tgbotapi.EscapeText(tgbotapi.ModeHTML, resp.Translation)))
	if resp.CorrectedSentence != "" {
		sb.WriteString("\n\n✏️ <b>Corrected</b>\n")
		sb.WriteString(tgbotapi.EscapeText(tgbotapi.ModeHTML, resp.CorrectedSentence))
	}

	return sb.String()
}

func resultKeyboard(corrected bool) tgbotapi.InlineKeyboardMarkup {
	rows := [][]tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonSpeak, cbSpeakTranslation),
			tgbotapi.NewInlineKeyboardButtonData(ButtonCopy, cbCopyTranslation),
		),
	}
	if corrected {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(ButtonSpeakCorrected, cbSpeakCorrected),
			tgbotapi.NewInlineKeyboardButtonData(ButtonCopyCorrected, cbCopyCorrected),
		))
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func languageText(lang string) string {
	return "🌐 Language: " + lang
}

// handleCallbackQuery answers every query. Speak and copy act on the latest
// result of the session, not on the message the button belongs to.
func (t *TelegramAPI) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	if query.From == nil {
		t.log.Warn("callback without sender", zap.String("data", query.Data))
		return
	}
	userID := query.From.ID
	data := query.Data

	switch {
	case data == cbSpeakTranslation || data == cbSpeakCorrected:
		t.request(tgbotapi.NewCallback(query.ID, ""))
		t.speak(ctx, query, callbackText(t.service.State(userID), data == cbSpeakCorrected))

	case data == cbCopyTranslation || data == cbCopyCorrected:
		text := callbackText(t.service.State(userID), data == cbCopyCorrected)
		answer := ""
		switch err := t.service.CopyToClipboard(ctx, userID, text); {
		case err == nil:
			answer = service.MsgCopied
		case errors.Is(err, service.ErrNothingToCopy):
			answer = service.MsgNothingToCopy
		}
		t.request(tgbotapi.NewCallback(query.ID, answer))

	case strings.HasPrefix(data, cbLanguagePrefix):
		t.handleLanguageCallback(query)

	default:
		t.request(tgbotapi.NewCallback(query.ID, ""))
		t.log.Warn("unknown callback data", zap.String("data", data), zap.Int64("user_id", userID))
	}
}

func callbackText(s models.Session, corrected bool) string {
	if corrected {
		return s.CorrectedText
	}
	return s.Translation
}

func (t *TelegramAPI) speak(ctx context.Context, query *tgbotapi.CallbackQuery, text string) {
	err := t.service.Speak(ctx, query.From.ID, text)
	if err == nil || !t.speechFeedback || query.Message == nil {
		return
	}

	t.sendMessage(tgbotapi.NewMessage(query.Message.Chat.ID, service.MsgSpeechFailed))
}

func (t *TelegramAPI) handleLanguageCallback(query *tgbotapi.CallbackQuery) {
	name := strings.TrimPrefix(query.Data, cbLanguagePrefix)

	lang, err := t.service.SelectLanguage(query.From.ID, name)
	if err != nil {
		t.request(tgbotapi.NewCallback(query.ID, MsgUnknownLanguage))
		return
	}

	t.request(tgbotapi.NewCallback(query.ID, languageText(lang)))

	if query.Message != nil {
		t.sendMessage(tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID, languageText(lang)))
	}
}
