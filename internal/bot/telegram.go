package bot

import (
	"context"
	"sync"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=telegram.go -destination=mock/service_mock.go -package=mock_bot

type ServiceI interface {
	State(userID int64) models.Session
	Reset(userID int64) models.Session
	SelectLanguage(userID int64, language string) (string, error)
	Submit(ctx context.Context, userID int64, message, language string) (models.TranslationResponse, error)
	Speak(ctx context.Context, userID int64, text string) error
	CopyToClipboard(ctx context.Context, userID int64, text string) error
	HistoryEnabled() bool
	History(ctx context.Context, userID int64) (string, error)
	ClearHistory(ctx context.Context, userID int64) (int64, error)
}

type BotSender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type TelegramAPI struct {
	bot            BotSender
	service        ServiceI
	speechFeedback bool
	log            *zap.Logger
}

// NewBotAPI connects to Telegram. Debug output is enabled in development.
func NewBotAPI(botToken, env string) (*tgbotapi.BotAPI, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, err
	}

	bot.Debug = env == "development"

	return bot, nil
}

func NewTelegramAPI(bot BotSender, service ServiceI, speechFeedback bool, log *zap.Logger) *TelegramAPI {
	return &TelegramAPI{
		bot:            bot,
		service:        service,
		speechFeedback: speechFeedback,
		log:            log,
	}
}

// Start polls for updates until ctx is done. Every update is handled on its
// own goroutine; Start waits for them before returning.
func (t *TelegramAPI) Start(ctx context.Context, api *tgbotapi.BotAPI) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := api.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		api.StopReceivingUpdates()
	}()

	var wg sync.WaitGroup
	defer wg.Wait()

	for update := range updates {
		wg.Add(1)
		go func(update tgbotapi.Update) {
			defer wg.Done()
			t.handleUpdate(ctx, update)
		}(update)
	}
}

func (t *TelegramAPI) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message != nil {
		if update.Message.IsCommand() {
			t.handleCommand(ctx, update.Message)
		} else {
			t.handleMessage(ctx, update.Message)
		}
		return
	}

	if update.CallbackQuery != nil {
		t.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (t *TelegramAPI) sendMessage(msg tgbotapi.Chattable) {
	sentMsg, err := t.bot.Send(msg)
	if err != nil {
		t.log.Error("failed to send message", zap.Error(err))
		return
	}
	if sentMsg.Chat != nil {
		t.log.Debug("sent message", zap.Int64("chat_id", sentMsg.Chat.ID))
	}
}

func (t *TelegramAPI) request(c tgbotapi.Chattable) {
	if _, err := t.bot.Request(c); err != nil {
		t.log.Warn("telegram request failed", zap.Error(err))
	}
}
