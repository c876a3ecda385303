package service

import (
	"context"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/Minesh6684/OpenAI-Translator/internal/storage/cache"
	"go.uber.org/zap"
)

//go:generate mockgen -source=service.go -destination=mock/mock.go

type APII interface {
	Translation(ctx context.Context, req models.TranslationRequest) (models.TranslationResponse, error)
	TranslationSpeech(ctx context.Context, text string) ([]byte, error)
}

// PlayerI plays decoded speech for a user. Implementations must not block
// until playback ends.
type PlayerI interface {
	Play(ctx context.Context, userID int64, audio []byte) error
}

type ClipboardI interface {
	Copy(ctx context.Context, userID int64, text string) error
}

type RepositoryI interface {
	AddEntry(ctx context.Context, entry models.HistoryEntry) error
	Entries(ctx context.Context, userID int64, limit int) ([]models.HistoryEntry, error)
	ClearHistory(ctx context.Context, userID int64) (int64, error)
}

type Options struct {
	NotificationTTL time.Duration
	HistoryLimit    int
}

type Service struct {
	*TranslationS
	*HistoryS
}

// InitServices wires the services. repo may be nil when history is disabled.
func InitServices(api APII, player PlayerI, clipboard ClipboardI, repo RepositoryI, sessions *cache.Cache, opts Options, log *zap.Logger) *Service {
	return &Service{
		TranslationS: NewTranslationService(api, player, clipboard, repo, sessions, opts.NotificationTTL, log),
		HistoryS:     NewHistoryService(repo, opts.HistoryLimit, log),
	}
}
