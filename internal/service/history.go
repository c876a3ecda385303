package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"go.uber.org/zap"
)

type HistoryS struct {
	repo  RepositoryI
	limit int
	log   *zap.Logger
}

func NewHistoryService(repo RepositoryI, limit int, log *zap.Logger) *HistoryS {
	return &HistoryS{
		repo:  repo,
		limit: limit,
		log:   log,
	}
}

func (h *HistoryS) HistoryEnabled() bool {
	return h.repo != nil
}

func (h *HistoryS) History(ctx context.Context, userID int64) (string, error) {
	if h.repo == nil {
		return "", ErrHistoryDisabled
	}

	entries, err := h.repo.Entries(ctx, userID, h.limit)
	if err != nil {
		h.log.Warn("failed to load history", zap.Int64("user_id", userID), zap.Error(err))
		return "", err
	}
	if len(entries) == 0 {
		return "", ErrEmptyHistory
	}

	return formatHistory(entries), nil
}

func (h *HistoryS) ClearHistory(ctx context.Context, userID int64) (int64, error) {
	if h.repo == nil {
		return 0, ErrHistoryDisabled
	}

	n, err := h.repo.ClearHistory(ctx, userID)
	if err != nil {
		h.log.Warn("failed to clear history", zap.Int64("user_id", userID), zap.Error(err))
		return 0, err
	}

	return n, nil
}

func formatHistory(entries []models.HistoryEntry) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📜 Last %d translations:\n\n", len(entries)))

	for i, e := range entries {
		sb.WriteString(fmt.Sprintf("%d. [%s] %s → %s\n", i+1, e.Language, e.Message, e.Translation))
		if e.CorrectedText != "" {
			sb.WriteString("   ✏️ ")
			sb.WriteString(e.CorrectedText)
			sb.WriteString("\n")
		}
		sb.WriteString("   🕒 ")
		sb.WriteString(e.CreatedAt.Format(time.DateTime))

		if i < len(entries)-1 {
			sb.WriteString("\n")
		}
	}

	return sb.String()
}
