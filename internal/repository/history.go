package repository

import (
	"context"
	"fmt"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
)

type HistoryR struct {
	db QueryI
}

func NewHistoryRepository(db QueryI) *HistoryR {
	return &HistoryR{db: db}
}

func (h *HistoryR) AddEntry(ctx context.Context, entry models.HistoryEntry) error {
	query := `INSERT INTO translation_history (user_id, language, message, translation, corrected_text)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := h.db.ExecContext(ctx, query, entry.UserID, entry.Language, entry.Message, entry.Translation, entry.CorrectedText)
	if err != nil {
		return fmt.Errorf("failed to add history entry for user %d: %w", entry.UserID, err)
	}

	return nil
}

func (h *HistoryR) Entries(ctx context.Context, userID int64, limit int) ([]models.HistoryEntry, error) {
	query := `
		SELECT id, user_id, language, message, translation, corrected_text, created_at
		FROM translation_history
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	entries := make([]models.HistoryEntry, 0, limit)
	if err := h.db.SelectContext(ctx, &entries, query, userID, limit); err != nil {
		return nil, fmt.Errorf("failed to load history for user %d: %w", userID, err)
	}

	return entries, nil
}

func (h *HistoryR) ClearHistory(ctx context.Context, userID int64) (int64, error) {
	res, err := h.db.ExecContext(ctx, `DELETE FROM translation_history WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to clear history for user %d: %w", userID, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}

	return n, nil
}
