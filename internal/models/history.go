package models

import "time"

type HistoryEntry struct {
	ID            int64     `db:"id"`
	UserID        int64     `db:"user_id"`
	Language      string    `db:"language"`
	Message       string    `db:"message"`
	Translation   string    `db:"translation"`
	CorrectedText string    `db:"corrected_text"`
	CreatedAt     time.Time `db:"created_at"`
}
