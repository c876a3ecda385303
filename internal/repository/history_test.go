package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	mock_repository "github.com/Minesh6684/OpenAI-Translator/internal/repository/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newHistoryMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_repository.MockQueryI)) *HistoryR {
	db := mock_repository.NewMockQueryI(ctrl)
	if setupMock != nil {
		setupMock(db)
	}

	return NewHistoryRepository(db)
}

func TestHistoryR_AddEntry(t *testing.T) {
	t.Parallel()

	entry := models.HistoryEntry{
		UserID:        1,
		Language:      "French",
		Message:       "hello",
		Translation:   "Bonjour",
		CorrectedText: "Hello!",
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), int64(1), "French", "hello", "Bonjour", "Hello!").
					Return(driver.RowsAffected(1), nil)
			},
		},
		{
			name: "error exec",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					ExecContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("error exec"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newHistoryMock(t, ctrl, tt.f)

			err := repo.AddEntry(context.Background(), entry)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestHistoryR_Entries(t *testing.T) {
	t.Parallel()

	now := time.Now()
	stored := []models.HistoryEntry{
		{ID: 2, UserID: 1, Language: "Spanish", Message: "hi", Translation: "Hola", CreatedAt: now},
		{ID: 1, UserID: 1, Language: "French", Message: "hi", Translation: "Salut", CreatedAt: now.Add(-time.Minute)},
	}

	tests := []struct {
		name    string
		f       func(*mock_repository.MockQueryI)
		want    []models.HistoryEntry
		wantErr bool
	}{
		{
			name: "success",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), 10).
					DoAndReturn(func(_ context.Context, dest interface{}, _ string, _ ...interface{}) error {
						*dest.(*[]models.HistoryEntry) = stored
						return nil
					})
			},
			want: stored,
		},
		{
			name: "success: empty",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), int64(1), 10).
					Return(nil)
			},
			want: []models.HistoryEntry{},
		},
		{
			name: "error select",
			f: func(mqi *mock_repository.MockQueryI) {
				mqi.EXPECT().
					SelectContext(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("error select"))
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := newHistoryMock(t, ctrl, tt.f)

			got, err := repo.Entries(context.Background(), 1, 10)
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHistoryR_ClearHistory(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := newHistoryMock(t, ctrl, func(mqi *mock_repository.MockQueryI) {
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(1)).Return(driver.RowsAffected(3), nil)
		mqi.EXPECT().ExecContext(gomock.Any(), gomock.Any(), int64(2)).Return(nil, errors.New("error exec"))
	})

	n, err := repo.ClearHistory(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	_, err = repo.ClearHistory(context.Background(), 2)
	require.Error(t, err)
}
