package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/client"
	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/Minesh6684/OpenAI-Translator/internal/storage/cache"
	"github.com/Minesh6684/OpenAI-Translator/pkg/validator"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TranslationS drives the per-user session: Idle -> Loading -> {Success, Failed}.
// A session has at most one translation in flight.
type TranslationS struct {
	api       APII
	player    PlayerI
	clipboard ClipboardI
	history   RepositoryI
	sessions  *cache.Cache
	notifyTTL time.Duration
	log       *zap.Logger
}

func NewTranslationService(api APII, player PlayerI, clipboard ClipboardI, history RepositoryI, sessions *cache.Cache, notifyTTL time.Duration, log *zap.Logger) *TranslationS {
	return &TranslationS{
		api:       api,
		player:    player,
		clipboard: clipboard,
		history:   history,
		sessions:  sessions,
		notifyTTL: notifyTTL,
		log:       log,
	}
}

func (t *TranslationS) State(userID int64) models.Session {
	return t.sessions.Session(userID)
}

func (t *TranslationS) SelectLanguage(userID int64, language string) (string, error) {
	lang, ok := models.LookupLanguage(language)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownLanguage, language)
	}

	t.sessions.Update(userID, func(s *models.Session) {
		s.Language = lang
		s.Error = ""
	})

	return lang, nil
}

func (t *TranslationS) SetMessage(userID int64, message string) {
	t.sessions.Update(userID, func(s *models.Session) {
		s.Message = message
	})
}

func (t *TranslationS) ClearMessage(userID int64) {
	t.SetMessage(userID, "")
}

func (t *TranslationS) Reset(userID int64) models.Session {
	return t.sessions.Reset(userID)
}

// Submit translates message into language (the session language when empty).
// A second submit while the first is loading is rejected with ErrBusy.
func (t *TranslationS) Submit(ctx context.Context, userID int64, message, language string) (models.TranslationResponse, error) {
	if language == "" {
		language = t.sessions.Session(userID).Language
	}

	req := models.TranslationRequest{Language: language, Message: message}
	if err := validator.ValidateStruct(req); err != nil {
		t.sessions.Update(userID, func(s *models.Session) {
			s.Message = message
			s.Error = MsgEmptyMessage
		})
		return models.TranslationResponse{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	var (
		busy bool
		seq  uint64
	)
	t.sessions.Update(userID, func(s *models.Session) {
		if s.Loading {
			busy = true
			return
		}
		s.Message = message
		s.Language = language
		s.Loading = true
		s.Phase = models.PhaseLoading
		s.Error = ""
		s.Seq++
		seq = s.Seq
	})
	if busy {
		t.log.Debug("submit ignored, translation in progress", zap.Int64("user_id", userID))
		return models.TranslationResponse{}, ErrBusy
	}

	ctx = client.WithRequestID(ctx, uuid.NewString())
	resp, err := t.RequestTranslation(ctx, req)

	stale := false
	t.sessions.Update(userID, func(s *models.Session) {
		if s.Seq != seq {
			stale = true
			return
		}
		s.Loading = false
		if err != nil {
			s.Error = MsgTranslationFailed
			s.Phase = models.PhaseFailed
			return
		}
		s.Translation = resp.Translation
		s.CorrectedText = resp.CorrectedSentence
		s.Phase = models.PhaseSuccess
	})

	if stale {
		t.log.Info("discarding translation for a reset session",
			zap.Int64("user_id", userID), zap.String("request_id", client.RequestID(ctx)))
		return models.TranslationResponse{}, ErrStale
	}
	if err != nil {
		return models.TranslationResponse{}, err
	}

	t.log.Debug("translated",
		zap.Int64("user_id", userID),
		zap.String("request_id", client.RequestID(ctx)),
		zap.String("language", language),
		zap.Bool("corrected", resp.CorrectedSentence != ""),
	)

	t.saveHistory(ctx, userID, req, resp)

	return resp, nil
}

func (t *TranslationS) RequestTranslation(ctx context.Context, req models.TranslationRequest) (models.TranslationResponse, error) {
	resp, err := t.api.Translation(ctx, req)
	if err != nil {
		t.log.Error("failed to translate",
			zap.String("request_id", client.RequestID(ctx)),
			zap.String("language", req.Language),
			zap.Error(err),
		)
		return models.TranslationResponse{}, fmt.Errorf("%w: %w", ErrTranslation, err)
	}

	return resp, nil
}

func (t *TranslationS) saveHistory(ctx context.Context, userID int64, req models.TranslationRequest, resp models.TranslationResponse) {
	if t.history == nil {
		return
	}

	entry := models.HistoryEntry{
		UserID:        userID,
		Language:      req.Language,
		Message:       req.Message,
		Translation:   resp.Translation,
		CorrectedText: resp.CorrectedSentence,
	}
	if err := t.history.AddEntry(ctx, entry); err != nil {
		t.log.Warn("failed to save history entry", zap.Int64("user_id", userID), zap.Error(err))
	}
}

func (t *TranslationS) RequestSpeech(ctx context.Context, text string) ([]byte, error) {
	if err := validator.ValidateStruct(models.SpeechRequest{Text: text}); err != nil {
		t.log.Warn("nothing to speak", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSpeech, err)
	}

	audio, err := t.api.TranslationSpeech(ctx, text)
	if err != nil {
		t.log.Error("failed to fetch speech", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrSpeech, err)
	}
	if len(audio) == 0 {
		t.log.Error("empty speech payload")
		return nil, fmt.Errorf("%w: empty audio", ErrSpeech)
	}

	return audio, nil
}

// PlayAudio hands audio to the player and returns once playback has started.
// Calls are not serialized; overlapping plays overlap.
func (t *TranslationS) PlayAudio(ctx context.Context, userID int64, audio []byte) error {
	if err := t.player.Play(ctx, userID, audio); err != nil {
		t.log.Error("failed to play audio", zap.Int64("user_id", userID), zap.Int("bytes", len(audio)), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrSpeech, err)
	}

	return nil
}

func (t *TranslationS) Speak(ctx context.Context, userID int64, text string) error {
	audio, err := t.RequestSpeech(ctx, text)
	if err != nil {
		return err
	}

	return t.PlayAudio(ctx, userID, audio)
}

// CopyToClipboard writes text and shows the notification for the configured TTL.
// Blank text is rejected so the clipboard keeps its contents.
func (t *TranslationS) CopyToClipboard(ctx context.Context, userID int64, text string) error {
	if validator.IsBlank(text) {
		t.log.Debug("nothing to copy", zap.Int64("user_id", userID))
		return fmt.Errorf("%w: %w", ErrClipboard, ErrNothingToCopy)
	}

	if err := t.clipboard.Copy(ctx, userID, text); err != nil {
		t.log.Error("failed to copy", zap.Int64("user_id", userID), zap.Error(err))
		return fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	t.showNotification(userID)

	return nil
}

// showNotification hides the notification after notifyTTL unless a newer
// copy has restarted the window.
func (t *TranslationS) showNotification(userID int64) {
	var gen uint64
	t.sessions.Update(userID, func(s *models.Session) {
		s.NotifySeq++
		gen = s.NotifySeq
		s.NotificationVisible = true
	})

	time.AfterFunc(t.notifyTTL, func() {
		t.sessions.Update(userID, func(s *models.Session) {
			if s.NotifySeq == gen {
				s.NotificationVisible = false
			}
		})
	})
}
