// Package cli is the terminal front end. It serves a single local user.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/Minesh6684/OpenAI-Translator/internal/service"
	"go.uber.org/zap"
)

//go:generate mockgen -source=terminal.go -destination=mock/mock.go

// LocalUserID keys the session of the terminal user.
const LocalUserID int64 = 0

type ServiceI interface {
	State(userID int64) models.Session
	Reset(userID int64) models.Session
	SelectLanguage(userID int64, language string) (string, error)
	ClearMessage(userID int64)
	Submit(ctx context.Context, userID int64, message, language string) (models.TranslationResponse, error)
	Speak(ctx context.Context, userID int64, text string) error
	CopyToClipboard(ctx context.Context, userID int64, text string) error
	HistoryEnabled() bool
	History(ctx context.Context, userID int64) (string, error)
	ClearHistory(ctx context.Context, userID int64) (int64, error)
}

const helpText = `Type a sentence to translate it.

/lang [name]          show or change the target language
/langs                list languages
/speak [corrected]    read the translation (or the correction) aloud
/copy [corrected]     copy the translation (or the correction)
/clear                clear the message
/reset                start over
/history              latest translations
/clearhistory         forget your translations
/help                 this message
/quit                 exit`

type Terminal struct {
	service        ServiceI
	in             io.Reader
	out            io.Writer
	speechFeedback bool
	log            *zap.Logger
}

func NewTerminal(service ServiceI, in io.Reader, out io.Writer, speechFeedback bool, log *zap.Logger) *Terminal {
	return &Terminal{
		service:        service,
		in:             in,
		out:            out,
		speechFeedback: speechFeedback,
		log:            log,
	}
}

// Run reads lines until EOF, /quit or ctx is done.
func (t *Terminal) Run(ctx context.Context) error {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		scanner := bufio.NewScanner(t.in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
		close(lines)
	}()

	t.println("🤖 Translator. Type /help for commands.")

	for {
		t.prompt()

		select {
		case <-ctx.Done():
			t.println("")
			return nil
		case line, ok := <-lines:
			if !ok {
				return <-errc
			}
			if quit := t.handleLine(ctx, line); quit {
				return nil
			}
		}
	}
}

func (t *Terminal) prompt() {
	s := t.service.State(LocalUserID)
	notice := ""
	if s.NotificationVisible {
		notice = " ✔ " + service.MsgCopied
	}
	fmt.Fprintf(t.out, "[%s]%s > ", s.Language, notice)
}

func (t *Terminal) handleLine(ctx context.Context, line string) bool {
	if !strings.HasPrefix(line, "/") {
		t.translate(ctx, line)
		return false
	}

	command, arg, _ := strings.Cut(strings.TrimPrefix(line, "/"), " ")
	arg = strings.TrimSpace(arg)

	switch command {
	case "quit", "exit":
		return true
	case "help":
		t.println(helpText)
	case "lang":
		t.language(arg)
	case "langs":
		t.println(strings.Join(models.Languages, ", "))
	case "speak":
		t.speak(ctx, arg == "corrected")
	case "copy":
		t.copy(ctx, arg == "corrected")
	case "clear":
		t.service.ClearMessage(LocalUserID)
		t.println("Message cleared.")
	case "reset":
		s := t.service.Reset(LocalUserID)
		t.println("Started over. Language: " + s.Language)
	case "history":
		t.history(ctx)
	case "clearhistory":
		t.clearHistory(ctx)
	default:
		t.println("Unknown command. Type /help")
	}

	return false
}

func (t *Terminal) translate(ctx context.Context, message string) {
	t.println("⏳ Translating...")

	resp, err := t.service.Submit(ctx, LocalUserID, message, "")
	switch {
	case err == nil:
	case errors.Is(err, service.ErrValidation):
		t.println(service.MsgEmptyMessage)
		return
	case errors.Is(err, service.ErrBusy), errors.Is(err, service.ErrStale):
		return
	default:
		t.println(service.MsgTranslationFailed)
		return
	}

	t.println("Translation: " + resp.Translation)
	if resp.CorrectedSentence != "" {
		t.println("Corrected:   " + resp.CorrectedSentence)
	}
}

func (t *Terminal) language(name string) {
	if name == "" {
		t.println("Language: " + t.service.State(LocalUserID).Language)
		return
	}

	lang, err := t.service.SelectLanguage(LocalUserID, name)
	if err != nil {
		t.println("Unknown language. Type /langs for the list.")
		return
	}

	t.println("Language: " + lang)
}

func (t *Terminal) speak(ctx context.Context, corrected bool) {
	err := t.service.Speak(ctx, LocalUserID, sessionText(t.service.State(LocalUserID), corrected))
	if err != nil && t.speechFeedback {
		t.println(service.MsgSpeechFailed)
	}
}

func (t *Terminal) copy(ctx context.Context, corrected bool) {
	err := t.service.CopyToClipboard(ctx, LocalUserID, sessionText(t.service.State(LocalUserID), corrected))
	if errors.Is(err, service.ErrNothingToCopy) {
		t.println(service.MsgNothingToCopy)
		return
	}
	if err != nil {
		return
	}

	t.println(service.MsgCopied)
}

func (t *Terminal) history(ctx context.Context) {
	if !t.service.HistoryEnabled() {
		t.println("History is disabled.")
		return
	}

	text, err := t.service.History(ctx, LocalUserID)
	switch {
	case errors.Is(err, service.ErrEmptyHistory):
		t.println("No translations yet.")
	case err != nil:
		t.println("Could not load history.")
	default:
		t.println(text)
	}
}

func (t *Terminal) clearHistory(ctx context.Context) {
	if !t.service.HistoryEnabled() {
		t.println("History is disabled.")
		return
	}

	n, err := t.service.ClearHistory(ctx, LocalUserID)
	if err != nil {
		t.println("Could not clear history.")
		return
	}

	t.println(fmt.Sprintf("Removed %d translations.", n))
}

func sessionText(s models.Session, corrected bool) string {
	if corrected {
		return s.CorrectedText
	}
	return s.Translation
}

func (t *Terminal) println(text string) {
	if _, err := fmt.Fprintln(t.out, text); err != nil {
		t.log.Warn("failed to write to terminal", zap.Error(err))
	}
}
