package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/tidwall/gjson"
)

const (
	translationPath = "/get-translation"
	speechPath      = "/get-translation-speech"

	// RequestIDHeader carries the submission id to the backend.
	RequestIDHeader = "X-Request-ID"

	maxErrorBody = 512
)

var ErrUnexpectedStatus = errors.New("unexpected status")

type requestIDKey struct{}

// WithRequestID attaches id to ctx; outgoing requests forward it in RequestIDHeader.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

type TranslatorAPI struct {
	baseURL string
	http    *http.Client
}

// NewTranslatorAPI builds a client for the backend at baseURL. A zero timeout means none.
func NewTranslatorAPI(baseURL string, timeout time.Duration) *TranslatorAPI {
	return &TranslatorAPI{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

func (t *TranslatorAPI) Translation(ctx context.Context, req models.TranslationRequest) (models.TranslationResponse, error) {
	query := url.Values{}
	query.Set("language", req.Language)
	query.Set("message", req.Message)

	body, err := t.get(ctx, translationPath, query)
	if err != nil {
		return models.TranslationResponse{}, err
	}

	return ParseTranslation(body), nil
}

func (t *TranslatorAPI) TranslationSpeech(ctx context.Context, text string) ([]byte, error) {
	query := url.Values{}
	query.Set("translation", text)

	return t.get(ctx, speechPath, query)
}

func (t *TranslatorAPI) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	u := t.baseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if id := RequestID(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	resp, err := t.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return nil, fmt.Errorf("%w %d from %s: %s", ErrUnexpectedStatus, resp.StatusCode, path, strings.TrimSpace(string(body)))
	}

	return body, nil
}

// ParseTranslation accepts both `{"translation": ..., "corrected_sentence": ...}`
// and a bare string body. Anything without a translation yields TranslationFallback.
func ParseTranslation(body []byte) models.TranslationResponse {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return models.TranslationResponse{Translation: models.TranslationFallback}
	}

	if !gjson.Valid(trimmed) {
		return models.TranslationResponse{Translation: trimmed}
	}

	result := gjson.Parse(trimmed)
	var resp models.TranslationResponse

	switch {
	case result.IsObject():
		if tr := result.Get("translation"); tr.Type == gjson.String || tr.Type == gjson.Number {
			resp.Translation = tr.String()
		}
		if cs := result.Get("corrected_sentence"); cs.Type == gjson.String {
			resp.CorrectedSentence = cs.String()
		}
	case result.Type == gjson.String || result.Type == gjson.Number:
		resp.Translation = result.String()
	}

	if resp.Translation == "" {
		resp.Translation = models.TranslationFallback
	}

	return resp
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
