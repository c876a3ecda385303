package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Minesh6684/OpenAI-Translator/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTranslation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want models.TranslationResponse
	}{
		{
			name: "object with correction",
			body: `{"translation": "Bonjour", "corrected_sentence": "Bonjour!"}`,
			want: models.TranslationResponse{Translation: "Bonjour", CorrectedSentence: "Bonjour!"},
		},
		{
			name: "object without correction",
			body: `{"translation": "Hallo"}`,
			want: models.TranslationResponse{Translation: "Hallo"},
		},
		{
			name: "bare json string",
			body: `"Hola"`,
			want: models.TranslationResponse{Translation: "Hola"},
		},
		{
			name: "plain text",
			body: "Hola\n",
			want: models.TranslationResponse{Translation: "Hola"},
		},
		{
			name: "numeric",
			body: `42`,
			want: models.TranslationResponse{Translation: "42"},
		},
		{
			name: "empty body",
			body: "",
			want: models.TranslationResponse{Translation: models.TranslationFallback},
		},
		{
			name: "object without translation",
			body: `{"corrected_sentence": "Hello!"}`,
			want: models.TranslationResponse{Translation: models.TranslationFallback, CorrectedSentence: "Hello!"},
		},
		{
			name: "empty translation",
			body: `{"translation": ""}`,
			want: models.TranslationResponse{Translation: models.TranslationFallback},
		},
		{
			name: "null",
			body: `null`,
			want: models.TranslationResponse{Translation: models.TranslationFallback},
		},
		{
			name: "array",
			body: `["a", "b"]`,
			want: models.TranslationResponse{Translation: models.TranslationFallback},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, ParseTranslation([]byte(tt.body)))
		})
	}
}

func TestTranslatorAPI_Translation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		handler    http.HandlerFunc
		req        models.TranslationRequest
		assertFunc func(t *testing.T, resp models.TranslationResponse)
		wantErr    bool
	}{
		{
			name: "success: query is encoded",
			req:  models.TranslationRequest{Language: "French", Message: "good morning & bye"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				assert.Equal(t, translationPath, r.URL.Path)
				assert.Equal(t, "French", r.URL.Query().Get("language"))
				assert.Equal(t, "good morning & bye", r.URL.Query().Get("message"))
				assert.Equal(t, "req-1", r.Header.Get(RequestIDHeader))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"translation":"Bonjour","corrected_sentence":"Good morning!"}`))
			},
			assertFunc: func(t *testing.T, resp models.TranslationResponse) {
				assert.Equal(t, "Bonjour", resp.Translation)
				assert.Equal(t, "Good morning!", resp.CorrectedSentence)
			},
		},
		{
			name: "success: bare string",
			req:  models.TranslationRequest{Language: "Spanish", Message: "hello"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`"Hola"`))
			},
			assertFunc: func(t *testing.T, resp models.TranslationResponse) {
				assert.Equal(t, "Hola", resp.Translation)
				assert.Empty(t, resp.CorrectedSentence)
			},
		},
		{
			name: "error: server error",
			req:  models.TranslationRequest{Language: "Spanish", Message: "hello"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
			wantErr: true,
		},
		{
			name: "error: not found",
			req:  models.TranslationRequest{Language: "Spanish", Message: "hello"},
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.NotFound(w, r)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			api := NewTranslatorAPI(srv.URL+"/", 0)
			ctx := WithRequestID(context.Background(), "req-1")

			resp, err := api.Translation(ctx, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnexpectedStatus))
				return
			}

			require.NoError(t, err)
			tt.assertFunc(t, resp)
		})
	}
}

func TestTranslatorAPI_Translation_NetworkError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	api := NewTranslatorAPI(url, time.Second)
	_, err := api.Translation(context.Background(), models.TranslationRequest{Language: "French", Message: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "executing request")
}

func TestTranslatorAPI_TranslationSpeech(t *testing.T) {
	t.Parallel()

	audio := []byte{0xFF, 0xFB, 0x90, 0x64, 0x00}

	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    []byte
		wantErr bool
	}{
		{
			name: "success: returns raw bytes",
			handler: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, speechPath, r.URL.Path)
				assert.Equal(t, "Bonjour à tous", r.URL.Query().Get("translation"))
				assert.Empty(t, r.Header.Get(RequestIDHeader))
				w.Header().Set("Content-Type", "audio/mpeg")
				_, _ = w.Write(audio)
			},
			want: audio,
		},
		{
			name: "error: bad gateway",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			api := NewTranslatorAPI(srv.URL, 0)

			got, err := api.TranslationSpeech(context.Background(), "Bonjour à tous")
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
