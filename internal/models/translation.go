package models

// TranslationFallback is shown when the backend answers without any usable translation.
const TranslationFallback = "Translation not available"

type TranslationRequest struct {
	Language string `json:"language" validate:"required"`
	Message  string `json:"message" validate:"notblank"`
}

type TranslationResponse struct {
	Translation       string `json:"translation"`
	CorrectedSentence string `json:"corrected_sentence,omitempty"`
}

type SpeechRequest struct {
	Text string `json:"text" validate:"notblank"`
}
