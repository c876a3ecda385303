package service

import "errors"

var (
	ErrValidation      = errors.New("validation error")
	ErrTranslation     = errors.New("translation error")
	ErrSpeech          = errors.New("speech error")
	ErrClipboard       = errors.New("clipboard error")
	ErrNothingToCopy   = errors.New("nothing to copy")
	ErrBusy            = errors.New("translation already in progress")
	ErrUnknownLanguage = errors.New("unknown language")
	ErrHistoryDisabled = errors.New("history is disabled")
	ErrEmptyHistory    = errors.New("empty history")
	ErrStale           = errors.New("session was reset while translating")
)

// Messages shown to the user. Error details never reach the user, only the log.
const (
	MsgEmptyMessage      = "Please enter the message."
	MsgTranslationFailed = "Error occurred while translating. Please try again later."
	MsgCopied            = "Copied to clipboard!"
	MsgSpeechFailed      = "Could not play the audio. Please try again later."
	MsgNothingToCopy     = "Nothing to copy yet."
)
