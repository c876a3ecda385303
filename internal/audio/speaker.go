// Package audio plays speech on the local sound card.
//
// The output device is opened once, on first playback, and shared by every
// later playback until the process exits. Playback is fire-and-forget:
// overlapping calls mix on the device instead of queueing.
package audio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/hajimehoshi/go-mp3"
	"go.uber.org/zap"
)

const pollInterval = 50 * time.Millisecond

var ErrSampleRate = errors.New("sample rate differs from the open output")

// Stream is decoded signed 16-bit little-endian stereo PCM.
type Stream interface {
	io.Reader
	SampleRate() int
}

type Voice interface {
	Play()
	IsPlaying() bool
}

type Output interface {
	NewVoice(r io.Reader) Voice
}

type (
	DecodeFunc    func(data []byte) (Stream, error)
	NewOutputFunc func(sampleRate int) (Output, error)
)

type Speaker struct {
	decode    DecodeFunc
	newOutput NewOutputFunc
	log       *zap.Logger

	once       sync.Once
	output     Output
	sampleRate int
	err        error
}

func NewSpeaker(decode DecodeFunc, newOutput NewOutputFunc, log *zap.Logger) *Speaker {
	return &Speaker{
		decode:    decode,
		newOutput: newOutput,
		log:       log,
	}
}

// Play decodes audio and starts playback. It returns once playback has started.
// userID is ignored: there is only one sound card.
func (s *Speaker) Play(ctx context.Context, userID int64, audio []byte) error {
	stream, err := s.decode(audio)
	if err != nil {
		return fmt.Errorf("decoding audio: %w", err)
	}

	out, rate, err := s.open(stream.SampleRate())
	if err != nil {
		return err
	}
	if stream.SampleRate() != rate {
		return fmt.Errorf("%w: got %d Hz, output runs at %d Hz", ErrSampleRate, stream.SampleRate(), rate)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	voice := out.NewVoice(stream)
	voice.Play()

	go s.hold(voice)

	return nil
}

// open creates the shared output on first use. A failed open is not retried.
func (s *Speaker) open(sampleRate int) (Output, int, error) {
	s.once.Do(func() {
		s.output, s.err = s.newOutput(sampleRate)
		s.sampleRate = sampleRate
		if s.err != nil {
			s.log.Error("failed to open audio output", zap.Int("sample_rate", sampleRate), zap.Error(s.err))
			return
		}
		s.log.Info("audio output opened", zap.Int("sample_rate", sampleRate))
	})

	if s.err != nil {
		return nil, 0, fmt.Errorf("opening audio output: %w", s.err)
	}

	return s.output, s.sampleRate, nil
}

// hold keeps a reference to voice until it finishes so it is not collected mid-playback.
func (s *Speaker) hold(voice Voice) {
	for voice.IsPlaying() {
		time.Sleep(pollInterval)
	}
}

type mp3Stream struct {
	*mp3.Decoder
}

func DecodeMP3(data []byte) (Stream, error) {
	d, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return mp3Stream{d}, nil
}
