package audio

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStream struct {
	*bytes.Reader
	rate int
}

func (f fakeStream) SampleRate() int { return f.rate }

type fakeVoice struct {
	played atomic.Bool
}

func (v *fakeVoice) Play()           { v.played.Store(true) }
func (v *fakeVoice) IsPlaying() bool { return false }

type fakeOutput struct {
	mu     sync.Mutex
	voices []*fakeVoice
}

func (o *fakeOutput) NewVoice(r io.Reader) Voice {
	o.mu.Lock()
	defer o.mu.Unlock()
	v := &fakeVoice{}
	o.voices = append(o.voices, v)
	return v
}

func (o *fakeOutput) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.voices)
}

// decodeWithRate treats the first byte as a sample-rate selector.
func decodeWithRate(data []byte) (Stream, error) {
	if len(data) == 0 {
		return nil, errors.New("empty")
	}
	rate := 24000
	if data[0] == 'H' {
		rate = 44100
	}
	return fakeStream{Reader: bytes.NewReader(data), rate: rate}, nil
}

func newTestSpeaker(openErr error) (*Speaker, *fakeOutput, *atomic.Int32) {
	out := &fakeOutput{}
	opened := &atomic.Int32{}
	s := NewSpeaker(decodeWithRate, func(sampleRate int) (Output, error) {
		opened.Add(1)
		if openErr != nil {
			return nil, openErr
		}
		return out, nil
	}, zap.NewNop())
	return s, out, opened
}

func TestSpeaker_OpensOutputOnce(t *testing.T) {
	t.Parallel()

	s, out, opened := newTestSpeaker(nil)
	assert.Equal(t, int32(0), opened.Load())

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Play(context.Background(), 1, []byte("speech")))
	}

	assert.Equal(t, int32(1), opened.Load())
	require.Equal(t, 3, out.count())
	for _, v := range out.voices {
		assert.True(t, v.played.Load())
	}
}

func TestSpeaker_ConcurrentPlaysShareOutput(t *testing.T) {
	t.Parallel()

	s, out, opened := newTestSpeaker(nil)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			assert.NoError(t, s.Play(context.Background(), id, []byte("speech")))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, int32(1), opened.Load())
	assert.Equal(t, 10, out.count())
}

func TestSpeaker_Errors(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name      string
		openErr   error
		ctx       context.Context
		calls     [][]byte
		wantErr   error
		wantOpens int32
	}{
		{
			name:      "decode failure does not open output",
			ctx:       context.Background(),
			calls:     [][]byte{{}},
			wantOpens: 0,
		},
		{
			name:      "open failure is not retried",
			openErr:   errors.New("no sound card"),
			ctx:       context.Background(),
			calls:     [][]byte{[]byte("speech"), []byte("speech")},
			wantOpens: 1,
		},
		{
			name:      "sample rate mismatch",
			ctx:       context.Background(),
			calls:     [][]byte{[]byte("speech"), []byte("HQ speech")},
			wantErr:   ErrSampleRate,
			wantOpens: 1,
		},
		{
			name:      "canceled context",
			ctx:       canceled,
			calls:     [][]byte{[]byte("speech")},
			wantErr:   context.Canceled,
			wantOpens: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, out, opened := newTestSpeaker(tt.openErr)

			var err error
			for _, data := range tt.calls {
				err = s.Play(tt.ctx, 1, data)
			}

			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			}
			assert.Equal(t, tt.wantOpens, opened.Load())
			assert.LessOrEqual(t, out.count(), 1)
		})
	}
}

func TestDecodeMP3_RejectsGarbage(t *testing.T) {
	t.Parallel()

	_, err := DecodeMP3([]byte("definitely not an mp3"))
	require.Error(t, err)
}

// silentMP3 returns MPEG-1 Layer III frames at 128 kbit/s, 44100 Hz, stereo,
// with zeroed side info and main data.
func silentMP3(frames int) []byte {
	const frameSize = 417

	var data []byte
	for i := 0; i < frames; i++ {
		frame := make([]byte, frameSize)
		copy(frame, []byte{0xFF, 0xFB, 0x90, 0x00})
		data = append(data, frame...)
	}
	return data
}

func TestDecodeMP3(t *testing.T) {
	t.Parallel()

	stream, err := DecodeMP3(silentMP3(4))
	require.NoError(t, err)
	assert.Equal(t, 44100, stream.SampleRate())

	pcm := make([]byte, 64)
	_, err = io.ReadFull(stream, pcm)
	require.NoError(t, err)
}
