// Package device opens the system sound card through oto.
package device

import (
	"io"

	"github.com/Minesh6684/OpenAI-Translator/internal/audio"
	"github.com/ebitengine/oto/v3"
)

const channelCount = 2

type output struct {
	ctx *oto.Context
}

func (o output) NewVoice(r io.Reader) audio.Voice {
	return o.ctx.NewPlayer(r)
}

// NewOutput opens the sound card for signed 16-bit stereo at sampleRate and
// waits until it is ready.
func NewOutput(sampleRate int) (audio.Output, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	return output{ctx: ctx}, nil
}
