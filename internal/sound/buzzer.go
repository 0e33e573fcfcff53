// Package sound plays the expiry alert. The original device vibrated; here
// the same cadence is rendered as short audio bursts.
package sound

import (
	"bytes"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"

	"countdown/internal/config"
)

// Buzzer plays a fixed pre-rendered alert pattern through the system audio
// device.
type Buzzer struct {
	ctx *oto.Context
	pcm []byte
}

// NewBuzzer initializes the audio context and renders the pattern once.
// Returns an error if no audio device is available; callers should then run
// without sound.
func NewBuzzer(pattern []time.Duration) (*Buzzer, error) {
	op := &oto.NewContextOptions{
		SampleRate:   config.SampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, readyChan, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-readyChan

	return &Buzzer{ctx: ctx, pcm: RenderPattern(pattern)}, nil
}

// Buzz plays the alert pattern. Blocks until playback finishes, so call it
// from a goroutine when the caller must stay responsive.
func (b *Buzzer) Buzz() {
	player := b.ctx.NewPlayer(bytes.NewReader(b.pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	_ = player.Close()
}

// RenderPattern converts alternating buzz/pause segment durations into
// signed 16-bit little-endian mono PCM. Even-indexed segments buzz,
// odd-indexed segments are silent.
func RenderPattern(pattern []time.Duration) []byte {
	var buf bytes.Buffer
	for i, seg := range pattern {
		samples := int(float64(config.SampleRate) * seg.Seconds())
		if i%2 == 1 {
			buf.Write(make([]byte, samples*2))
			continue
		}
		for s := 0; s < samples; s++ {
			v := math.Sin(2 * math.Pi * config.ToneHz * float64(s) / config.SampleRate)
			sample := int16(v * 0.6 * math.MaxInt16)
			buf.WriteByte(byte(sample))
			buf.WriteByte(byte(sample >> 8))
		}
	}
	return buf.Bytes()
}
