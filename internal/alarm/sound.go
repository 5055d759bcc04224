package alarm

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// Audio format for the synthesized beep.
const (
	sampleRate   = 44100
	channelCount = 1

	beepFrequency = 880.0 // Hz
	pulseLength   = 180 * time.Millisecond
	pulseGap      = 120 * time.Millisecond
	pulseCount    = 3
)

// Compile-time interface check.
var _ Sounder = (*BeepSounder)(nil)

// BeepSounder plays a short synthesized beep through the system audio
// device via oto.
type BeepSounder struct {
	ctx *oto.Context
	pcm []byte
}

// NewBeepSounder initializes the audio context. Returns ErrUnavailable when
// no audio device can be opened.
func NewBeepSounder() (*BeepSounder, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	<-ready

	return &BeepSounder{ctx: ctx, pcm: beepPCM()}, nil
}

// Play plays the beep synchronously. The dispatcher invokes it from a
// background goroutine, so blocking here never stalls rendering.
func (s *BeepSounder) Play(soundID string) error {
	_ = soundID // single built-in sound for now

	player := s.ctx.NewPlayer(bytes.NewReader(s.pcm))
	player.Play()
	for player.IsPlaying() {
		time.Sleep(10 * time.Millisecond)
	}
	if err := player.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Close releases the player handle. The oto context itself has no close;
// it is owned by the process.
func (s *BeepSounder) Close() error { return nil }

// beepPCM synthesizes the alarm pattern: three short sine pulses with a
// fade-out on each pulse edge to avoid clicks.
func beepPCM() []byte {
	pulseSamples := int(float64(sampleRate) * pulseLength.Seconds())
	gapSamples := int(float64(sampleRate) * pulseGap.Seconds())

	var buf bytes.Buffer
	for p := 0; p < pulseCount; p++ {
		for i := 0; i < pulseSamples; i++ {
			v := math.Sin(2 * math.Pi * beepFrequency * float64(i) / sampleRate)
			// Linear fade over the last tenth of the pulse.
			if tail := pulseSamples - i; tail < pulseSamples/10 {
				v *= float64(tail) / float64(pulseSamples/10)
			}
			sample := int16(v * 0.6 * math.MaxInt16)
			_ = binary.Write(&buf, binary.LittleEndian, sample)
		}
		if p < pulseCount-1 {
			for i := 0; i < gapSamples; i++ {
				_ = binary.Write(&buf, binary.LittleEndian, int16(0))
			}
		}
	}
	return buf.Bytes()
}
