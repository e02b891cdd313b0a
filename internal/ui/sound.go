package ui

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/sirupsen/logrus"
)

// Chime plays a short sound when a session is saved. A missing or broken
// sound file just leaves the chime silent; saving never depends on audio.
type Chime struct {
	buffer *beep.Buffer
	log    *logrus.Logger
}

func NewChime(path string, enabled bool, log *logrus.Logger) *Chime {
	chime := &Chime{log: log}
	if !enabled {
		return chime
	}

	f, err := os.Open(path)
	if err != nil {
		log.WithError(err).Debug("save chime disabled, sound file not found")
		return chime
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		log.WithError(err).Debug("save chime disabled, sound file unreadable")
		return chime
	}
	defer streamer.Close()

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		log.WithError(err).Debug("save chime disabled, audio init failed")
		return chime
	}

	buffer := beep.NewBuffer(format)
	buffer.Append(streamer)
	chime.buffer = buffer
	return chime
}

func (c *Chime) Play() {
	if c.buffer == nil {
		return
	}

	streamer := c.buffer.Streamer(0, c.buffer.Len())
	speaker.Play(&effects.Volume{
		Streamer: streamer,
		Base:     2,
		Volume:   0,
	})
}
