package config

import "time"

// Timer defaults.
const (
	InitialMinutes = 1
	InitialSeconds = 0
	FieldMax       = 59
	TickInterval   = time.Second
)

// Application settings.
const (
	AppName    = "countdown"
	DBFileName = "countdown.db"
)

// Audio settings.
const (
	SampleRate = 44100
	ToneHz     = 880
)

// ExpiryPattern is the notification cadence played when the timer hits
// zero: alternating buzz and pause segments, starting with a buzz.
var ExpiryPattern = []time.Duration{
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond, 500 * time.Millisecond,
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond, 500 * time.Millisecond,
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond, 200 * time.Millisecond,
	75 * time.Millisecond,
}
