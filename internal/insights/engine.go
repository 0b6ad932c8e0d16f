package insights

import "time"

const (
	DefaultLowWellbeingThreshold	= 20.0
	DefaultHighWellbeingThreshold	= 80.0
)

type Options struct {
	// Location anchors week buckets, weekends and hours of day. Nil means UTC.
	Location		*time.Location
	LowWellbeingThreshold	float64
	HighWellbeingThreshold	float64
}

func DefaultOptions() Options {
	return Options{
		Location:		time.UTC,
		LowWellbeingThreshold:	DefaultLowWellbeingThreshold,
		HighWellbeingThreshold:	DefaultHighWellbeingThreshold,
	}
}

// Engine runs the three pipelines. Its methods are pure: they read the entries
// they are given and nothing else.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) *Engine {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	return &Engine{opts: opts}
}

func (e *Engine) local(t time.Time) time.Time {
	return t.In(e.opts.Location)
}
