package driver

import (
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/katalvlaran/fieldwave/field"
)

// Default oscillation shape: one full cycle per minute of ticks,
// swinging across the whole density range.
const (
	DefaultInterval  = time.Second
	DefaultPeriod    = 60
	DefaultBaseline  = 0.5
	DefaultAmplitude = 0.5
)

// Options tunes the driver. The zero value is usable; New accepts nil
// to mean defaults.
type Options struct {
	// Interval is the wall-clock spacing between ticks.
	// Zero or negative means DefaultInterval.
	Interval time.Duration

	// Period is the number of ticks per full oscillation cycle.
	// Zero means DefaultPeriod.
	Period uint64

	// Baseline and Amplitude shape the oscillation; the computed
	// density is clamped to [0,1] regardless.
	Baseline  float64
	Amplitude float64

	// OnTick is invoked once per tick with the tick counter, the
	// oscillated density and its phase classification. Nil means the
	// driver only logs.
	OnTick func(tick uint64, density float64, phase field.Phase)
}

// DefaultOptions returns the canonical driver settings.
func DefaultOptions() Options {
	return Options{
		Interval:  DefaultInterval,
		Period:    DefaultPeriod,
		Baseline:  DefaultBaseline,
		Amplitude: DefaultAmplitude,
	}
}

func (o *Options) normalized() Options {
	out := DefaultOptions()
	if o == nil {
		return out
	}
	if o.Interval > 0 {
		out.Interval = o.Interval
	}
	if o.Period > 0 {
		out.Period = o.Period
	}
	if o.Baseline != 0 {
		out.Baseline = o.Baseline
	}
	if o.Amplitude != 0 {
		out.Amplitude = o.Amplitude
	}
	out.OnTick = o.OnTick
	return out
}

// Density is the oscillation itself: baseline + amplitude*sin of the
// tick angle over period, clamped to [0,1]. Pure and deterministic, so
// the same tick always yields the same density.
func Density(tick, period uint64, baseline, amplitude float64) float64 {
	if period == 0 {
		period = DefaultPeriod
	}
	angle := 2 * math.Pi * float64(tick%period) / float64(period)
	d := baseline + amplitude*math.Sin(angle)
	if d < 0 {
		return 0
	}
	if d > 1 {
		return 1
	}
	return d
}

// Driver advances a tick counter on a time.Ticker. Create with New,
// start with Run (blocking), cancel with Stop.
type Driver struct {
	opts Options

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// New returns a stopped driver; nil opts means DefaultOptions.
func New(opts *Options) *Driver {
	return &Driver{
		opts: opts.normalized(),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Run starts the tick loop and blocks until Stop is called. Each tick
// increments the counter, recomputes the oscillated density, classifies
// it and hands all three to the callback.
func (d *Driver) Run() {
	defer close(d.done)

	slog.Info("driver started", "interval", d.opts.Interval, "period", d.opts.Period)

	ticker := time.NewTicker(d.opts.Interval)
	defer ticker.Stop()

	var tick uint64
	for {
		select {
		case <-d.stop:
			slog.Info("driver stopped", "tick", tick)
			return
		case <-ticker.C:
			tick++
			density := Density(tick, d.opts.Period, d.opts.Baseline, d.opts.Amplitude)
			phase := field.Classify(density)
			slog.Debug("tick", "tick", tick, "density", density, "phase", phase)
			if d.opts.OnTick != nil {
				d.opts.OnTick(tick, density, phase)
			}
		}
	}
}

// Stop cancels a running loop and waits for Run to return. Safe to
// call more than once.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() { close(d.stop) })
	<-d.done
}
