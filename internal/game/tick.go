package game

import "time"

// TickSource delivers the periodic 1-second ticks that drive countdowns and
// round timers. Rounds subscribe on Start and release the subscription when
// they finish, reset, or are abandoned, so no tick can reach a dead round.
type TickSource interface {
	// Subscribe registers fn to be called on every tick and returns a
	// cancel function. Cancel is idempotent.
	Subscribe(fn func()) (cancel func())
}

// TimerSource is the production TickSource, backed by time.Ticker.
type TimerSource struct {
	interval time.Duration
}

// NewTimerSource returns a TickSource firing at the given interval.
// Pass time.Second for normal gameplay.
func NewTimerSource(interval time.Duration) *TimerSource {
	return &TimerSource{interval: interval}
}

func (s *TimerSource) Subscribe(fn func()) (cancel func()) {
	t := time.NewTicker(s.interval)
	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-t.C:
				fn()
			case <-done:
				t.Stop()
				return
			}
		}
	}()
	var once bool
	return func() {
		if once {
			return
		}
		once = true
		close(done)
	}
}

// ManualSource is a TickSource driven by explicit Advance calls. Used in
// tests and anywhere the host application owns the tick loop.
type ManualSource struct {
	subs []func()
}

func NewManualSource() *ManualSource { return &ManualSource{} }

func (s *ManualSource) Subscribe(fn func()) (cancel func()) {
	i := len(s.subs)
	s.subs = append(s.subs, fn)
	return func() {
		if i < len(s.subs) && s.subs[i] != nil {
			s.subs[i] = nil
		}
	}
}

// Advance fires n ticks to all live subscribers.
func (s *ManualSource) Advance(n int) {
	for ; n > 0; n-- {
		for _, fn := range s.subs {
			if fn != nil {
				fn()
			}
		}
	}
}
