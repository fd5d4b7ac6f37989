package domscope

import (
	"sync"
	"time"
)

// debouncer coalesces a burst of positional events into a single handler
// invocation after a fixed quiescence window. A new event within the
// window restarts the timer; only the last position of a burst is acted
// upon, intermediate positions are dropped.
type debouncer struct {
	mu    sync.Mutex
	d     time.Duration
	timer *time.Timer
	x, y  float64
	fire  func(x, y float64)
}

func newDebouncer(d time.Duration, fire func(x, y float64)) *debouncer {
	return &debouncer{d: d, fire: fire}
}

// trigger records a position and (re)starts the quiescence window.
func (db *debouncer) trigger(x, y float64) {
	db.mu.Lock()
	defer db.mu.Unlock()
	db.x, db.y = x, y
	if db.timer != nil {
		db.timer.Stop()
	}
	db.timer = time.AfterFunc(db.d, db.flush)
}

func (db *debouncer) flush() {
	db.mu.Lock()
	x, y := db.x, db.y
	db.timer = nil
	db.mu.Unlock()
	db.fire(x, y)
}

// stop cancels a pending invocation.
func (db *debouncer) stop() {
	db.mu.Lock()
	defer db.mu.Unlock()
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}
