// Package carousel rotates the hero slides shown above the catalog.
package carousel

import (
	"errors"
	"sync"
	"time"

	"bike-shop/models"

	"github.com/benbjohnson/clock"
)

const (
	MaxSlides       = 5
	DefaultInterval = 5 * time.Second
)

var ErrIndexOutOfRange = errors.New("slide index out of range")

type State int

const (
	Idle State = iota
	Active
)

func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "idle"
}

// Controller owns the current slide index and the autoplay task. Ticks arrive
// on the timer goroutine, so all state is guarded by mu.
type Controller struct {
	mu       sync.Mutex
	clock    clock.Clock
	interval time.Duration
	onChange func(index int, slide models.Item)

	slides  []models.Item
	current int

	ticker *clock.Ticker
	done   chan struct{}
	gen    uint64
}

// New builds an idle controller. onChange may be nil; it is called without
// the lock held whenever the index moves.
func New(clk clock.Clock, interval time.Duration, onChange func(index int, slide models.Item)) *Controller {
	if clk == nil {
		clk = clock.New()
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Controller{
		clock:    clk,
		interval: interval,
		onChange: onChange,
	}
}

// Setup replaces the slides with the first MaxSlides items, resets the index
// and restarts autoplay. Without items the controller goes idle.
func (c *Controller) Setup(items []models.Item) {
	slides := Window(items)

	c.mu.Lock()
	c.slides = slides
	c.current = 0
	c.restartLocked()
	c.mu.Unlock()
}

// Window is the slide set for items: a copy of the first MaxSlides.
func Window(items []models.Item) []models.Item {
	n := len(items)
	if n > MaxSlides {
		n = MaxSlides
	}
	slides := make([]models.Item, n)
	copy(slides, items[:n])
	return slides
}

// Tick advances to the next slide, wrapping around. No-op when idle.
func (c *Controller) Tick() {
	c.mu.Lock()
	index, slide, moved := c.advanceLocked()
	c.mu.Unlock()

	if moved {
		c.notify(index, slide)
	}
}

// GoTo jumps to index and restarts the autoplay period. Out of range indexes
// are rejected and leave both the index and the timer untouched.
func (c *Controller) GoTo(index int) error {
	c.mu.Lock()
	if index < 0 || index >= len(c.slides) {
		c.mu.Unlock()
		return ErrIndexOutOfRange
	}
	c.current = index
	slide := c.slides[index]
	c.restartLocked()
	c.mu.Unlock()

	c.notify(index, slide)
	return nil
}

// Start (re)starts autoplay. It is a no-op when there are no slides.
func (c *Controller) Start() {
	c.mu.Lock()
	c.restartLocked()
	c.mu.Unlock()
}

// Stop cancels autoplay; the current slide stays where it is.
func (c *Controller) Stop() {
	c.mu.Lock()
	c.stopLocked()
	c.mu.Unlock()
}

func (c *Controller) Current() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *Controller) Slides() []models.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Item, len(c.slides))
	copy(out, c.slides)
	return out
}

func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return Idle
	}
	return Active
}

// Running reports whether an autoplay task is live.
func (c *Controller) Running() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticker != nil
}

func (c *Controller) Interval() time.Duration {
	return c.interval
}

func (c *Controller) advanceLocked() (int, models.Item, bool) {
	if len(c.slides) == 0 {
		return 0, models.Item{}, false
	}
	c.current = (c.current + 1) % len(c.slides)
	return c.current, c.slides[c.current], true
}

func (c *Controller) restartLocked() {
	c.stopLocked()
	if len(c.slides) == 0 {
		return
	}

	c.gen++
	c.ticker = c.clock.Ticker(c.interval)
	c.done = make(chan struct{})
	go c.run(c.ticker, c.done, c.gen)
}

func (c *Controller) stopLocked() {
	if c.ticker == nil {
		return
	}
	c.ticker.Stop()
	close(c.done)
	c.ticker = nil
	c.done = nil
}

func (c *Controller) run(ticker *clock.Ticker, done <-chan struct{}, gen uint64) {
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			c.tickFrom(gen)
		}
	}
}

// tickFrom drops ticks from a task that was cancelled while its tick was in
// flight.
func (c *Controller) tickFrom(gen uint64) {
	c.mu.Lock()
	if gen != c.gen || c.ticker == nil {
		c.mu.Unlock()
		return
	}
	index, slide, moved := c.advanceLocked()
	c.mu.Unlock()

	if moved {
		c.notify(index, slide)
	}
}

func (c *Controller) notify(index int, slide models.Item) {
	if c.onChange != nil {
		c.onChange(index, slide)
	}
}
