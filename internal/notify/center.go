// Package notify maintains the queue of transient user-facing messages.
// Each notification auto-expires after its duration unless dismissed
// earlier; dismissal and expiry race safely through idempotent removal.
package notify

import (
	"sync"
	"time"
)

// Kind classifies a notification.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindWarning Kind = "warning"
	KindInfo    Kind = "info"
)

// DefaultDuration is how long a notification stays visible unless the
// caller says otherwise.
const DefaultDuration = 3 * time.Second

// Notification is a transient message. IDs are monotonic and never reused
// for the process lifetime.
type Notification struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"createdAt"`
}

// Center owns the visible notification set.
type Center struct {
	// pubMu serializes mutations with their publishes so concurrent
	// changes reach subscribers in the order they were applied. It is
	// always acquired before mu.
	pubMu sync.Mutex

	mu              sync.Mutex
	nextID          int64
	items           []Notification
	subs            map[int64]func([]Notification)
	nextSub         int64
	defaultDuration time.Duration
}

// NewCenter creates a notification center. A non-positive duration falls
// back to DefaultDuration.
func NewCenter(defaultDuration time.Duration) *Center {
	if defaultDuration <= 0 {
		defaultDuration = DefaultDuration
	}
	return &Center{
		subs:            map[int64]func([]Notification){},
		defaultDuration: defaultDuration,
	}
}

// Show appends a notification and schedules its expiry. It returns the
// allocated id immediately; the timer fires independently per message.
func (c *Center) Show(message string, kind Kind, duration time.Duration) int64 {
	if duration <= 0 {
		duration = c.defaultDuration
	}

	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.items = append(c.items, Notification{
		ID:        id,
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	})
	snapshot, subs := c.snapshotLocked()
	c.mu.Unlock()

	publish(subs, snapshot)

	// The timer is armed after publishing so subscribers always see the
	// message before its removal, even for very short durations.
	time.AfterFunc(duration, func() { c.Remove(id) })
	return id
}

// Remove dismisses a notification. Removing an unknown or already-removed
// id is a no-op, which makes the timer/dismissal race harmless.
func (c *Center) Remove(id int64) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()

	c.mu.Lock()
	idx := -1
	for i, n := range c.items {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		c.mu.Unlock()
		return
	}
	c.items = append(c.items[:idx], c.items[idx+1:]...)
	snapshot, subs := c.snapshotLocked()
	c.mu.Unlock()

	publish(subs, snapshot)
}

// Success shows a success notification with the default duration.
func (c *Center) Success(message string) int64 {
	return c.Show(message, KindSuccess, 0)
}

// Error shows an error notification with the default duration.
func (c *Center) Error(message string) int64 {
	return c.Show(message, KindError, 0)
}

// Warning shows a warning notification with the default duration.
func (c *Center) Warning(message string) int64 {
	return c.Show(message, KindWarning, 0)
}

// Info shows an info notification with the default duration.
func (c *Center) Info(message string) int64 {
	return c.Show(message, KindInfo, 0)
}

// Notifications returns a copy of the currently visible set in insertion
// order.
func (c *Center) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Subscribe registers fn to receive the full visible set on every change.
// Callbacks run synchronously on the mutating goroutine and must not call
// Show or Remove. The returned function cancels the subscription.
func (c *Center) Subscribe(fn func([]Notification)) func() {
	c.mu.Lock()
	c.nextSub++
	id := c.nextSub
	c.subs[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

func (c *Center) snapshotLocked() ([]Notification, []func([]Notification)) {
	snapshot := make([]Notification, len(c.items))
	copy(snapshot, c.items)
	subs := make([]func([]Notification), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	return snapshot, subs
}

func publish(subs []func([]Notification), snapshot []Notification) {
	for _, fn := range subs {
		fn(snapshot)
	}
}
