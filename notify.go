package dyncursor

import (
	"fmt"
	"io"
	"sync"
)

// Shake notification names.
const (
	EventShakeStart  = "shakestart"
	EventShakeUpdate = "shakeupdate"
	EventShakeEnd    = "shakeend"
)

// Event is a notification for external listeners.
type Event struct {
	Name string
	Data string
}

// String renders the event as a "name>>data" line body.
func (e Event) String() string {
	return e.Name + ">>" + e.Data
}

// Notifier receives engine events.
type Notifier interface {
	Notify(Event)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Event)

// Notify calls f(ev).
func (f NotifierFunc) Notify(ev Event) { f(ev) }

type nopNotifier struct{}

func (nopNotifier) Notify(Event) {}

// WriterNotifier writes one "name>>data" line per event.
// It is safe for concurrent use.
type WriterNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterNotifier creates a notifier writing to w.
func NewWriterNotifier(w io.Writer) *WriterNotifier {
	return &WriterNotifier{w: w}
}

// Notify writes ev. Write errors are logged and dropped.
func (n *WriterNotifier) Notify(ev Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if _, err := fmt.Fprintln(n.w, ev.String()); err != nil {
		Logger().Warn("dyncursor: notification dropped", "event", ev.Name, "err", err)
	}
}

// shakeUpdateData formats the shakeupdate payload.
func shakeUpdateData(x, y int, trail, diagonal, zoom float64) string {
	return fmt.Sprintf("%d,%d,%v,%v,%v", x, y, trail, diagonal, zoom)
}
