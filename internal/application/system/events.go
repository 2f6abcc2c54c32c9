package system

// EventKind identifies a controller notification
type EventKind int

const (
	EventJumped EventKind = iota
	EventGrounded
	EventDashed
)

func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventGrounded:
		return "grounded"
	case EventDashed:
		return "dashed"
	default:
		return "unknown"
	}
}

// Event is a notification queued during a tick
type Event struct {
	Kind     EventKind
	Grounded bool    // only meaningful for EventGrounded
	Time     float64 // controller elapsed time when the event was raised
}

// Listener receives controller notifications after each tick
type Listener interface {
	OnJumped()
	OnGrounded(grounded bool)
	OnDashed()
}

// ListenerFuncs adapts optional callbacks to Listener
type ListenerFuncs struct {
	Jumped   func()
	Grounded func(grounded bool)
	Dashed   func()
}

func (f ListenerFuncs) OnJumped() {
	if f.Jumped != nil {
		f.Jumped()
	}
}

func (f ListenerFuncs) OnGrounded(grounded bool) {
	if f.Grounded != nil {
		f.Grounded(grounded)
	}
}

func (f ListenerFuncs) OnDashed() {
	if f.Dashed != nil {
		f.Dashed()
	}
}

// EventBus fans events out to subscribed listeners in subscription order
type EventBus struct {
	subs   []subscription
	nextID int
}

type subscription struct {
	id       int
	listener Listener
}

// NewEventBus creates an empty bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe registers l and returns a func that removes it again.
// Calling the returned func more than once is a no-op.
func (b *EventBus) Subscribe(l Listener) (unsubscribe func()) {
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscription{id: id, listener: l})
	return func() {
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
				return
			}
		}
	}
}

// Len returns the number of subscribed listeners
func (b *EventBus) Len() int {
	return len(b.subs)
}

// Publish delivers ev to every listener subscribed at call time
func (b *EventBus) Publish(ev Event) {
	subs := b.subs
	for _, s := range subs {
		switch ev.Kind {
		case EventJumped:
			s.listener.OnJumped()
		case EventGrounded:
			s.listener.OnGrounded(ev.Grounded)
		case EventDashed:
			s.listener.OnDashed()
		}
	}
}
