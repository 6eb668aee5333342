package events

// Publisher owns an ordered list of listeners.
// The zero value is ready to use. Notification is synchronous and follows
// registration order.
type Publisher struct {
	listeners []DataChangeListener
}

// Subscribe registers a listener. Nil listeners are ignored.
func (p *Publisher) Subscribe(listener DataChangeListener) {
	if listener == nil {
		return
	}
	p.listeners = append(p.listeners, listener)
}

// Notify calls OnDataChanged on every listener, in subscription order
func (p *Publisher) Notify() {
	for _, listener := range p.listeners {
		listener.OnDataChanged()
	}
}

// Len returns the number of subscribed listeners
func (p *Publisher) Len() int {
	return len(p.listeners)
}
