package model

import "github.com/go-drift/sheet/pkg/axis"

// notifier fans a change out to registered listeners.
type notifier struct {
	listeners      map[int]func(axis.Change)
	nextListenerID int
}

func (n *notifier) AddListener(listener func(axis.Change)) func() {
	if listener == nil {
		return func() {}
	}
	if n.listeners == nil {
		n.listeners = make(map[int]func(axis.Change))
	}
	id := n.nextListenerID
	n.nextListenerID++
	n.listeners[id] = listener
	return func() {
		delete(n.listeners, id)
	}
}

func (n *notifier) notify(c axis.Change) {
	if c.Removed == 0 && c.Added == 0 {
		return
	}
	for _, listener := range n.listeners {
		listener(c)
	}
}
