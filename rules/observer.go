package rules

import "fmt"

//go:generate go tool mockgen -destination=./mocks/observer_mock.go -package=mocks . Observer

// Observer is told about every board mutation, after it has been applied.
type Observer interface {
	BoardChanged(b *Board) error
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(b *Board) error

func (f ObserverFunc) BoardChanged(b *Board) error { return f(b) }

type subscription struct {
	o Observer
}

// Subscribe adds o to the notification list. The returned func removes it again and
// may be called any number of times. The board never manages o's lifetime.
func (b *Board) Subscribe(o Observer) (unsubscribe func(), err error) {
	if o == nil {
		return nil, ErrNilObserver
	}
	sub := &subscription{o: o}
	b.observers = append(b.observers, sub)
	return func() { b.unsubscribe(sub) }, nil
}

func (b *Board) unsubscribe(sub *subscription) {
	for i, s := range b.observers {
		if s == sub {
			b.observers = append(b.observers[:i:i], b.observers[i+1:]...)
			return
		}
	}
}

// notify calls observers in subscription order. The first failure stops the fan-out.
func (b *Board) notify() error {
	subs := append([]*subscription(nil), b.observers...)
	for i, s := range subs {
		if err := s.o.BoardChanged(b); err != nil {
			return fmt.Errorf("observer %d: %w", i, err)
		}
	}
	return nil
}
