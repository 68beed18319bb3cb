package events

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// Bus is an in-process publisher/subscriber. Everything runs inside one
// binary, so fan-out is a buffered channel per subscriber instead of a
// broker; a subscriber that falls behind drops events rather than blocking
// the mutating path.
type Bus struct {
	log *zap.Logger
	mu  sync.RWMutex
	sub map[string][]chan Event
}

func NewBus(log *zap.Logger) *Bus {
	return &Bus{log: log, sub: make(map[string][]chan Event)}
}

func (b *Bus) Publish(_ context.Context, stream string, event Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, ch := range b.sub[stream] {
		select {
		case ch <- event:
		default:
			b.log.Warn("subscriber lagging, event dropped",
				zap.String("stream", stream),
				zap.String("type", event.Type),
			)
		}
	}
	return nil
}

func (b *Bus) Subscribe(ctx context.Context, stream string, handler func(Event)) error {
	ch := make(chan Event, 64)

	b.mu.Lock()
	b.sub[stream] = append(b.sub[stream], ch)
	b.mu.Unlock()

	go func() {
		defer b.remove(stream, ch)
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-ch:
				if !ok {
					return
				}
				handler(event)
			}
		}
	}()

	return nil
}

func (b *Bus) remove(stream string, ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := b.sub[stream]
	for i, c := range subs {
		if c == ch {
			b.sub[stream] = append(subs[:i], subs[i+1:]...)
			break
		}
	}
}
