package audit

import (
	"context"
	"log/slog"
	"sync"
)

type Event struct {
	UserID   *string
	Action   string
	Entity   string
	EntityID *string
	Metadata any
}

// Writer persists one audit event.
type Writer interface {
	Write(ctx context.Context, ev Event) error
}

type Dispatcher struct {
	writer Writer
	logger *slog.Logger
	queue  chan Event

	wg        sync.WaitGroup
	closeOnce sync.Once
}

func NewDispatcher(writer Writer, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		writer: writer,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	d.wg.Add(1)
	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer d.wg.Done()

	for ev := range d.queue {
		if err := d.writer.Write(context.Background(), ev); err != nil {
			d.logger.Error("audit write failed", "action", ev.Action, "error", err)
		}
	}
}

// Dispatch never blocks the caller: a full queue drops the event.
// A nil Dispatcher ignores every event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		d.logger.Warn("audit queue full, dropping event", "action", ev.Action)
	}
}

// Close drains the queue and stops the worker. Dispatch must not be called afterwards.
func (d *Dispatcher) Close() {
	if d == nil {
		return
	}
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	d.wg.Wait()
}
