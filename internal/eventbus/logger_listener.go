package eventbus

import (
	"context"

	"github.com/annel0/blocknetwork/internal/logging"
)

// StartLoggingListener subscribes to every envelope on bus and writes it
// to the standard log at DEBUG. Non-blocking.
func StartLoggingListener(bus EventBus) error {
	_, err := bus.Subscribe(context.Background(), Filter{}, func(ctx context.Context, ev *Envelope) {
		logging.Debug("[EventBus] %s %s src=%s prio=%d size=%dB", ev.ID, ev.EventType, ev.Source, ev.Priority, len(ev.Payload))
	})
	if err != nil {
		return err
	}
	logging.Info("LoggingListener: subscribed to all events")
	return nil
}
