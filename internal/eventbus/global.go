package eventbus

import "context"

var globalBus EventBus

// Init installs the process-wide default bus.
func Init(bus EventBus) { globalBus = bus }

// Publish sends ev on the global bus, if one has been installed.
func Publish(ctx context.Context, ev *Envelope) error {
	if globalBus == nil {
		return nil
	}
	return globalBus.Publish(ctx, ev)
}
