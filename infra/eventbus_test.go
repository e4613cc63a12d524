package infra

import (
	"sync"
	"testing"

	"github.com/cloudlagoon/lagoon/ports"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()
	ch := bus.Sub(ports.TopicArtifactStored)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		for e := range ch {
			_ = e
		}
	}()
	bus.Pub(ports.TopicArtifactStored, ports.Event{"cover 412510", "/var/lib/lagoon/photos/412510/cover.jpg"})
	bus.Unsub(ch)
	wg.Wait()
	bus.Shutdown()
}
