package services

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/boska/laundry-dash-api/store"
)

// SimulatorService drives the current order through the status sequence
// on randomized timers, standing in for a real status feed from the
// shop. Each order gets its own chain; the returned cancel handle stops
// it when the order is replaced or cleared.
type SimulatorService struct {
	orders *store.OrderStore
	delay  func() time.Duration
}

// NewSimulatorService creates a simulator with the default 3-8 s step
// delay
func NewSimulatorService(orders *store.OrderStore) *SimulatorService {
	return &SimulatorService{
		orders: orders,
		delay:  statusDelay,
	}
}

// SetStepDelay overrides the per-step delay (primarily for testing)
func (s *SimulatorService) SetStepDelay(delay func() time.Duration) {
	s.delay = delay
}

// statusDelay is uniform in [3s, 8s)
func statusDelay() time.Duration {
	return 3*time.Second + time.Duration(rand.Int63n(int64(5*time.Second)))
}

// Start launches the timer chain for the current order and returns its
// cancel handle. Each tick advances the order to the successor of its
// current status, so the chain only ever moves forward; it stops once
// the terminal status is reached, the order goes away, or the handle is
// cancelled.
func (s *SimulatorService) Start() (cancel func()) {
	ctx, cancelCtx := context.WithCancel(context.Background())

	go func() {
		for {
			timer := time.NewTimer(s.delay())
			select {
			case <-ctx.Done():
				timer.Stop()
				return
			case <-timer.C:
			}

			status, ok := s.orders.Status()
			if !ok {
				return
			}
			next, ok := status.Next()
			if !ok {
				// terminal status, no further scheduling
				return
			}
			if !s.orders.AdvanceStatus(next) {
				return
			}
			log.Printf("Order status advanced to %q", next)
		}
	}()

	return cancelCtx
}
