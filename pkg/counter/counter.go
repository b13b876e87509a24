package counter

import (
	"github.com/sirupsen/logrus"

	"github.com/pershin-daniil/MeetupPage/pkg/metrics"
	"github.com/pershin-daniil/MeetupPage/pkg/reactive"
)

type Counter struct {
	log   *logrus.Entry
	count *reactive.Signal[int]
}

func New(log *logrus.Logger) *Counter {
	return &Counter{
		log:   log.WithField("component", "counter"),
		count: reactive.NewSignal(0),
	}
}

// Increment handles one click and returns the new count.
func (c *Counter) Increment() int {
	count := c.count.Update(func(n int) int { return n + 1 })
	metrics.CounterClicks.Inc()
	c.log.Debugf("count is now %d", count)
	return count
}

func (c *Counter) Count() int {
	return c.count.Get()
}

func (c *Counter) Subscribe(fn func(count int)) (unsubscribe func()) {
	return c.count.Subscribe(fn)
}
