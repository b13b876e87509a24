package page

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/pershin-daniil/MeetupPage/pkg/dates"
	"github.com/pershin-daniil/MeetupPage/pkg/models"
	"github.com/pershin-daniil/MeetupPage/pkg/reactive"
)

type State string

const (
	StateUninitialized State = "uninitialized"
	StateLoading       State = "loading"
	StateLoaded        State = "loaded"
	StateFailed        State = "failed"
)

type Fetcher interface {
	FetchMeetup(ctx context.Context, id int) (models.RawMeetup, error)
}

type Status struct {
	State State  `json:"state"`
	Error string `json:"error,omitempty"`
}

// Page owns the raw meetup and serves its view model. The raw value is
// written once, by Mount.
type Page struct {
	log       *logrus.Entry
	fetcher   Fetcher
	meetupID  int
	apiURL    string
	formatter dates.Formatter

	raw  *reactive.Signal[*models.RawMeetup]
	view *reactive.Memo[*models.RawMeetup, models.ViewMeetup]

	mountOnce sync.Once
	mountErr  error

	mu      sync.RWMutex
	state   State
	lastErr error
}

func New(log *logrus.Logger, fetcher Fetcher, apiURL string, meetupID int, locale string) *Page {
	p := Page{
		log:       log.WithField("component", "page"),
		fetcher:   fetcher,
		meetupID:  meetupID,
		apiURL:    apiURL,
		formatter: dates.NewFormatter(locale),
		raw:       reactive.NewSignal[*models.RawMeetup](nil),
		state:     StateUninitialized,
	}
	p.view = reactive.NewMemo(p.raw, func(raw *models.RawMeetup) models.ViewMeetup {
		return BuildView(raw, p.apiURL, p.formatter)
	})
	return &p
}

// Mount fetches the meetup. Only the first call issues a request; later
// calls return its result. On failure the previous raw value is kept.
func (p *Page) Mount(ctx context.Context) error {
	p.mountOnce.Do(func() {
		p.mountErr = p.getMeetup(ctx)
	})
	return p.mountErr
}

func (p *Page) getMeetup(ctx context.Context) error {
	p.setState(StateLoading, nil)
	raw, err := p.fetcher.FetchMeetup(ctx, p.meetupID)
	if err != nil {
		p.setState(StateFailed, err)
		p.log.Warnf("err during getting meetup %d: %v", p.meetupID, err)
		return err
	}
	// State and raw value change under one lock, so a reader that sees
	// StateLoaded also sees the meetup.
	p.mu.Lock()
	notify := p.raw.Store(&raw)
	p.state = StateLoaded
	p.lastErr = nil
	p.mu.Unlock()
	notify()
	p.log.Infof("meetup %d loaded: %q, %d agenda items", raw.ID, raw.Title, len(raw.Agenda))
	return nil
}

func (p *Page) setState(state State, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.state = state
	p.lastErr = err
}

func (p *Page) Status() Status {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := Status{State: p.state}
	if p.lastErr != nil {
		s.Error = p.lastErr.Error()
	}
	return s
}

func (p *Page) LastError() error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.lastErr
}

// Raw returns a copy of the raw meetup, or false while nothing is loaded.
func (p *Page) Raw() (models.RawMeetup, bool) {
	raw := p.raw.Get()
	if raw == nil {
		return models.RawMeetup{}, false
	}
	return *raw, true
}

func (p *Page) View() models.ViewMeetup {
	return p.view.Get()
}

func (p *Page) Locale() string {
	return p.formatter.Locale()
}

// Subscribe calls fn with a fresh view after every change of the raw meetup.
func (p *Page) Subscribe(fn func(view models.ViewMeetup)) (unsubscribe func()) {
	return p.raw.Subscribe(func(*models.RawMeetup) {
		fn(p.View())
	})
}
