package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/pershin-daniil/MeetupPage/pkg/models"
	"github.com/pershin-daniil/MeetupPage/pkg/page"
)

type Page interface {
	Mount(ctx context.Context) error
	View() models.ViewMeetup
	Raw() (models.RawMeetup, bool)
	Status() page.Status
	Subscribe(fn func(view models.ViewMeetup)) (unsubscribe func())
}

type Counter interface {
	Increment() int
	Count() int
}

type PageService struct {
	log     *logrus.Entry
	page    Page
	counter Counter
}

func NewPageService(log *logrus.Logger, page Page, counter Counter) *PageService {
	s := PageService{
		log:     log.WithField("component", "service"),
		page:    page,
		counter: counter,
	}
	return &s
}

// Mount triggers the page's initial fetch. A failure is logged and returned;
// the page keeps serving its previous view.
func (s *PageService) Mount(ctx context.Context) error {
	if err := s.page.Mount(ctx); err != nil {
		s.log.Errorf("err mounting meetup page: %v", err)
		return err
	}
	return nil
}

func (s *PageService) Meetup() models.ViewMeetup {
	return s.page.View()
}

func (s *PageService) RawMeetup() (models.RawMeetup, bool) {
	return s.page.Raw()
}

func (s *PageService) Status() page.Status {
	return s.page.Status()
}

func (s *PageService) SubscribeMeetup(fn func(view models.ViewMeetup)) (unsubscribe func()) {
	return s.page.Subscribe(fn)
}

func (s *PageService) Count() int {
	return s.counter.Count()
}

func (s *PageService) Click() int {
	return s.counter.Increment()
}
