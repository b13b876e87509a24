package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/pershin-daniil/MeetupPage/pkg/models"
	"github.com/pershin-daniil/MeetupPage/pkg/page"
)

var ErrMeetupNotLoaded = errors.New("meetup is not loaded")

type App interface {
	Meetup() models.ViewMeetup
	RawMeetup() (models.RawMeetup, bool)
	Status() page.Status
	SubscribeMeetup(fn func(view models.ViewMeetup)) (unsubscribe func())
	Count() int
	Click() int
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type CounterResponse struct {
	Count int `json:"count"`
}

func (s *Server) versionHandler(w http.ResponseWriter, _ *http.Request) {
	_, err := fmt.Fprintf(w, "%s\n", s.version)
	if err != nil {
		s.log.Warnf("err during writing to connection: %v", err)
	}
}

func (s *Server) getMeetupHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Meetup())
}

func (s *Server) getRawMeetupHandler(w http.ResponseWriter, _ *http.Request) {
	raw, ok := s.app.RawMeetup()
	if !ok {
		s.writeResponse(w, http.StatusNotFound, ErrMeetupNotLoaded)
		return
	}
	s.writeResponse(w, http.StatusOK, raw)
}

func (s *Server) getMeetupStateHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeResponse(w, http.StatusOK, s.app.Status())
}

func (s *Server) getCounterHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeResponse(w, http.StatusOK, CounterResponse{Count: s.app.Count()})
}

func (s *Server) clickCounterHandler(w http.ResponseWriter, _ *http.Request) {
	s.writeResponse(w, http.StatusOK, CounterResponse{Count: s.app.Click()})
}

func (s *Server) writeResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if x, ok := data.(error); ok {
		if err := json.NewEncoder(w).Encode(ErrorResponse{Error: x.Error()}); err != nil {
			s.log.Warnf("err during encoding error: %v", err)
		}
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Warnf("err during encoding response: %v", err)
	}
}
