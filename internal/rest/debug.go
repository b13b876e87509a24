//go:build debug

package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/pershin-daniil/MeetupPage/pkg/models"
	"github.com/pershin-daniil/MeetupPage/pkg/page"
)

// DebugEnabled reports whether the /debug routes are compiled in.
const DebugEnabled = true

type DebugState struct {
	Raw     *models.RawMeetup `json:"raw"`
	View    models.ViewMeetup `json:"view"`
	Status  page.Status       `json:"status"`
	Counter int               `json:"counter"`
}

func (s *Server) mountDebug(r chi.Router) {
	r.Route("/debug", func(r chi.Router) {
		if s.publicKey != nil {
			r.Use(s.jwtAuth)
		} else {
			s.log.Warn("debug routes are served without authentication")
		}
		r.Get("/state", s.debugStateHandler)
	})
}

func (s *Server) debugStateHandler(w http.ResponseWriter, r *http.Request) {
	if claims := s.getClaims(r.Context()); claims != nil {
		s.log.Infof("debug state requested by %s", claims.Subject)
	}
	state := DebugState{
		View:    s.app.Meetup(),
		Status:  s.app.Status(),
		Counter: s.app.Count(),
	}
	if raw, ok := s.app.RawMeetup(); ok {
		state.Raw = &raw
	}
	s.writeResponse(w, http.StatusOK, state)
}
