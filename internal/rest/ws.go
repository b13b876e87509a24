package rest

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/pershin-daniil/MeetupPage/pkg/models"
)

const writeWait = 10 * time.Second

func (s *Server) upgrader() websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" {
				return true
			}
			for _, allowed := range s.corsOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
	}
}

// meetupWSHandler sends the current view, then a fresh view after every
// change of the raw meetup. Only the latest pending view is kept.
func (s *Server) meetupWSHandler(w http.ResponseWriter, r *http.Request) {
	upgrader := s.upgrader()
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnf("err during websocket upgrade: %v", err)
		return
	}
	defer func() {
		if err = conn.Close(); err != nil {
			s.log.Debugf("err during closing websocket: %v", err)
		}
	}()

	updates := make(chan models.ViewMeetup, 1)
	unsubscribe := s.app.SubscribeMeetup(func(view models.ViewMeetup) {
		for {
			select {
			case updates <- view:
				return
			default:
			}
			select {
			case <-updates:
			default:
			}
		}
	})
	defer unsubscribe()

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err = s.writeView(conn, s.app.Meetup()); err != nil {
		return
	}
	for {
		select {
		case <-closed:
			return
		case view := <-updates:
			if err = s.writeView(conn, view); err != nil {
				return
			}
		}
	}
}

func (s *Server) writeView(conn *websocket.Conn, view models.ViewMeetup) error {
	if err := conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := conn.WriteJSON(view); err != nil {
		s.log.Debugf("err during writing view: %v", err)
		return err
	}
	return nil
}
