package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"

	"github.com/pershin-daniil/MeetupPage/pkg/counter"
	"github.com/pershin-daniil/MeetupPage/pkg/meetupapi"
	"github.com/pershin-daniil/MeetupPage/pkg/models"
	"github.com/pershin-daniil/MeetupPage/pkg/page"
	"github.com/pershin-daniil/MeetupPage/pkg/service"
)

const version = "test"

const upstreamMeetup = `{
	"id": 6,
	"title": "VueJS Meetup",
	"imageId": "abc123",
	"date": "2021-03-05T10:00:00Z",
	"place": "Moscow",
	"organizer": {"name": "Ivan", "links": ["https://example.com"]},
	"agenda": [
		{"id": 1, "type": "registration"},
		{"id": 2, "type": "talk", "title": "Reactivity", "speaker": "Anna", "startsAt": "10:30"},
		{"id": 3, "type": "unknown-xyz"}
	]
}`

type IntegrationTestSuite struct {
	suite.Suite
	log      *logrus.Logger
	upstream *httptest.Server
	status   int
	body     string
	app      *service.PageService
	server   *httptest.Server
}

func TestIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(IntegrationTestSuite))
}

func (s *IntegrationTestSuite) SetupTest() {
	s.log = logrus.New()
	s.log.SetLevel(logrus.PanicLevel)
	s.status = http.StatusOK
	s.body = upstreamMeetup
	s.upstream = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/meetups/6" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(s.status)
		_, _ = w.Write([]byte(s.body))
	}))

	client, err := meetupapi.New(s.log, s.upstream.URL)
	s.Require().NoError(err)
	p := page.New(s.log, client, s.upstream.URL, 6, "en-US")
	s.app = service.NewPageService(s.log, p, counter.New(s.log))
	s.server = httptest.NewServer(New(s.log, s.app, ":0", version).Handler())
}

func (s *IntegrationTestSuite) TearDownTest() {
	s.server.Close()
	s.upstream.Close()
}

func (s *IntegrationTestSuite) sendRequest(method, path string, result interface{}) *http.Response {
	s.T().Helper()
	req, err := http.NewRequestWithContext(context.Background(), method, s.server.URL+path, nil)
	s.Require().NoError(err)
	resp, err := http.DefaultClient.Do(req)
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(resp.Body.Close())
	}()
	if result != nil {
		s.Require().NoError(json.NewDecoder(resp.Body).Decode(result))
	}
	return resp
}

func (s *IntegrationTestSuite) TestVersion() {
	resp, err := http.Get(s.server.URL + "/version")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().NotEmpty(resp.Header.Get(requestIDHeader))
}

func (s *IntegrationTestSuite) TestMeetupBeforeMount() {
	var view models.ViewMeetup
	resp := s.sendRequest(http.MethodGet, "/api/v1/meetup", &view)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Empty(view.Agenda)
	s.Require().Empty(view.Title)

	var respErr ErrorResponse
	resp = s.sendRequest(http.MethodGet, "/api/v1/meetup/raw", &respErr)
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
	s.Require().Equal(ErrMeetupNotLoaded.Error(), respErr.Error)

	var status page.Status
	s.sendRequest(http.MethodGet, "/api/v1/meetup/state", &status)
	s.Require().Equal(page.StateUninitialized, status.State)
}

func (s *IntegrationTestSuite) TestMeetupAfterMount() {
	s.Require().NoError(s.app.Mount(context.Background()))

	var view struct {
		ID             int             `json:"id"`
		Title          string          `json:"title"`
		Cover          string          `json:"cover"`
		Date           string          `json:"date"`
		DateOnlyString string          `json:"dateOnlyString"`
		Place          string          `json:"place"`
		Organizer      json.RawMessage `json:"organizer"`
		Agenda         []struct {
			Type           string `json:"type"`
			Icon           string `json:"icon"`
			Title          string `json:"title"`
			IsSpeakerShown bool   `json:"isSpeakerShown"`
			Speaker        string `json:"speaker"`
			StartsAt       string `json:"startsAt"`
		} `json:"agenda"`
	}
	resp := s.sendRequest(http.MethodGet, "/api/v1/meetup", &view)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal(6, view.ID)
	s.Require().Equal("VueJS Meetup", view.Title)
	s.Require().Equal(s.upstream.URL+"/images/abc123", view.Cover)
	s.Require().Equal("2021-03-05", view.DateOnlyString)
	s.Require().Contains(view.Date, "2021")
	s.Require().Len(view.Agenda, 3)
	s.Require().Equal("Регистрация", view.Agenda[0].Title)
	s.Require().Equal("key", view.Agenda[0].Icon)
	s.Require().Equal("Reactivity", view.Agenda[1].Title)
	s.Require().True(view.Agenda[1].IsSpeakerShown)
	s.Require().Equal("Anna", view.Agenda[1].Speaker)
	s.Require().Equal("10:30", view.Agenda[1].StartsAt)
	s.Require().Equal("Moscow", view.Place)
	s.Require().JSONEq(`{"name": "Ivan", "links": ["https://example.com"]}`, string(view.Organizer))
	s.Require().Equal("", view.Agenda[2].Icon)
	s.Require().Equal("", view.Agenda[2].Title)

	var raw models.RawMeetup
	resp = s.sendRequest(http.MethodGet, "/api/v1/meetup/raw", &raw)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal(models.Identifier("abc123"), raw.ImageID)
	s.Require().Equal("", raw.Agenda[0].Title)
	s.Require().Equal("Moscow", raw.Text("place"))
	s.Require().Equal("Anna", raw.Agenda[1].Text("speaker"))

	var status page.Status
	s.sendRequest(http.MethodGet, "/api/v1/meetup/state", &status)
	s.Require().Equal(page.Status{State: page.StateLoaded}, status)
}

func (s *IntegrationTestSuite) TestMeetupStatusError() {
	s.status = http.StatusNotFound
	err := s.app.Mount(context.Background())
	s.Require().EqualError(err, "Not Found")

	var status page.Status
	s.sendRequest(http.MethodGet, "/api/v1/meetup/state", &status)
	s.Require().Equal(page.Status{State: page.StateFailed, Error: "Not Found"}, status)
	resp := s.sendRequest(http.MethodGet, "/api/v1/meetup/raw", nil)
	s.Require().Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestMeetupApplicationError() {
	s.body = `{"error": "not found"}`
	err := s.app.Mount(context.Background())
	s.Require().EqualError(err, "not found")

	var status page.Status
	s.sendRequest(http.MethodGet, "/api/v1/meetup/state", &status)
	s.Require().Equal(page.Status{State: page.StateFailed, Error: "not found"}, status)
}

func (s *IntegrationTestSuite) TestCounter() {
	var c CounterResponse
	resp := s.sendRequest(http.MethodGet, "/api/v1/counter", &c)
	s.Require().Equal(http.StatusOK, resp.StatusCode)
	s.Require().Equal(0, c.Count)

	for i := 1; i <= 3; i++ {
		resp = s.sendRequest(http.MethodPost, "/api/v1/counter/click", &c)
		s.Require().Equal(http.StatusOK, resp.StatusCode)
		s.Require().Equal(i, c.Count)
	}

	resp = s.sendRequest(http.MethodGet, "/api/v1/counter/click", nil)
	s.Require().Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}

func (s *IntegrationTestSuite) TestMeetupWebsocket() {
	wsURL := "ws" + strings.TrimPrefix(s.server.URL, "http") + "/api/v1/meetup/ws"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	s.Require().NoError(err)
	defer resp.Body.Close()
	defer conn.Close()

	s.Require().NoError(conn.SetReadDeadline(time.Now().Add(5 * time.Second)))
	var view models.ViewMeetup
	s.Require().NoError(conn.ReadJSON(&view))
	s.Require().Empty(view.Agenda)

	s.Require().NoError(s.app.Mount(context.Background()))

	s.Require().NoError(conn.ReadJSON(&view))
	s.Require().Equal("VueJS Meetup", view.Title)
	s.Require().Len(view.Agenda, 3)
}

func (s *IntegrationTestSuite) TestMetrics() {
	s.sendRequest(http.MethodPost, "/api/v1/counter/click", nil)
	resp, err := http.Get(s.server.URL + "/metrics")
	s.Require().NoError(err)
	defer resp.Body.Close()
	s.Require().Equal(http.StatusOK, resp.StatusCode)
}
