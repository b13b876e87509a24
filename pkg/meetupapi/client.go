package meetupapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/net/publicsuffix"

	"github.com/pershin-daniil/MeetupPage/pkg/metrics"
	"github.com/pershin-daniil/MeetupPage/pkg/models"
)

const (
	ResourceMeetups = "meetups"
	ResourceImages  = "images"
)

var (
	ErrEmptyBaseURL  = errors.New("api base url is empty")
	ErrNilHTTPClient = errors.New("http client is nil")
)

type Client struct {
	log     *logrus.Entry
	baseURL string
	http    *http.Client

	timeout    time.Duration
	hasTimeout bool
}

type Option func(*Client) error

// WithHTTPClient uses a copy of c, so the jar and timeout set by New never
// leak into the caller's client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) error {
		if c == nil {
			return ErrNilHTTPClient
		}
		cp := *c
		cl.http = &cp
		return nil
	}
}

// WithTimeout bounds every request. Zero means no timeout. It applies
// regardless of the order it is passed in.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) error {
		cl.timeout = d
		cl.hasTimeout = true
		return nil
	}
}

func New(log *logrus.Logger, baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	c := &Client{
		log:     log.WithField("component", "meetupapi"),
		baseURL: baseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("err applying option: %w", err)
		}
	}
	if c.hasTimeout {
		c.http.Timeout = c.timeout
	}
	// Cookies are kept per origin, so credentials only go back to the API host.
	if c.http.Jar == nil {
		jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
		if err != nil {
			return nil, fmt.Errorf("err creating cookie jar: %w", err)
		}
		c.http.Jar = jar
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// FetchMeetup loads a single meetup. It makes exactly one request.
func (c *Client) FetchMeetup(ctx context.Context, id int) (models.RawMeetup, error) {
	var meetup models.RawMeetup
	if err := c.fetchAPIRequest(ctx, ResourceMeetups, id, &meetup); err != nil {
		return models.RawMeetup{}, err
	}
	return meetup, nil
}

// CoverLink returns the image URL of the meetup's cover.
func (c *Client) CoverLink(meetup models.RawMeetup) string {
	return CoverLink(c.baseURL, meetup.ImageID.String())
}

func CoverLink(apiURL, imageID string) string {
	return apiURL + "/" + ResourceImages + "/" + imageID
}

func (c *Client) fetchAPIRequest(ctx context.Context, resource string, id int, out interface{}) (err error) {
	started := time.Now()
	kind := ""
	defer func() {
		metrics.APIFetchDuration.WithLabelValues(resource).Observe(time.Since(started).Seconds())
		if err != nil {
			metrics.APIFetchErrCount.WithLabelValues(resource, kind).Inc()
		}
	}()

	endpoint := fmt.Sprintf("%s/%s/%d", c.baseURL, resource, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		kind = "request"
		return fmt.Errorf("err building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	c.log.Debugf("fetching %s", endpoint)
	resp, err := c.http.Do(req)
	if err != nil {
		kind = "network"
		return fmt.Errorf("err fetching %s %d: %w", resource, id, err)
	}
	defer func() {
		if cErr := resp.Body.Close(); cErr != nil {
			c.log.Warnf("err during closing body: %v", cErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind = "status"
		return &TransportError{StatusCode: resp.StatusCode, StatusText: statusText(resp)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		kind = "network"
		return fmt.Errorf("err reading %s %d: %w", resource, id, err)
	}
	if err = applicationError(body); err != nil {
		kind = "application"
		return err
	}
	if err = json.Unmarshal(body, out); err != nil {
		kind = "decode"
		return fmt.Errorf("err decoding %s %d: %w", resource, id, err)
	}
	c.log.Debugf("fetched %s in %s", endpoint, time.Since(started))
	return nil
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
