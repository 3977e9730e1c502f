package blptest

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/marketdatahq/blpdata-go/blp"
)

// ErrScriptExhausted is returned by NextEvent when the scripted event
// sequence runs out. A script missing its terminal RESPONSE event fails the
// test instead of blocking it forever.
var ErrScriptExhausted = errors.New("blptest: scripted session has no more events")

// Session is a blp.Session that replays a scripted event sequence and
// records every interaction for assertions.
type Session struct {
	// Script is the event sequence NextEvent replays in order.
	Script []blp.Event

	// Error overrides for the individual session calls.
	StartErr       error
	OpenServiceErr error
	SendRequestErr error
	NextEventErr   error
	StopErr        error

	// Recorded interactions.
	Opts           blp.SessionOptions
	Started        bool
	StopCalls      int
	OpenedServices []string
	SentRequests   []*Request
	CorrelationIDs []uuid.UUID

	next int
}

var _ blp.Session = (*Session)(nil)

// Factory returns a blp.SessionFactory handing out this session, recording
// the options it was dialed with.
func (s *Session) Factory() blp.SessionFactory {
	return func(opts blp.SessionOptions) (blp.Session, error) {
		s.Opts = opts
		return s, nil
	}
}

func (s *Session) Start() error {
	if s.StartErr != nil {
		return s.StartErr
	}
	s.Started = true
	return nil
}

func (s *Session) OpenService(name string) error {
	if s.OpenServiceErr != nil {
		return s.OpenServiceErr
	}
	s.OpenedServices = append(s.OpenedServices, name)
	return nil
}

func (s *Session) GetService(name string) (blp.Service, error) {
	for _, opened := range s.OpenedServices {
		if opened == name {
			return &service{}, nil
		}
	}
	return nil, fmt.Errorf("blptest: service %q has not been opened", name)
}

func (s *Session) SendRequest(req blp.Request, correlationID uuid.UUID) error {
	if s.SendRequestErr != nil {
		return s.SendRequestErr
	}
	if r, ok := req.(*Request); ok {
		s.SentRequests = append(s.SentRequests, r)
	}
	s.CorrelationIDs = append(s.CorrelationIDs, correlationID)
	return nil
}

func (s *Session) NextEvent() (blp.Event, error) {
	if s.NextEventErr != nil {
		return nil, s.NextEventErr
	}
	if s.next >= len(s.Script) {
		return nil, ErrScriptExhausted
	}
	event := s.Script[s.next]
	s.next++
	return event, nil
}

func (s *Session) Stop() error {
	s.StopCalls++
	return s.StopErr
}

type service struct{}

func (*service) CreateRequest(operation string) (blp.Request, error) {
	return &Request{Operation: operation}, nil
}

// Request records the elements appended to and set on a request under
// construction.
type Request struct {
	Operation string
	Appended  map[string][]interface{}
	Values    map[string]interface{}
}

var _ blp.Request = (*Request)(nil)

func (r *Request) Append(element string, value interface{}) error {
	if r.Appended == nil {
		r.Appended = make(map[string][]interface{})
	}
	r.Appended[element] = append(r.Appended[element], value)
	return nil
}

func (r *Request) Set(element string, value interface{}) error {
	if r.Values == nil {
		r.Values = make(map[string]interface{})
	}
	r.Values[element] = value
	return nil
}
