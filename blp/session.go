// Package blp defines the object model of the Bloomberg desktop API session:
// the session surface itself, the events it emits, and the element trees
// those events carry. The concrete session is supplied by the embedding
// application through a SessionFactory, typically wrapping the vendor's
// native binding; blptest provides a scripted in-memory one for tests.
package blp

import "github.com/google/uuid"

// RefDataService is the service name of the reference data service.
const RefDataService = "//blp/refdata"

// Default desktop API endpoint.
const (
	DefaultHost = "localhost"
	DefaultPort = 8194
)

// SessionOptions identifies the endpoint a session connects to.
type SessionOptions struct {
	Host string
	Port int
}

// WithDefaults returns a copy of the options with empty fields replaced by
// the default desktop API endpoint.
func (o SessionOptions) WithDefaults() SessionOptions {
	if o.Host == "" {
		o.Host = DefaultHost
	}
	if o.Port == 0 {
		o.Port = DefaultPort
	}
	return o
}

// SessionFactory opens a new vendor session. This is the seam where a real
// binding plugs in.
type SessionFactory func(opts SessionOptions) (Session, error)

// Session is a single connection to the vendor API. A session serves exactly
// one request lifetime in this module: it is started, used and stopped by one
// call, and is not safe for concurrent use.
type Session interface {
	// Start establishes the connection.
	Start() error
	// OpenService opens the named service on the session.
	OpenService(name string) error
	// GetService returns a previously opened service.
	GetService(name string) (Service, error)
	// SendRequest sends the request under the given correlation ID.
	SendRequest(req Request, correlationID uuid.UUID) error
	// NextEvent blocks until the session delivers the next event. There is
	// no timeout: if the remote side never responds, NextEvent never
	// returns.
	NextEvent() (Event, error)
	// Stop releases the session.
	Stop() error
}

// Service is a named vendor service obtained from a session.
type Service interface {
	// CreateRequest creates an empty request for the named operation, e.g.
	// "ReferenceDataRequest".
	CreateRequest(operation string) (Request, error)
}

// Request is a vendor request under construction. Once sent it must not be
// modified.
type Request interface {
	// Append appends a value to the named array element of the request.
	Append(element string, value interface{}) error
	// Set sets the named scalar element of the request.
	Set(element string, value interface{}) error
}
