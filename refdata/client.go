// Package refdata is a synchronous client for the vendor's reference data
// service. It exposes two operations: point-in-time reference lookups and
// historical time-series lookups. Each call owns one session for its whole
// duration and blocks until the vendor delivers the terminal response event.
package refdata

import (
	"os"
	"sort"
	"strconv"

	"github.com/google/uuid"

	"github.com/marketdatahq/blpdata-go/blp"
)

// Client is the blpdata reference data client.
type Client interface {
	GetReferenceData(req GetReferenceDataRequest) (*ReferenceTable, error)
	GetHistoricalData(req GetHistoricalDataRequest) (*HistoricalTable, error)
}

// ClientOpts contains options for the reference data client.
type ClientOpts struct {
	// Factory opens the vendor session, typically wrapping the vendor's
	// native binding. Every call fails with ErrNoSessionFactory without one.
	Factory blp.SessionFactory
	// Session identifies the endpoint sessions connect to.
	Session blp.SessionOptions
	// Service is the vendor service requests are issued against.
	Service string
	// Verbose enables logging of session events and response messages.
	Verbose bool
	Logger  Logger
}

type client struct {
	opts ClientOpts

	dial func(c *client) (blp.Session, error)
}

// NewClient creates a new reference data client using the given opts.
func NewClient(opts ClientOpts) Client {
	if opts.Session.Host == "" {
		opts.Session.Host = os.Getenv("BLPDATA_HOST")
	}
	if opts.Session.Port == 0 {
		if s := os.Getenv("BLPDATA_PORT"); s != "" {
			if p, err := strconv.Atoi(s); err == nil {
				opts.Session.Port = p
			}
		}
	}
	opts.Session = opts.Session.WithDefaults()
	if opts.Service == "" {
		if s := os.Getenv("BLPDATA_SERVICE"); s != "" {
			opts.Service = s
		} else {
			opts.Service = blp.RefDataService
		}
	}
	if opts.Logger == nil {
		opts.Logger = newStdLog()
	}
	return &client{
		opts: opts,

		dial: defaultDial,
	}
}

// DefaultClient uses options from environment variables, or the defaults. A
// session factory must still be configured on a client of your own for calls
// to succeed.
var DefaultClient = NewClient(ClientOpts{})

func defaultDial(c *client) (blp.Session, error) {
	if c.opts.Factory == nil {
		return nil, ErrNoSessionFactory
	}
	return c.opts.Factory(c.opts.Session)
}

// closeSession releases the session. It runs on every exit path of a call;
// a Stop failure is logged but never overrides the call's result.
func (c *client) closeSession(sess blp.Session) {
	if err := sess.Stop(); err != nil {
		c.opts.Logger.Warnf("blpdata: stopping session: %v", err)
	}
}

// newRequest starts the session, opens the configured service and builds a
// request covering the full securities × fields cross product, with the
// overrides applied in sorted key order.
func (c *client) newRequest(
	sess blp.Session, operation string, securities, fields []string, overrides map[string]string,
) (blp.Request, error) {
	if err := sess.Start(); err != nil {
		return nil, err
	}
	if err := sess.OpenService(c.opts.Service); err != nil {
		return nil, err
	}
	svc, err := sess.GetService(c.opts.Service)
	if err != nil {
		return nil, err
	}
	req, err := svc.CreateRequest(operation)
	if err != nil {
		return nil, err
	}
	for _, s := range securities {
		if err := req.Append("securities", s); err != nil {
			return nil, err
		}
	}
	for _, f := range fields {
		if err := req.Append("fields", f); err != nil {
			return nil, err
		}
	}
	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := req.Set(k, overrides[k]); err != nil {
			return nil, err
		}
	}
	return req, nil
}

func (c *client) send(sess blp.Session, req blp.Request) error {
	correlationID := uuid.New()
	if c.opts.Verbose {
		c.opts.Logger.Infof("blpdata: sending request %s", correlationID)
	}
	return sess.SendRequest(req, correlationID)
}

// GetReferenceData issues a reference data request using the default client.
func GetReferenceData(req GetReferenceDataRequest) (*ReferenceTable, error) {
	return DefaultClient.GetReferenceData(req)
}

// GetHistoricalData issues a historical data request using the default client.
func GetHistoricalData(req GetHistoricalDataRequest) (*HistoricalTable, error) {
	return DefaultClient.GetHistoricalData(req)
}
