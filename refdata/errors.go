package refdata

import "errors"

var (
	// ErrNoData is returned when a request completed but yielded an empty
	// result. It usually means the securities or fields were not valid
	// vendor identifiers.
	ErrNoData = errors.New("no data in response: check that securities and fields are valid")
	// ErrNoSessionFactory is returned when a client is used without a
	// configured session factory.
	ErrNoSessionFactory = errors.New("no session factory configured")
	// ErrStartDateRequired is returned by GetHistoricalData when the start
	// date is missing.
	ErrStartDateRequired = errors.New("start date is required")
)
