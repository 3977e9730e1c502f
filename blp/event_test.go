package blp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventTypeString(t *testing.T) {
	assert.Equal(t, "RESPONSE", EventTypeResponse.String())
	assert.Equal(t, "PARTIAL_RESPONSE", EventTypePartialResponse.String())
	assert.Equal(t, "UNKNOWN", EventTypeUnknown.String())
	assert.Equal(t, "EventType(42)", EventType(42).String())
}

func TestSessionOptionsWithDefaults(t *testing.T) {
	opts := SessionOptions{}.WithDefaults()
	assert.Equal(t, SessionOptions{Host: "localhost", Port: 8194}, opts)

	opts = SessionOptions{Host: "bbgateway", Port: 9000}.WithDefaults()
	assert.Equal(t, SessionOptions{Host: "bbgateway", Port: 9000}, opts)
}
