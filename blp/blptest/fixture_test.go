package blptest

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdatahq/blpdata-go/blp"
)

func TestLoadEventFile(t *testing.T) {
	events, err := LoadEventFile("testdata/historical_script.json")
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, blp.EventTypePartialResponse, events[0].Type())
	assert.Equal(t, blp.EventTypeResponse, events[1].Type())

	it := events[0].Messages()
	require.True(t, it.Next())
	msg := it.Message()
	assert.Equal(t, "HistoricalDataResponse", msg.MessageType())

	securityData, err := msg.GetElement("securityData")
	require.NoError(t, err)
	fieldData, err := securityData.GetElement("fieldData")
	require.NoError(t, err)
	require.Equal(t, 1, fieldData.NumValues())
	row, err := fieldData.GetValue(0)
	require.NoError(t, err)

	dateEl, err := row.GetElementAt(0)
	require.NoError(t, err)
	date, ok := dateEl.Value().Date()
	require.True(t, ok)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 2}, date)

	px, err := row.GetElement("PX_LAST")
	require.NoError(t, err)
	f, ok := px.Value().Float64()
	require.True(t, ok)
	assert.Equal(t, 61.45, f)
}

func TestLoadEventFile_Missing(t *testing.T) {
	_, err := LoadEventFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestLoadEventFile_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	_, err := LoadEventFile(path)
	require.Error(t, err)
}
