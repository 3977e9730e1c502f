package refdata

import (
	"fmt"
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdatahq/blpdata-go/blp"
)

func TestSMA(t *testing.T) {
	ind := NewIndicators(IndicatorsOpts{}).(*indicators)
	start := civil.Date{Year: 2024, Month: time.January, Day: 2}
	end := civil.Date{Year: 2024, Month: time.January, Day: 5}
	ind.getHistoricalData = func(req GetHistoricalDataRequest) (*HistoricalTable, error) {
		assert.Equal(t, []string{"C US Equity"}, req.Securities)
		assert.Equal(t, []string{"PX_LAST"}, req.Fields)
		assert.Equal(t, start, req.Start)
		assert.Equal(t, end, req.End)
		table := newHistoricalTable()
		for day, px := range map[int]float64{2: 10, 3: 20, 4: 30, 5: 40} {
			date := civil.Date{Year: 2024, Month: time.January, Day: day}
			table.add("C US Equity", "PX_LAST", date, blp.NewValue(px))
		}
		return table, nil
	}
	got, err := ind.SMA("C US Equity", "PX_LAST", SMAParams{Start: start, End: end, Window: 2})
	require.NoError(t, err)
	require.Len(t, got, 3)
	for i, want := range []float64{15, 25, 35} {
		f, ok := got[i].Value.Float64()
		require.True(t, ok)
		assert.Equal(t, want, f)
	}
	assert.Equal(t, civil.Date{Year: 2024, Month: time.January, Day: 3}, got[0].Date)

	t.Run("window too large", func(t *testing.T) {
		got, err := ind.SMA("C US Equity", "PX_LAST", SMAParams{Start: start, End: end, Window: 5})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("invalid window", func(t *testing.T) {
		_, err := ind.SMA("C US Equity", "PX_LAST", SMAParams{Start: start, End: end})
		require.Error(t, err)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		ind.getHistoricalData = func(req GetHistoricalDataRequest) (*HistoricalTable, error) {
			table := newHistoricalTable()
			table.add("C US Equity", "NAME", start, blp.NewValue("CITIGROUP INC"))
			return table, nil
		}
		_, err := ind.SMA("C US Equity", "NAME", SMAParams{Start: start, End: end, Window: 2})
		require.Error(t, err)
	})

	t.Run("error", func(t *testing.T) {
		ind.getHistoricalData = func(req GetHistoricalDataRequest) (*HistoricalTable, error) {
			return nil, fmt.Errorf("something went wrong")
		}
		got, err := ind.SMA("C US Equity", "PX_LAST", SMAParams{Start: start, End: end, Window: 2})
		require.Error(t, err)
		assert.Nil(t, got)
	})
}
