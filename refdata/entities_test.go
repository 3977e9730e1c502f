package refdata

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketdatahq/blpdata-go/blp"
)

func TestReferenceTableOrder(t *testing.T) {
	table := newReferenceTable()
	table.add("GOOG US Equity", "NAME", blp.NewValue("ALPHABET INC-CL C"))
	table.add("C US Equity", "NAME", blp.NewValue("CITIGROUP INC"))
	table.add("C US Equity", "PX_LAST", blp.NewValue(61.45))
	// overwriting a cell must not duplicate the axes
	table.add("C US Equity", "PX_LAST", blp.NewValue(61.50))

	assert.Equal(t, []string{"GOOG US Equity", "C US Equity"}, table.Securities())
	assert.Equal(t, []string{"NAME", "PX_LAST"}, table.Fields())

	v, ok := table.Value("C US Equity", "PX_LAST")
	require.True(t, ok)
	f, ok := v.Float64()
	require.True(t, ok)
	assert.Equal(t, 61.50, f)

	_, ok = table.Value("GOOG US Equity", "PX_LAST")
	assert.False(t, ok)
}

func TestReferenceTableColumnIsACopy(t *testing.T) {
	table := newReferenceTable()
	table.add("C US Equity", "PX_LAST", blp.NewValue(61.45))

	column := table.Column("C US Equity")
	column["PX_LAST"] = blp.NewValue(0.0)

	v, _ := table.Value("C US Equity", "PX_LAST")
	f, _ := v.Float64()
	assert.Equal(t, 61.45, f)
}

func TestHistoricalTableSeriesSorted(t *testing.T) {
	jan2 := civil.Date{Year: 2024, Month: time.January, Day: 2}
	jan3 := civil.Date{Year: 2024, Month: time.January, Day: 3}
	jan4 := civil.Date{Year: 2024, Month: time.January, Day: 4}

	table := newHistoricalTable()
	table.add("C US Equity", "PX_LAST", jan4, blp.NewValue(62.55))
	table.add("C US Equity", "PX_LAST", jan2, blp.NewValue(61.45))
	table.add("C US Equity", "PX_LAST", jan3, blp.NewValue(62.10))

	series := table.Series("C US Equity", "PX_LAST")
	require.Len(t, series, 3)
	assert.Equal(t, jan2, series[0].Date)
	assert.Equal(t, jan3, series[1].Date)
	assert.Equal(t, jan4, series[2].Date)
}

func TestHistoricalTableAxes(t *testing.T) {
	jan2 := civil.Date{Year: 2024, Month: time.January, Day: 2}

	table := newHistoricalTable()
	assert.True(t, table.IsEmpty())

	table.add("C US Equity", "PX_LAST", jan2, blp.NewValue(61.45))
	table.add("C US Equity", "BEST_TARGET_PRICE", jan2, blp.NewValue(70.0))
	table.add("GOOG US Equity", "PX_LAST", jan2, blp.NewValue(178.02))

	assert.False(t, table.IsEmpty())
	assert.Equal(t, []string{"C US Equity", "GOOG US Equity"}, table.Securities())
	assert.Equal(t, []string{"PX_LAST", "BEST_TARGET_PRICE"}, table.Fields("C US Equity"))
	assert.Equal(t, []string{"PX_LAST"}, table.Fields("GOOG US Equity"))
	assert.Empty(t, table.Series("GOOG US Equity", "BEST_TARGET_PRICE"))
}
