package refdata

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/marketdatahq/blpdata-go/blp"
)

// Periodicity selects the sampling frequency of historical data.
type Periodicity = string

// List of periodicities
const (
	Daily        Periodicity = "DAILY"
	Weekly       Periodicity = "WEEKLY"
	Monthly      Periodicity = "MONTHLY"
	Quarterly    Periodicity = "QUARTERLY"
	SemiAnnually Periodicity = "SEMI_ANNUALLY"
	Yearly       Periodicity = "YEARLY"
)

// ReferenceTable is the result of a reference data request: one value per
// security and field. Both axes preserve the order in which the vendor
// returned them.
type ReferenceTable struct {
	securities []string
	fields     []string
	fieldSet   map[string]struct{}
	values     map[string]map[string]blp.Value
}

func newReferenceTable() *ReferenceTable {
	return &ReferenceTable{
		fieldSet: make(map[string]struct{}),
		values:   make(map[string]map[string]blp.Value),
	}
}

func (t *ReferenceTable) add(security, field string, v blp.Value) {
	column, ok := t.values[security]
	if !ok {
		column = make(map[string]blp.Value)
		t.values[security] = column
		t.securities = append(t.securities, security)
	}
	if _, ok := t.fieldSet[field]; !ok {
		t.fieldSet[field] = struct{}{}
		t.fields = append(t.fields, field)
	}
	column[field] = v
}

// Securities returns the security axis.
func (t *ReferenceTable) Securities() []string {
	return append([]string(nil), t.securities...)
}

// Fields returns the field axis.
func (t *ReferenceTable) Fields() []string {
	return append([]string(nil), t.fields...)
}

// Value returns the value of the field for the security. The second return
// value is false if the vendor returned no such cell.
func (t *ReferenceTable) Value(security, field string) (blp.Value, bool) {
	v, ok := t.values[security][field]
	return v, ok
}

// Column returns the field to value mapping of a single security.
func (t *ReferenceTable) Column(security string) map[string]blp.Value {
	column := make(map[string]blp.Value, len(t.values[security]))
	for field, v := range t.values[security] {
		column[field] = v
	}
	return column
}

// IsEmpty reports whether the vendor returned no securities at all.
func (t *ReferenceTable) IsEmpty() bool {
	return len(t.securities) == 0
}

// DataPoint is one dated value of a historical series.
type DataPoint struct {
	Date  civil.Date
	Value blp.Value
}

// HistoricalTable is the result of a historical data request: a time series
// per security and field.
type HistoricalTable struct {
	securities []string
	fields     map[string][]string
	series     map[string]map[string]map[civil.Date]blp.Value
}

func newHistoricalTable() *HistoricalTable {
	return &HistoricalTable{
		fields: make(map[string][]string),
		series: make(map[string]map[string]map[civil.Date]blp.Value),
	}
}

func (t *HistoricalTable) add(security, field string, date civil.Date, v blp.Value) {
	bySecurity, ok := t.series[security]
	if !ok {
		bySecurity = make(map[string]map[civil.Date]blp.Value)
		t.series[security] = bySecurity
		t.securities = append(t.securities, security)
	}
	byField, ok := bySecurity[field]
	if !ok {
		byField = make(map[civil.Date]blp.Value)
		bySecurity[field] = byField
		t.fields[security] = append(t.fields[security], field)
	}
	byField[date] = v
}

// Securities returns the security axis.
func (t *HistoricalTable) Securities() []string {
	return append([]string(nil), t.securities...)
}

// Fields returns the fields the vendor returned for the security.
func (t *HistoricalTable) Fields(security string) []string {
	return append([]string(nil), t.fields[security]...)
}

// Value returns the value of the field for the security on the date. The
// second return value is false if the vendor returned no such cell.
func (t *HistoricalTable) Value(security, field string, date civil.Date) (blp.Value, bool) {
	v, ok := t.series[security][field][date]
	return v, ok
}

// Series returns the date-sorted time series of one security and field.
func (t *HistoricalTable) Series(security, field string) []DataPoint {
	byDate := t.series[security][field]
	points := make([]DataPoint, 0, len(byDate))
	for date, v := range byDate {
		points = append(points, DataPoint{Date: date, Value: v})
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})
	return points
}

// IsEmpty reports whether the vendor returned no securities at all.
func (t *HistoricalTable) IsEmpty() bool {
	return len(t.securities) == 0
}
