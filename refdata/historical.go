package refdata

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/marketdatahq/blpdata-go/blp"
)

// GetHistoricalDataRequest contains the parameters of a historical data
// request.
type GetHistoricalDataRequest struct {
	// Securities are the vendor tickers to look up.
	Securities []string
	// Fields are the vendor field mnemonics to look up.
	Fields []string
	// Start is the inclusive beginning of the date range. Required.
	Start civil.Date
	// End is the inclusive end of the date range. If unset, it defaults to
	// the current date at call time.
	End civil.Date
	// Periodicity is the sampling frequency. Defaults to Daily.
	Periodicity Periodicity
	// Overrides are extra request elements set verbatim on the request.
	Overrides map[string]string
}

// GetHistoricalData issues a time-series lookup of the given fields for the
// given securities over the date range. It accumulates both partial and
// terminal response payloads and blocks until the terminal response arrives;
// partial responses never end the call.
func (c *client) GetHistoricalData(req GetHistoricalDataRequest) (*HistoricalTable, error) {
	if !req.Start.IsValid() {
		return nil, ErrStartDateRequired
	}
	if !req.End.IsValid() {
		req.End = civil.DateOf(time.Now())
	}
	if req.Periodicity == "" {
		req.Periodicity = Daily
	}

	sess, err := c.dial(c)
	if err != nil {
		return nil, err
	}
	defer c.closeSession(sess)

	r, err := c.newRequest(sess, "HistoricalDataRequest", req.Securities, req.Fields, req.Overrides)
	if err != nil {
		return nil, err
	}
	if err := r.Set("periodicitySelection", req.Periodicity); err != nil {
		return nil, err
	}
	if err := r.Set("startDate", dateString(req.Start)); err != nil {
		return nil, err
	}
	if err := r.Set("endDate", dateString(req.End)); err != nil {
		return nil, err
	}
	if err := c.send(sess, r); err != nil {
		return nil, err
	}

	table := newHistoricalTable()
	err = c.pollEvents(sess, true, func(msg blp.Message) error {
		return extractHistorical(msg, table)
	})
	if err != nil {
		return nil, err
	}
	if table.IsEmpty() {
		return nil, ErrNoData
	}
	return table, nil
}

// dateString formats a date the way the vendor expects: YYYYMMDD.
func dateString(d civil.Date) string {
	return fmt.Sprintf("%04d%02d%02d", d.Year, int(d.Month), d.Day)
}

// extractHistorical walks one security's fieldData rows into the table. Each
// row carries the date as its first sub-element and one sub-element per
// field after it. Rows for the same security arriving across several partial
// events merge into one series.
func extractHistorical(msg blp.Message, table *HistoricalTable) error {
	securityData, err := msg.GetElement("securityData")
	if err != nil {
		return err
	}
	security, err := securityName(securityData)
	if err != nil {
		return err
	}
	fieldData, err := securityData.GetElement("fieldData")
	if err != nil {
		return err
	}
	for i := 0; i < fieldData.NumValues(); i++ {
		row, err := fieldData.GetValue(i)
		if err != nil {
			return err
		}
		dateEl, err := row.GetElementAt(0)
		if err != nil {
			return err
		}
		date, ok := dateEl.Value().Date()
		if !ok {
			return fmt.Errorf("row date is not a date: %s", dateEl.Value())
		}
		for j := 1; j < row.NumElements(); j++ {
			field, err := row.GetElementAt(j)
			if err != nil {
				return err
			}
			table.add(security, field.Name(), date, field.Value())
		}
	}
	return nil
}
