package refdata

import (
	"fmt"

	"github.com/marketdatahq/blpdata-go/blp"
)

// GetReferenceDataRequest contains the parameters of a reference data
// request.
type GetReferenceDataRequest struct {
	// Securities are the vendor tickers to look up, e.g. "IBM US Equity".
	Securities []string
	// Fields are the vendor field mnemonics to look up, e.g. "PX_LAST".
	Fields []string
	// Overrides are extra request elements set verbatim on the request.
	Overrides map[string]string
}

// GetReferenceData issues a point-in-time lookup of the given fields for the
// given securities. It blocks until the vendor delivers the terminal
// response. Partial response events are drained and ignored: the reference
// data service carries the complete result on the terminal event.
func (c *client) GetReferenceData(req GetReferenceDataRequest) (*ReferenceTable, error) {
	sess, err := c.dial(c)
	if err != nil {
		return nil, err
	}
	defer c.closeSession(sess)

	r, err := c.newRequest(sess, "ReferenceDataRequest", req.Securities, req.Fields, req.Overrides)
	if err != nil {
		return nil, err
	}
	if err := c.send(sess, r); err != nil {
		return nil, err
	}

	table := newReferenceTable()
	err = c.pollEvents(sess, false, func(msg blp.Message) error {
		return extractReference(msg, table)
	})
	if err != nil {
		return nil, err
	}
	if table.IsEmpty() {
		return nil, ErrNoData
	}
	return table, nil
}

// extractReference walks a response message's securityData array into the
// table: one entry per security, one cell per field under its fieldData.
func extractReference(msg blp.Message, table *ReferenceTable) error {
	securityData, err := msg.GetElement("securityData")
	if err != nil {
		return err
	}
	for i := 0; i < securityData.NumValues(); i++ {
		sec, err := securityData.GetValue(i)
		if err != nil {
			return err
		}
		security, err := securityName(sec)
		if err != nil {
			return err
		}
		fieldData, err := sec.GetElement("fieldData")
		if err != nil {
			return err
		}
		for j := 0; j < fieldData.NumElements(); j++ {
			field, err := fieldData.GetElementAt(j)
			if err != nil {
				return err
			}
			table.add(security, field.Name(), field.Value())
		}
	}
	return nil
}

func securityName(sec blp.Element) (string, error) {
	nameEl, err := sec.GetElement("security")
	if err != nil {
		return "", err
	}
	name, ok := nameEl.Value().AsString()
	if !ok {
		return "", fmt.Errorf("security name is not a string: %s", nameEl.Value())
	}
	return name, nil
}
