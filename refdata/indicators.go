package refdata

import (
	"fmt"

	"cloud.google.com/go/civil"
	movingaverage "github.com/RobinUS2/golang-moving-average"

	"github.com/marketdatahq/blpdata-go/blp"
)

// TechnicalIndicators can be used to calculate technical indicators.
type TechnicalIndicators interface {
	// SMA calculates the simple moving average of a field's time series.
	SMA(security, field string, params SMAParams) ([]DataPoint, error)
}

// SMAParams contains parameters for calculating a simple moving average.
type SMAParams struct {
	// Start is the inclusive beginning of the interval
	Start civil.Date
	// End is the inclusive end of the interval
	End civil.Date
	// Periodicity is the sampling frequency of the underlying series.
	Periodicity Periodicity
	// Window is the number of points averaged per output point.
	Window int
}

type indicators struct {
	c Client

	// mockable functions
	getHistoricalData func(req GetHistoricalDataRequest) (*HistoricalTable, error)
}

type IndicatorsOpts struct {
	Client Client
}

func NewIndicators(opts IndicatorsOpts) TechnicalIndicators {
	c := opts.Client
	if c == nil {
		c = DefaultClient
	}
	return &indicators{
		c:                 c,
		getHistoricalData: c.GetHistoricalData,
	}
}

// Indicators can be used to query technical indicators using the default client.
var Indicators = NewIndicators(IndicatorsOpts{})

// SMA calculates the simple moving average of a field's time series. The
// first output point appears once the window is filled.
func (i *indicators) SMA(security, field string, params SMAParams) ([]DataPoint, error) {
	if params.Window < 1 {
		return nil, fmt.Errorf("sma window must be positive, got %d", params.Window)
	}
	table, err := i.getHistoricalData(GetHistoricalDataRequest{
		Securities:  []string{security},
		Fields:      []string{field},
		Start:       params.Start,
		End:         params.End,
		Periodicity: params.Periodicity,
	})
	if err != nil {
		return nil, err
	}
	ma := movingaverage.New(params.Window)
	var smoothed []DataPoint
	for _, point := range table.Series(security, field) {
		f, ok := point.Value.Float64()
		if !ok {
			return nil, fmt.Errorf("field %s is not numeric on %s: %s", field, point.Date, point.Value)
		}
		ma.Add(f)
		if ma.SlotsFilled() {
			smoothed = append(smoothed, DataPoint{Date: point.Date, Value: blp.NewValue(ma.Avg())})
		}
	}
	return smoothed, nil
}
