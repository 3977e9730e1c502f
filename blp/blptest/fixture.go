package blptest

import (
	"encoding/json"
	"fmt"
	"os"

	"cloud.google.com/go/civil"

	"github.com/marketdatahq/blpdata-go/blp"
)

type jsonEvent struct {
	EventType int           `json:"eventType"`
	Messages  []jsonMessage `json:"messages"`
}

type jsonMessage struct {
	MessageType string        `json:"messageType"`
	Elements    []jsonElement `json:"elements"`
}

// jsonElement is one node of a fixture tree. Exactly one of Value, Date,
// Elements or Values is expected to be present; a bare name yields a scalar
// with a nil value.
type jsonElement struct {
	Name     string        `json:"name"`
	Value    interface{}   `json:"value,omitempty"`
	Date     *civil.Date   `json:"date,omitempty"`
	Elements []jsonElement `json:"elements,omitempty"`
	Values   []jsonElement `json:"values,omitempty"`
}

// LoadEventFile loads a scripted event sequence from a JSON fixture file.
func LoadEventFile(path string) ([]blp.Event, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []jsonEvent
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, fmt.Errorf("blptest: parsing %s: %w", path, err)
	}
	events := make([]blp.Event, 0, len(raw))
	for _, e := range raw {
		event := &Event{EventType: blp.EventType(e.EventType)}
		for _, m := range e.Messages {
			msg := &Message{Type: m.MessageType}
			for _, el := range m.Elements {
				msg.Elements = append(msg.Elements, buildElement(el))
			}
			event.Msgs = append(event.Msgs, msg)
		}
		events = append(events, event)
	}
	return events, nil
}

func buildElement(e jsonElement) *Element {
	switch {
	case len(e.Values) > 0:
		members := make([]*Element, 0, len(e.Values))
		for _, m := range e.Values {
			members = append(members, buildElement(m))
		}
		return Array(e.Name, members...)
	case len(e.Elements) > 0:
		children := make([]*Element, 0, len(e.Elements))
		for _, c := range e.Elements {
			children = append(children, buildElement(c))
		}
		return Complex(e.Name, children...)
	case e.Date != nil:
		return Scalar(e.Name, *e.Date)
	default:
		return Scalar(e.Name, e.Value)
	}
}
