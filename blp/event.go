package blp

import "fmt"

// EventType is the integer kind tag the vendor session attaches to every
// event it emits. Only Response and PartialResponse events carry request
// payload; everything else is session housekeeping.
type EventType int

// The vendor's event type codes.
const (
	EventTypeUnknown             EventType = -1
	EventTypeAdmin               EventType = 1
	EventTypeSessionStatus       EventType = 2
	EventTypeSubscriptionStatus  EventType = 3
	EventTypeRequestStatus       EventType = 4
	EventTypeResponse            EventType = 5
	EventTypePartialResponse     EventType = 6
	EventTypeSubscriptionData    EventType = 8
	EventTypeServiceStatus       EventType = 9
	EventTypeTimeout             EventType = 10
	EventTypeAuthorizationStatus EventType = 11
	EventTypeResolutionStatus    EventType = 12
	EventTypePublishingData      EventType = 13
	EventTypeTopicStatus         EventType = 14
	EventTypeTokenStatus         EventType = 15
)

var eventTypeNames = map[EventType]string{
	EventTypeUnknown:             "UNKNOWN",
	EventTypeAdmin:               "ADMIN",
	EventTypeSessionStatus:       "SESSION_STATUS",
	EventTypeSubscriptionStatus:  "SUBSCRIPTION_STATUS",
	EventTypeRequestStatus:       "REQUEST_STATUS",
	EventTypeResponse:            "RESPONSE",
	EventTypePartialResponse:     "PARTIAL_RESPONSE",
	EventTypeSubscriptionData:    "SUBSCRIPTION_DATA",
	EventTypeServiceStatus:       "SERVICE_STATUS",
	EventTypeTimeout:             "TIMEOUT",
	EventTypeAuthorizationStatus: "AUTHORIZATION_STATUS",
	EventTypeResolutionStatus:    "RESOLUTION_STATUS",
	EventTypePublishingData:      "PUBLISHING_DATA",
	EventTypeTopicStatus:         "TOPIC_STATUS",
	EventTypeTokenStatus:         "TOKEN_STATUS",
}

func (t EventType) String() string {
	if name, ok := eventTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// Event is a unit of asynchronous delivery from the vendor session.
type Event interface {
	// Type returns the kind tag of the event.
	Type() EventType
	// Messages returns an iterator over the messages carried by the event.
	Messages() MessageIterator
}

// MessageIterator iterates over the messages of a single event.
type MessageIterator interface {
	// Next advances the iterator. It returns false when there are no more
	// messages.
	Next() bool
	// Message returns the current message. It is only valid after a Next
	// call that returned true.
	Message() Message
}

// Message is the payload carried by an event, a tree of named elements.
type Message interface {
	// MessageType returns the vendor's name for the message, e.g.
	// "ReferenceDataResponse".
	MessageType() string
	// GetElement returns the named top-level element of the message.
	GetElement(name string) (Element, error)
}

// Element is a node of a message's payload tree. An element is either a
// scalar carrying a Value, a complex element with named sub-elements, or an
// array whose members are accessed by index.
type Element interface {
	// Name returns the element's name.
	Name() string
	// Value returns the scalar payload of a leaf element. For complex and
	// array elements it returns the zero Value.
	Value() Value
	// NumValues returns the number of members of an array element.
	NumValues() int
	// GetValue returns the i-th member of an array element.
	GetValue(i int) (Element, error)
	// NumElements returns the number of sub-elements of a complex element.
	NumElements() int
	// GetElement returns the named sub-element of a complex element.
	GetElement(name string) (Element, error)
	// GetElementAt returns the i-th sub-element of a complex element.
	GetElementAt(i int) (Element, error)
}
