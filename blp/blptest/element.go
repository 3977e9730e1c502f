// Package blptest provides in-memory implementations of the blp interfaces:
// element tree builders, canned messages and events, and a session that
// replays a scripted event sequence while recording everything a client does
// to it.
package blptest

import (
	"fmt"

	"github.com/marketdatahq/blpdata-go/blp"
)

// Element is a buildable blp.Element.
type Element struct {
	name     string
	value    blp.Value
	children []*Element
	members  []*Element
}

var _ blp.Element = (*Element)(nil)

// Scalar returns a leaf element carrying the given raw value.
func Scalar(name string, v interface{}) *Element {
	return &Element{name: name, value: blp.NewValue(v)}
}

// Complex returns an element with named sub-elements.
func Complex(name string, children ...*Element) *Element {
	return &Element{name: name, children: children}
}

// Array returns an array element with the given members.
func Array(name string, members ...*Element) *Element {
	return &Element{name: name, members: members}
}

func (e *Element) Name() string { return e.name }

func (e *Element) Value() blp.Value { return e.value }

func (e *Element) NumValues() int { return len(e.members) }

func (e *Element) GetValue(i int) (blp.Element, error) {
	if i < 0 || i >= len(e.members) {
		return nil, fmt.Errorf("blptest: element %q has no value %d", e.name, i)
	}
	return e.members[i], nil
}

func (e *Element) NumElements() int { return len(e.children) }

func (e *Element) GetElement(name string) (blp.Element, error) {
	for _, c := range e.children {
		if c.name == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("blptest: element %q has no sub-element %q", e.name, name)
}

func (e *Element) GetElementAt(i int) (blp.Element, error) {
	if i < 0 || i >= len(e.children) {
		return nil, fmt.Errorf("blptest: element %q has no sub-element %d", e.name, i)
	}
	return e.children[i], nil
}

// Message is a buildable blp.Message.
type Message struct {
	Type     string
	Elements []*Element
}

var _ blp.Message = (*Message)(nil)

func (m *Message) MessageType() string { return m.Type }

func (m *Message) GetElement(name string) (blp.Element, error) {
	for _, e := range m.Elements {
		if e.name == name {
			return e, nil
		}
	}
	return nil, fmt.Errorf("blptest: message %q has no element %q", m.Type, name)
}

// Event is a buildable blp.Event.
type Event struct {
	EventType blp.EventType
	Msgs      []*Message
}

var _ blp.Event = (*Event)(nil)

func (e *Event) Type() blp.EventType { return e.EventType }

func (e *Event) Messages() blp.MessageIterator {
	return &messageIterator{msgs: e.Msgs, idx: -1}
}

type messageIterator struct {
	msgs []*Message
	idx  int
}

func (it *messageIterator) Next() bool {
	if it.idx+1 >= len(it.msgs) {
		return false
	}
	it.idx++
	return true
}

func (it *messageIterator) Message() blp.Message { return it.msgs[it.idx] }
