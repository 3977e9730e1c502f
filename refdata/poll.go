package refdata

import "github.com/marketdatahq/blpdata-go/blp"

// pollEvents drains session events until the terminal RESPONSE event. Every
// response payload is handed to extract; PARTIAL_RESPONSE payloads only when
// acceptPartial is set. All other event kinds are drained and discarded. The
// loop deliberately has no timeout or iteration bound: delivery pacing is
// the vendor's.
func (c *client) pollEvents(sess blp.Session, acceptPartial bool, extract func(blp.Message) error) error {
	for {
		event, err := sess.NextEvent()
		if err != nil {
			return err
		}
		eventType := event.Type()
		if c.opts.Verbose {
			c.opts.Logger.Infof("blpdata: event %s", eventType)
		}
		// Only the first message of each event is read; the refdata
		// service delivers one message per event.
		it := event.Messages()
		if !it.Next() {
			if eventType == blp.EventTypeResponse {
				return nil
			}
			continue
		}
		msg := it.Message()
		if c.opts.Verbose {
			c.opts.Logger.Infof("blpdata: message %s", msg.MessageType())
		}
		switch eventType {
		case blp.EventTypePartialResponse:
			if !acceptPartial {
				continue
			}
			if err := extract(msg); err != nil {
				return err
			}
		case blp.EventTypeResponse:
			if err := extract(msg); err != nil {
				return err
			}
			return nil
		}
	}
}
