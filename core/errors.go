package core

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrReservedEvent is returned when Emit is called with one of the
	// reserved subscription names (Every, Proxy).
	ErrReservedEvent = errors.New("busbar: cannot emit reserved event")

	// ErrUnhandledEvent is returned when an emitted event reaches no
	// listener and the bus is configured to treat that as a failure.
	ErrUnhandledEvent = errors.New("busbar: unhandled event")
)

// ReservedEventError reports an attempt to emit a reserved subscription
// name. It matches ErrReservedEvent under errors.Is.
type ReservedEventError struct {
	Event string
}

func (e *ReservedEventError) Error() string {
	return fmt.Sprintf("busbar: cannot emit reserved event %q", e.Event)
}

func (e *ReservedEventError) Is(target error) bool {
	return target == ErrReservedEvent
}

// UnhandledEventError reports an event that reached no listener on a bus
// that disallows unhandled events. It matches ErrUnhandledEvent under
// errors.Is. Payload carries the emitted payload serialized for diagnostics.
type UnhandledEventError struct {
	Bus     string
	Event   string
	Payload string
}

func (e *UnhandledEventError) Error() string {
	return fmt.Sprintf("busbar: unhandled event %q on bus %q (payload: %s)", e.Event, e.Bus, e.Payload)
}

func (e *UnhandledEventError) Is(target error) bool {
	return target == ErrUnhandledEvent
}

// serializePayload renders a payload for diagnostics. JSON when the payload
// marshals, a fmt rendering otherwise.
func serializePayload(payload any) string {
	if payload == nil {
		return "null"
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Sprintf("%+v", payload)
	}
	return string(b)
}
