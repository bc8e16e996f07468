package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// PayloadKind names the shape of an event's structured payload.
type PayloadKind string

const (
	PayloadKindStatusChange PayloadKind = "status_change"
	PayloadKindAssignment   PayloadKind = "assignment"
	PayloadKindFieldChanges PayloadKind = "field_changes"
	PayloadKindRaw          PayloadKind = "raw"
)

// Payload is the optional structured data attached to an activity event.
// Known actions decode into a typed variant; anything else is kept as a
// RawPayload so events written by newer producers survive a round trip.
type Payload interface {
	Kind() PayloadKind
}

// StatusChangePayload records a workflow transition.
type StatusChangePayload struct {
	From string `json:"from,omitempty"`
	To   string `json:"to"`
}

func (StatusChangePayload) Kind() PayloadKind { return PayloadKindStatusChange }

// AssignmentPayload records who an item was handed to.
type AssignmentPayload struct {
	AssigneeID         string `json:"assignee_id"`
	AssigneeName       string `json:"assignee_name,omitempty"`
	PreviousAssigneeID string `json:"previous_assignee_id,omitempty"`
}

func (AssignmentPayload) Kind() PayloadKind { return PayloadKindAssignment }

// FieldChange is the before/after value of one edited field.
type FieldChange struct {
	Old any `json:"old"`
	New any `json:"new"`
}

// FieldChangesPayload records the fields touched by an update.
type FieldChangesPayload struct {
	Changes map[string]FieldChange `json:"changes"`
}

func (FieldChangesPayload) Kind() PayloadKind { return PayloadKindFieldChanges }

// RawPayload is the open key/value fallback.
type RawPayload map[string]any

func (RawPayload) Kind() PayloadKind { return PayloadKindRaw }

// PayloadKindFor returns the payload shape expected for an action.
func PayloadKindFor(action ActivityAction) PayloadKind {
	switch action {
	case ActionTaskAssigned:
		return PayloadKindAssignment
	case ActionRFIAnswered, ActionTaskCompleted, ActionSubmittalReviewed, ActionChangeOrderApproved:
		return PayloadKindStatusChange
	}

	a := string(action)
	switch {
	case strings.HasSuffix(a, "_status_changed"):
		return PayloadKindStatusChange
	case strings.HasSuffix(a, "_updated"):
		return PayloadKindFieldChanges
	}
	return PayloadKindRaw
}

// EncodePayload serializes p for storage. A nil payload encodes to nil.
func EncodePayload(p Payload) ([]byte, error) {
	if p == nil {
		return nil, nil
	}
	b, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode %s payload: %w", p.Kind(), err)
	}
	return b, nil
}

// DecodePayload parses stored or client-supplied JSON into the variant
// expected for action. Data that does not fit the typed shape is returned
// as a RawPayload rather than rejected.
func DecodePayload(action ActivityAction, data []byte) (Payload, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, nil
	}

	switch PayloadKindFor(action) {
	case PayloadKindStatusChange:
		var p StatusChangePayload
		if strictDecode(data, &p) && p.To != "" {
			return p, nil
		}
	case PayloadKindAssignment:
		var p AssignmentPayload
		if strictDecode(data, &p) && p.AssigneeID != "" {
			return p, nil
		}
	case PayloadKindFieldChanges:
		var p FieldChangesPayload
		if strictDecode(data, &p) && len(p.Changes) > 0 {
			return p, nil
		}
	}

	raw := RawPayload{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode payload for %s: %w", action, err)
	}
	if len(raw) == 0 {
		return nil, nil
	}
	return raw, nil
}

// PayloadFromMap builds a payload from loosely typed input such as a JSON
// request body.
func PayloadFromMap(action ActivityAction, m map[string]any) (Payload, error) {
	if len(m) == 0 {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return DecodePayload(action, b)
}

func strictDecode(data []byte, v any) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v) == nil
}
