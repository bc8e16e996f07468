package domain

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Section is one of the fixed project areas tracked for "last visited".
type Section string

const (
	SectionRFIs         Section = "rfis"
	SectionSubmittals   Section = "submittals"
	SectionChangeOrders Section = "change_orders"
	SectionTasks        Section = "tasks"
	SectionDocuments    Section = "documents"
)

// Sections lists every tracked section in display order.
var Sections = []Section{SectionRFIs, SectionSubmittals, SectionChangeOrders, SectionTasks, SectionDocuments}

func (s Section) String() string { return string(s) }

func (s Section) IsValid() bool {
	return slices.Contains(Sections, s)
}

// ReadEntityType is an entity kind that can be individually marked read.
type ReadEntityType string

const (
	ReadEntityRFI         ReadEntityType = "rfi"
	ReadEntitySubmittal   ReadEntityType = "submittal"
	ReadEntityChangeOrder ReadEntityType = "change_order"
	ReadEntityTask        ReadEntityType = "task"
	ReadEntityDocument    ReadEntityType = "document"
)

func (t ReadEntityType) String() string { return string(t) }

func (t ReadEntityType) IsValid() bool {
	_, ok := sectionByEntity[t]
	return ok
}

// Section returns the section whose visits cover entities of this type.
func (t ReadEntityType) Section() Section {
	return sectionByEntity[t]
}

var sectionByEntity = map[ReadEntityType]Section{
	ReadEntityRFI:         SectionRFIs,
	ReadEntitySubmittal:   SectionSubmittals,
	ReadEntityChangeOrder: SectionChangeOrders,
	ReadEntityTask:        SectionTasks,
	ReadEntityDocument:    SectionDocuments,
}

// ItemRef identifies one entity in the read-items set. It is a structured
// key; the flat "{type}_{id}" form exists only in API output.
type ItemRef struct {
	EntityType ReadEntityType
	EntityID   string
}

// FlatKey renders the legacy "{entity_type}_{entity_id}" key.
func (r ItemRef) FlatKey() string {
	return string(r.EntityType) + "_" + r.EntityID
}

// ReadState is a user's read progress within one project. A missing row is
// equivalent to the zero value: nothing visited, nothing read.
type ReadState struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProjectID string
	Visits    map[Section]time.Time
	ReadItems map[ItemRef]time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LastVisit returns the section's visit timestamp, or nil if never visited.
func (s *ReadState) LastVisit(section Section) *time.Time {
	if s == nil {
		return nil
	}
	t, ok := s.Visits[section]
	if !ok {
		return nil
	}
	return &t
}

// ReadAt returns when ref was explicitly marked read.
func (s *ReadState) ReadAt(ref ItemRef) (time.Time, bool) {
	if s == nil {
		return time.Time{}, false
	}
	t, ok := s.ReadItems[ref]
	return t, ok
}

// IsUnread derives whether an entity created at createdAt is unread.
// Precedence: an explicit read mark always wins; otherwise a visit to the
// section at or after createdAt means read; otherwise unread.
func IsUnread(state *ReadState, ref ItemRef, createdAt time.Time, section Section) bool {
	if _, ok := state.ReadAt(ref); ok {
		return false
	}
	visit := state.LastVisit(section)
	if visit != nil && !visit.Before(createdAt) {
		return false
	}
	return true
}

// UnreadCandidate is an entity whose read status is being evaluated.
type UnreadCandidate struct {
	Ref       ItemRef
	CreatedAt time.Time
}

// UnreadResult is the evaluated status of one candidate.
type UnreadResult struct {
	Ref    ItemRef
	Unread bool
}
