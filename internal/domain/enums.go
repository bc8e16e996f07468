package domain

import "unicode/utf8"

// EntityType identifies the kind of business entity an activity event refers
// to. Like ActivityAction the set is open; the constants are the types the
// platform emits today.
type EntityType string

const (
	EntityTypeProject     EntityType = "project"
	EntityTypeTask        EntityType = "task"
	EntityTypeRFI         EntityType = "rfi"
	EntityTypeSubmittal   EntityType = "submittal"
	EntityTypeChangeOrder EntityType = "change_order"
	EntityTypeDocument    EntityType = "document"
	EntityTypeUser        EntityType = "user"
	EntityTypeClient      EntityType = "client"
)

func (e EntityType) String() string { return string(e) }

// MaxEntityTypeLength bounds the stored entity type.
const MaxEntityTypeLength = 50

// FitsColumn reports whether e fits the stored column width.
func (e EntityType) FitsColumn() bool {
	return utf8.RuneCountInString(string(e)) <= MaxEntityTypeLength
}

// ActivityAction is the symbolic tag of an activity event. The set is open:
// the constants below are the actions the platform emits today, but any
// tag that fits the column is accepted.
type ActivityAction string

const (
	ActionProjectCreated ActivityAction = "project_created"
	ActionProjectUpdated ActivityAction = "project_updated"
	ActionProjectDeleted ActivityAction = "project_deleted"

	ActionTaskCreated   ActivityAction = "task_created"
	ActionTaskUpdated   ActivityAction = "task_updated"
	ActionTaskDeleted   ActivityAction = "task_deleted"
	ActionTaskAssigned  ActivityAction = "task_assigned"
	ActionTaskCompleted ActivityAction = "task_completed"

	ActionRFICreated       ActivityAction = "rfi_created"
	ActionRFIUpdated       ActivityAction = "rfi_updated"
	ActionRFIDeleted       ActivityAction = "rfi_deleted"
	ActionRFIAnswered      ActivityAction = "rfi_answered"
	ActionRFIStatusChanged ActivityAction = "rfi_status_changed"

	ActionSubmittalCreated  ActivityAction = "submittal_created"
	ActionSubmittalUpdated  ActivityAction = "submittal_updated"
	ActionSubmittalDeleted  ActivityAction = "submittal_deleted"
	ActionSubmittalReviewed ActivityAction = "submittal_reviewed"

	ActionChangeOrderCreated  ActivityAction = "change_order_created"
	ActionChangeOrderUpdated  ActivityAction = "change_order_updated"
	ActionChangeOrderDeleted  ActivityAction = "change_order_deleted"
	ActionChangeOrderApproved ActivityAction = "change_order_approved"

	ActionDocumentUploaded ActivityAction = "document_uploaded"
	ActionDocumentDeleted  ActivityAction = "document_deleted"

	ActionUserLogin  ActivityAction = "user_login"
	ActionUserLogout ActivityAction = "user_logout"
)

// MaxActionLength bounds the stored action tag.
const MaxActionLength = 100

func (a ActivityAction) String() string { return string(a) }

// FitsColumn reports whether a fits the stored column width.
func (a ActivityAction) FitsColumn() bool {
	return utf8.RuneCountInString(string(a)) <= MaxActionLength
}

// UserRole represents the authorization level of a user.
type UserRole string

const (
	UserRoleUser           UserRole = "user"
	UserRoleForeman        UserRole = "foreman"
	UserRoleSuperintendent UserRole = "superintendent"
	UserRoleProjectManager UserRole = "project-manager"
	UserRoleAdmin          UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleForeman, UserRoleSuperintendent, UserRoleProjectManager, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}
