package task

import "time"

const (
	// MaxActiveTasks is the cap on non-deleted incomplete tasks per user.
	MaxActiveTasks = 3
	// MaxTitleLength is measured in runes after trimming.
	MaxTitleLength = 100
	// DefaultDeviceID scopes the reset marker when the client sends no device id.
	DefaultDeviceID = "default"
)

// Task is a single to-do owned by one user.
type Task struct {
	ID          string
	OwnerID     string
	Title       string
	Position    int
	Completed   bool
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Deleted     bool
}

// --- Store mutations ---

type MutationKind int

const (
	MutationCreate MutationKind = iota + 1
	MutationUpdate
)

// Mutation is one per-task change applied inside a store transaction.
// Nil fields of an update are left untouched.
type Mutation struct {
	Kind        MutationKind
	TaskID      string
	Title       *string
	Position    *int
	Completed   *bool
	CompletedAt *time.Time
	Deleted     bool
	At          time.Time
}

// NewCreateMutation builds the insert of a fresh incomplete task.
func NewCreateMutation(id, title string, position int, at time.Time) Mutation {
	return Mutation{Kind: MutationCreate, TaskID: id, Title: &title, Position: &position, At: at}
}

// NewPositionMutation moves a task to position.
func NewPositionMutation(id string, position int, at time.Time) Mutation {
	return Mutation{Kind: MutationUpdate, TaskID: id, Position: &position, At: at}
}

// NewTitleMutation renames a task.
func NewTitleMutation(id, title string, at time.Time) Mutation {
	return Mutation{Kind: MutationUpdate, TaskID: id, Title: &title, At: at}
}

// NewSoftDeleteMutation marks a task deleted.
func NewSoftDeleteMutation(id string, at time.Time) Mutation {
	return Mutation{Kind: MutationUpdate, TaskID: id, Deleted: true, At: at}
}

// NewCompletionMutation flips completion and places the task at position in its new partition.
// completedAt is only written when non-nil.
func NewCompletionMutation(id string, completed bool, completedAt *time.Time, position int, at time.Time) Mutation {
	return Mutation{
		Kind:        MutationUpdate,
		TaskID:      id,
		Completed:   &completed,
		CompletedAt: completedAt,
		Position:    &position,
		At:          at,
	}
}

// Snapshot is one delivery of a live query. Err is set when the query failed.
type Snapshot struct {
	Tasks []Task
	Err   error
}

// --- Derived view ---

type Theme string

const (
	ThemeMorning   Theme = "morning"
	ThemeAfternoon Theme = "afternoon"
	ThemeEvening   Theme = "evening"
	ThemeNight     Theme = "night"
)

type Badge string

const (
	BadgeNone                    Badge = ""
	BadgeDueYesterday            Badge = "due_yesterday"
	BadgeSelfDestructsAtMidnight Badge = "self_destructs_at_midnight"
)

// TaskView is a task annotated with its age on the caller's calendar.
type TaskView struct {
	Task
	DaysOld int
	Overdue bool
	Badge   Badge
}

// Board is what a client renders: both partitions plus the ambient state.
type Board struct {
	Incomplete []TaskView
	Completed  []TaskView
	CanAdd     bool
	Theme      Theme
	ResetRan   bool
}

// ClientContext identifies the device and calendar a request is evaluated on.
type ClientContext struct {
	DeviceID string
	Timezone string
}

// --- UseCase Inputs ---

type ListInput struct {
	Client ClientContext
}

type CreateInput struct {
	Client ClientContext
	Title  string
}

type UpdateTitleInput struct {
	Client ClientContext
	ID     string
	Title  string
}

type ToggleInput struct {
	Client ClientContext
	ID     string
}

type DeleteInput struct {
	Client ClientContext
	ID     string
}

type ReorderInput struct {
	Client   ClientContext
	ActiveID string
	OverID   string
}

type DailyResetInput struct {
	Client ClientContext
}

type WatchInput struct {
	Client ClientContext
}

// --- UseCase Outputs ---

type ListOutput struct {
	Board Board
}

type CreateOutput struct {
	Task Task
}

type UpdateTitleOutput struct {
	Task    Task
	Changed bool
}

type ToggleOutput struct {
	Task Task
}

type ReorderOutput struct {
	Moved bool
	// Order is the optimistic partition order after the move.
	Order []Task
}

type DailyResetOutput struct {
	Ran        bool
	DeletedIDs []string
}

// --- Watch events ---

type EventType string

const (
	EventSnapshot  EventType = "snapshot"
	EventCelebrate EventType = "celebrate"
	EventTheme     EventType = "theme"
	EventError     EventType = "error"
)

// Event is one item of a Watch stream.
type Event struct {
	Type  EventType
	Board Board
	Theme Theme
	Err   error
}
