package http

import (
	"time"

	"daily-three/internal/task"
)

// --- Request DTOs ---

type createReq struct {
	Title string `json:"title" binding:"required"`
}

func (r createReq) validate() error { return nil }

func (r createReq) toInput(client task.ClientContext) task.CreateInput {
	return task.CreateInput{Client: client, Title: r.Title}
}

// ---

type updateReq struct {
	ID    string `json:"-"` // populated from URI param
	Title string `json:"title" binding:"required"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput(client task.ClientContext) task.UpdateTitleInput {
	return task.UpdateTitleInput{Client: client, ID: r.ID, Title: r.Title}
}

// ---

type reorderReq struct {
	ActiveID string `json:"active_id" binding:"required"`
	OverID   string `json:"over_id"   binding:"required"`
}

func (r reorderReq) validate() error { return nil }

func (r reorderReq) toInput(client task.ClientContext) task.ReorderInput {
	return task.ReorderInput{Client: client, ActiveID: r.ActiveID, OverID: r.OverID}
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Position    int        `json:"position"`
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func newTaskResp(t task.Task) taskResp {
	return taskResp{
		ID:          t.ID,
		Title:       t.Title,
		Position:    t.Position,
		Completed:   t.Completed,
		CompletedAt: t.CompletedAt,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

type taskViewResp struct {
	taskResp
	DaysOld int    `json:"days_old"`
	Overdue bool   `json:"overdue"`
	Badge   string `json:"badge,omitempty"`
}

func newTaskViewResps(views []task.TaskView) []taskViewResp {
	out := make([]taskViewResp, len(views))
	for i, v := range views {
		out[i] = taskViewResp{
			taskResp: newTaskResp(v.Task),
			DaysOld:  v.DaysOld,
			Overdue:  v.Overdue,
			Badge:    string(v.Badge),
		}
	}
	return out
}

type boardResp struct {
	Incomplete []taskViewResp `json:"incomplete"`
	Completed  []taskViewResp `json:"completed"`
	CanAdd     bool           `json:"can_add"`
	Theme      string         `json:"theme"`
	ResetRan   bool           `json:"reset_ran"`
}

func newBoardResp(b task.Board) boardResp {
	return boardResp{
		Incomplete: newTaskViewResps(b.Incomplete),
		Completed:  newTaskViewResps(b.Completed),
		CanAdd:     b.CanAdd,
		Theme:      string(b.Theme),
		ResetRan:   b.ResetRan,
	}
}

func (h *handler) newListResp(out task.ListOutput) boardResp {
	return newBoardResp(out.Board)
}

type createResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newCreateResp(out task.CreateOutput) createResp {
	return createResp{Task: newTaskResp(out.Task)}
}

type updateResp struct {
	Task    taskResp `json:"task"`
	Changed bool     `json:"changed"`
}

func (h *handler) newUpdateResp(out task.UpdateTitleOutput) updateResp {
	return updateResp{Task: newTaskResp(out.Task), Changed: out.Changed}
}

type toggleResp struct {
	Task taskResp `json:"task"`
}

func (h *handler) newToggleResp(out task.ToggleOutput) toggleResp {
	return toggleResp{Task: newTaskResp(out.Task)}
}

type reorderResp struct {
	Moved bool       `json:"moved"`
	Order []taskResp `json:"order"`
}

func (h *handler) newReorderResp(out task.ReorderOutput) reorderResp {
	order := make([]taskResp, len(out.Order))
	for i, t := range out.Order {
		order[i] = newTaskResp(t)
	}
	return reorderResp{Moved: out.Moved, Order: order}
}

type dailyResetResp struct {
	Ran        bool     `json:"ran"`
	DeletedIDs []string `json:"deleted_ids"`
}

func (h *handler) newDailyResetResp(out task.DailyResetOutput) dailyResetResp {
	ids := out.DeletedIDs
	if ids == nil {
		ids = []string{}
	}
	return dailyResetResp{Ran: out.Ran, DeletedIDs: ids}
}

// --- Stream payloads ---

type themeEventResp struct {
	Theme string `json:"theme"`
}

type errorEventResp struct {
	Message string `json:"message"`
}

func (h *handler) newEventPayload(ev task.Event) any {
	switch ev.Type {
	case task.EventSnapshot:
		return newBoardResp(ev.Board)
	case task.EventTheme:
		return themeEventResp{Theme: string(ev.Theme)}
	case task.EventError:
		return errorEventResp{Message: "failed to load tasks"}
	default:
		return struct{}{}
	}
}
