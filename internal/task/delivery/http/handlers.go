package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/internal/task"
	"daily-three/pkg/response"
)

// List godoc
// @Summary     Load the task board
// @Description Returns both partitions ordered by position. Runs the daily reset first when it is due for this device.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       X-Device-ID header string false "Device scope of the reset marker"
// @Param       X-Timezone  header string false "IANA timezone of the client"
// @Success     200 {object} boardResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.List(ctx, sc, task.ListInput{Client: h.processClient(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Create godoc
// @Summary     Add a task
// @Description Adds an incomplete task at the end of the list. At most 3 incomplete tasks may exist.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body createReq true "Task title"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - task limit reached"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, sc, req.toInput(h.processClient(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// Update godoc
// @Summary     Rename a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string    true "Task ID"
// @Param       body body updateReq true "New title"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [PATCH]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.UpdateTitle(ctx, sc, req.toInput(h.processClient(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.UpdateTitle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Completing stamps completed_at. Reopening keeps it.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} toggleResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - task limit reached"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingTaskID, nil)
		return
	}

	output, err := h.uc.Toggle(ctx, sc, task.ToggleInput{Client: h.processClient(c), ID: id})
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newToggleResp(output))
}

// Delete godoc
// @Summary     Delete a task
// @Description Soft deletes the task.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Task ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	id := c.Param("id")
	if id == "" {
		response.Error(c, errMissingTaskID, nil)
		return
	}

	if err := h.uc.Delete(ctx, sc, task.DeleteInput{Client: h.processClient(c), ID: id}); err != nil {
		h.l.Warnf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// Reorder godoc
// @Summary     Drop a dragged task
// @Description Moves active_id to the slot of over_id within the same partition. Cross-partition drops are ignored.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body reorderReq true "Drag end"
// @Success     200 {object} reorderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/reorder [POST]
func (h *handler) Reorder(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	req, err := h.processReorderReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Reorder(ctx, sc, req.toInput(h.processClient(c)))
	if err != nil {
		h.l.Warnf(ctx, "uc.Reorder: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newReorderResp(output))
}

// DailyReset godoc
// @Summary     Evaluate the daily reset
// @Description What a client timer calls once a minute. Cleans up expired tasks the first time it runs on a new local day.
// @Tags        Tasks
// @Produce     json
// @Security    BearerAuth
// @Param       X-Device-ID header string false "Device scope of the reset marker"
// @Param       X-Timezone  header string false "IANA timezone of the client"
// @Success     200 {object} dailyResetResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/daily-reset [POST]
func (h *handler) DailyReset(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	output, err := h.uc.DailyReset(ctx, sc, task.DailyResetInput{Client: h.processClient(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.DailyReset: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDailyResetResp(output))
}
