package http

import (
	"github.com/gin-gonic/gin"

	"daily-three/internal/task"
	"daily-three/pkg/response"
)

// Stream godoc
// @Summary     Live task board
// @Description Server-sent events: snapshot, celebrate, theme and error. Device and timezone may be passed as device_id and tz query parameters.
// @Tags        Tasks
// @Produce     text/event-stream
// @Security    BearerAuth
// @Param       device_id query string false "Device scope of the reset marker"
// @Param       tz        query string false "IANA timezone of the client"
// @Success     200 {object} boardResp "snapshot event payload"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Router      /api/v1/tasks/stream [GET]
func (h *handler) Stream(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := h.processScope(c)
	if !ok {
		response.Unauthorized(c)
		return
	}

	events, err := h.uc.Watch(ctx, sc, task.WatchInput{Client: h.processClient(c)})
	if err != nil {
		h.l.Errorf(ctx, "uc.Watch: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			if ev.Type == task.EventError {
				h.l.Warnf(ctx, "task stream: %v", ev.Err)
			}
			c.SSEvent(string(ev.Type), h.newEventPayload(ev))
			c.Writer.Flush()
		}
	}
}
