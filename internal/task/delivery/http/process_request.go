package http

import (
	"strings"

	"github.com/gin-gonic/gin"

	"daily-three/internal/model"
	"daily-three/internal/task"
	"daily-three/pkg/scope"
)

const (
	headerDeviceID = "X-Device-ID"
	headerTimezone = "X-Timezone"

	// EventSource cannot send headers, so the stream also reads these.
	queryDeviceID = "device_id"
	queryTimezone = "tz"
)

// processScope returns the authenticated user set by the auth middleware.
func (h *handler) processScope(c *gin.Context) (model.Scope, bool) {
	return scope.FromContext(c.Request.Context())
}

// processClient reads the device and timezone the request is evaluated on.
func (h *handler) processClient(c *gin.Context) task.ClientContext {
	device := strings.TrimSpace(c.GetHeader(headerDeviceID))
	if device == "" {
		device = strings.TrimSpace(c.Query(queryDeviceID))
	}
	tz := strings.TrimSpace(c.GetHeader(headerTimezone))
	if tz == "" {
		tz = strings.TrimSpace(c.Query(queryTimezone))
	}
	return task.ClientContext{DeviceID: device, Timezone: tz}
}

// processCreateReq binds and validates the create task request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds the update body and the task id from the path.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, errMissingTaskID
	}
	return req, req.validate()
}

// processReorderReq binds and validates the drag end request body.
func (h *handler) processReorderReq(c *gin.Context) (reorderReq, error) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
