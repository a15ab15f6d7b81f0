package http

import (
	"github.com/gin-gonic/gin"

	"intelligent-task-management/pkg/response"
)

// Suggest godoc
// @Summary     Suggest an optimal schedule
// @Description Orders tasks by predicted priority and due date and greedily fills the available hours.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Candidate tasks and time budget"
// @Success     200  {object} suggestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - model not trained"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	accepted, err := h.uc.SuggestOptimalSchedule(ctx, req.toInput(h.defaultAvailableHours))
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestOptimalSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, suggestResp{Schedule: accepted})
}

// Conflicts godoc
// @Summary     Detect scheduling conflicts
// @Description Scans all task pairs for overlapping time windows and flags overloaded categories.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body conflictsReq true "Tasks to scan"
// @Success     200  {object} conflictsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/conflicts [POST]
func (h *handler) Conflicts(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConflictsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	conflicts, err := h.uc.DetectTaskConflicts(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.DetectTaskConflicts: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, conflictsResp{Conflicts: conflicts})
}

// Export godoc
// @Summary     Export a schedule to Google Calendar
// @Description Creates one calendar event per scheduled task with a due date.
// @Tags        Schedule
// @Accept      json
// @Produce     json
// @Param       body body exportReq true "Accepted schedule and target calendar"
// @Success     200  {object} exportResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     501  {object} response.Resp "Not Implemented - calendar not configured"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/schedules/export [POST]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExportReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.ExportSchedule(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ExportSchedule: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, exportResp{Events: events})
}
