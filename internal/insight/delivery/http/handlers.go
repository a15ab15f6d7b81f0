package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"intelligent-task-management/pkg/response"
)

// Patterns godoc
// @Summary     Analyze task patterns
// @Description Aggregates historical tasks into completion rates by category and hour plus average durations.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body recordsReq true "Historical task records"
// @Success     200  {object} patternsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/patterns [POST]
func (h *handler) Patterns(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecordsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	patterns, err := h.uc.AnalyzeTaskPatterns(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeTaskPatterns: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, patternsResp{Patterns: patterns})
}

// Suggestions godoc
// @Summary     Generate improvement suggestions
// @Description Combines the overall completion rate with aggregated patterns into ordered suggestions.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body suggestionsReq true "Historical task records with optional completion rate"
// @Success     200  {object} suggestionsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/suggestions [POST]
func (h *handler) Suggestions(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSuggestionsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	patterns, err := h.uc.AnalyzeTaskPatterns(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.AnalyzeTaskPatterns: %v", err)
		response.InternalError(c, err)
		return
	}

	suggestions, err := h.uc.GenerateSuggestions(ctx, req.overallCompletionRate(), patterns)
	if err != nil {
		h.l.Errorf(ctx, "uc.GenerateSuggestions: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, suggestionsResp{Suggestions: suggestions})
}

// Productivity godoc
// @Summary     Compute productivity metrics
// @Description Derives completion metrics, streaks and the composite productivity score from a task history.
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body recordsReq true "Historical task records"
// @Success     200  {object} productivityResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/productivity [POST]
func (h *handler) Productivity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processRecordsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	metrics, err := h.uc.Productivity(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.Productivity: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, productivityResp{Metrics: metrics})
}

// Trends godoc
// @Summary     Completion trends
// @Description Counts completed tasks per day over a lookback window (default 30 days).
// @Tags        Insight
// @Accept      json
// @Produce     json
// @Param       body body trendsReq true "Historical task records with optional window in days"
// @Success     200  {object} trendsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/insights/trends [POST]
func (h *handler) Trends(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrendsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now()
	trends, err := h.uc.CompletionTrends(ctx, req.Records, req.since(now))
	if err != nil {
		h.l.Errorf(ctx, "uc.CompletionTrends: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, trendsResp{Trends: trends, ExportDate: now})
}
