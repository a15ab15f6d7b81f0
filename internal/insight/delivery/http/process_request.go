package http

import (
	"github.com/gin-gonic/gin"
)

// processRecordsReq binds and validates a records-only body.
func (h *handler) processRecordsReq(c *gin.Context) (recordsReq, error) {
	var req recordsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSuggestionsReq binds and validates the suggestions body.
func (h *handler) processSuggestionsReq(c *gin.Context) (suggestionsReq, error) {
	var req suggestionsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTrendsReq binds and validates the trends body.
func (h *handler) processTrendsReq(c *gin.Context) (trendsReq, error) {
	var req trendsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
