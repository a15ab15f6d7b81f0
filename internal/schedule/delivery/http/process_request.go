package http

import (
	"github.com/gin-gonic/gin"
)

// processSuggestReq binds and validates the suggest request body.
func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processConflictsReq binds and validates the conflicts request body.
func (h *handler) processConflictsReq(c *gin.Context) (conflictsReq, error) {
	var req conflictsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processExportReq binds and validates the export request body.
func (h *handler) processExportReq(c *gin.Context) (exportReq, error) {
	var req exportReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
