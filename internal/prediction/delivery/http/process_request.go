package http

import (
	"github.com/gin-gonic/gin"
)

// processPredictReq binds and validates a single-record prediction body.
func (h *handler) processPredictReq(c *gin.Context) (predictReq, error) {
	var req predictReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processTrainReq binds and validates a training body.
func (h *handler) processTrainReq(c *gin.Context) (trainReq, error) {
	var req trainReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
