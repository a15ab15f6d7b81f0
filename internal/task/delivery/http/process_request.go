package http

import (
	"github.com/gin-gonic/gin"
)

// processProcessReq binds and validates the process request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processImprovementsReq binds and validates the improvements request body.
func (h *handler) processImprovementsReq(c *gin.Context) (improvementsReq, error) {
	var req improvementsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processSimilarityReq binds and validates the similarity request body.
func (h *handler) processSimilarityReq(c *gin.Context) (similarityReq, error) {
	var req similarityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
