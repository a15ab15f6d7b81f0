package http

import (
	"github.com/gin-gonic/gin"

	"intelligent-task-management/pkg/response"
)

// Process godoc
// @Summary     Process a natural-language task description
// @Description Extracts title, due date, category, complexity, sentiment, keywords and estimated duration from free text.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Raw task text"
// @Success     200  {object} processResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ProcessTaskInput(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTaskInput: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProcessResp(output))
}

// Improvements godoc
// @Summary     Suggest improvements for a task description
// @Description Flags overly long descriptions, missing action verbs, missing due dates and missing priority indicators.
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body improvementsReq true "Raw task text"
// @Success     200  {object} improvementsResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/improvements [POST]
func (h *handler) Improvements(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processImprovementsReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	suggestions, err := h.uc.SuggestTaskImprovements(ctx, req.Text)
	if err != nil {
		h.l.Errorf(ctx, "uc.SuggestTaskImprovements: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, improvementsResp{Suggestions: suggestions})
}

// Similarity godoc
// @Summary     Score the similarity of two task descriptions
// @Description Returns the lexical overlap of two descriptions as a score in [0,1].
// @Tags        Task
// @Accept      json
// @Produce     json
// @Param       body body similarityReq true "Two task texts"
// @Success     200  {object} similarityResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/tasks/similarity [POST]
func (h *handler) Similarity(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSimilarityReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	score, err := h.uc.Similarity(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Similarity: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, similarityResp{Score: score})
}
