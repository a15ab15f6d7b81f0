package http

import (
	"github.com/gin-gonic/gin"

	"intelligent-task-management/pkg/response"
)

// PredictPriority godoc
// @Summary     Predict task priority
// @Description Predicts a priority in [0,5] for one task record using the trained model.
// @Tags        Prediction
// @Accept      json
// @Produce     json
// @Param       body body predictReq true "Task record"
// @Success     200  {object} predictResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - model not trained"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/predictions/priority [POST]
func (h *handler) PredictPriority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPredictReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	value, err := h.uc.PredictPriority(ctx, req.Record)
	if err != nil {
		h.l.Errorf(ctx, "uc.PredictPriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, predictResp{Value: value})
}

// PredictDuration godoc
// @Summary     Predict task duration
// @Description Predicts an expected duration in minutes for one task record using the trained model.
// @Tags        Prediction
// @Accept      json
// @Produce     json
// @Param       body body predictReq true "Task record"
// @Success     200  {object} predictResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     409  {object} response.Resp "Conflict - model not trained"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/predictions/duration [POST]
func (h *handler) PredictDuration(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPredictReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	value, err := h.uc.PredictDuration(ctx, req.Record)
	if err != nil {
		h.l.Errorf(ctx, "uc.PredictDuration: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, predictResp{Value: value})
}

// TrainPriority godoc
// @Summary     Train the priority model
// @Description Fits the priority model on historical task records and persists the artifacts.
// @Tags        Prediction
// @Accept      json
// @Produce     json
// @Param       body body trainReq true "Historical task records"
// @Success     200  {object} trainResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/predictions/train/priority [POST]
func (h *handler) TrainPriority(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrainReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	accuracy, err := h.uc.TrainPriority(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.TrainPriority: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, trainResp{Accuracy: accuracy, RecordsCount: len(req.Records)})
}

// TrainDuration godoc
// @Summary     Train the duration model
// @Description Fits the duration model on records carrying an actual duration and persists the artifacts.
// @Tags        Prediction
// @Accept      json
// @Produce     json
// @Param       body body trainReq true "Historical task records"
// @Success     200  {object} trainResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/predictions/train/duration [POST]
func (h *handler) TrainDuration(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrainReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	accuracy, err := h.uc.TrainDuration(ctx, req.Records)
	if err != nil {
		h.l.Errorf(ctx, "uc.TrainDuration: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, trainResp{Accuracy: accuracy, RecordsCount: len(req.Records)})
}
