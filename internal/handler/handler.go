package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"model-serving-service/internal/usecase"
)

// Retrainer runs the full synthesize-train-persist pipeline.
type Retrainer interface {
	Retrain(ctx context.Context) error
}

type Handler struct {
	predictUC *usecase.PredictionUseCase
	retrainer Retrainer
}

func New(predictUC *usecase.PredictionUseCase, retrainer Retrainer) *Handler {
	return &Handler{predictUC: predictUC, retrainer: retrainer}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	r.POST("/predict", h.Predict)
	r.GET("/model/info", h.ModelInfo)
	r.POST("/retrain", h.Retrain)
}
