package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"model-serving-service/internal/domain"
)

type predictRequest struct {
	Features []float64 `json:"features"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "model serving service is running",
	})
}

func (h *Handler) Predict(c *gin.Context) {
	var req predictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Features == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrNoFeatures.Error()})
		return
	}

	prediction, err := h.predictUC.Predict(req.Features)
	if err != nil {
		log.WithError(err).Error("prediction failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prediction":  prediction.Label,
		"probability": prediction.Probability,
		"features":    prediction.Features,
	})
}

func (h *Handler) ModelInfo(c *gin.Context) {
	meta, err := h.predictUC.ModelInfo()
	if err != nil {
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"model_type":   meta.ModelType,
		"n_features":   meta.FeaturesIn,
		"n_estimators": meta.Estimators,
	})
}

func (h *Handler) Retrain(c *gin.Context) {
	// A retrain runs to completion or failure; a client disconnect must not
	// abort it mid-pipeline.
	ctx := context.WithoutCancel(c.Request.Context())
	if err := h.retrainer.Retrain(ctx); err != nil {
		log.WithError(err).Error("retraining failed")
		mapDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "model retrained successfully"})
}
