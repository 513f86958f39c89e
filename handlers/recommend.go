package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"cottagerec/models"
	"cottagerec/services/recommender"
	"cottagerec/utils"
)

// RecommendHandler fronts the recommender service.
type RecommendHandler struct {
	Service recommender.RecommenderService
	Cache   *redis.Client // nil disables the response cache
	Logger  *zap.Logger
}

// NewRecommendHandler wires the handler with its collaborators.
func NewRecommendHandler(svc recommender.RecommenderService, cache *redis.Client, logger *zap.Logger) *RecommendHandler {
	return &RecommendHandler{Service: svc, Cache: cache, Logger: logger}
}

// Recommend handles POST /recommend. Scoring failures degrade to the
// fallback list inside the service; the 500 shape is reserved for
// request-level failures (a body that cannot be decoded at all), and even
// that response still carries usable fallback recommendations.
func (h *RecommendHandler) Recommend(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		h.Logger.Warn("failed to read request body", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.RecommendResponse{
			Success:         false,
			Error:           err.Error(),
			Recommendations: h.Service.Fallback(2, []string{}),
		})
		return
	}

	var cacheKey string
	if h.Cache != nil {
		cacheKey = utils.ResponseCacheKey(body)
		if payload, ok := utils.GetCachedResponse(c.Request.Context(), h.Cache, cacheKey); ok {
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}

	var req models.RecommendRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.Logger.Warn("malformed recommendation request", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.RecommendResponse{
			Success:         false,
			Error:           err.Error(),
			Recommendations: h.Service.Fallback(2, []string{}),
		})
		return
	}

	recs, occasions := h.Service.Recommend(req)
	resp := models.RecommendResponse{
		Success:         true,
		Recommendations: recs,
		Analysis: &models.RecommendAnalysis{
			GuestCount:       req.Guests(),
			SpecialOccasions: occasions,
			BookingDate:      req.BookingDate,
		},
	}

	if h.Cache != nil {
		if payload, err := json.Marshal(resp); err == nil {
			utils.SetCachedResponse(c.Request.Context(), h.Cache, cacheKey, payload)
			c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
			return
		}
	}
	c.JSON(http.StatusOK, resp)
}

// Health handles GET /health.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "cottage-recommender"})
}
