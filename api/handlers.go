package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kilianp07/carboncompare/core/engine"
	"github.com/kilianp07/carboncompare/core/factors"
	"github.com/kilianp07/carboncompare/core/logger"
	"github.com/kilianp07/carboncompare/core/metrics"
	"github.com/kilianp07/carboncompare/core/model"
)

// Handler serves the calculation endpoints.
type Handler struct {
	engine *engine.Engine
	sink   metrics.Sink
	log    logger.Logger
}

// NewHandler wires the engine and sink into HTTP handlers.
func NewHandler(eng *engine.Engine, sink metrics.Sink, log logger.Logger) *Handler {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Handler{engine: eng, sink: sink, log: log}
}

// CompareRequest carries 2..5 vehicle configurations to compare.
type CompareRequest struct {
	Vehicles []model.VehicleConfiguration `json:"vehicles" binding:"required,min=2,max=5,dive"`
}

func (h *Handler) calculate(c *gin.Context) {
	var cfg model.VehicleConfiguration
	if err := c.ShouldBindJSON(&cfg); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "request body failed validation", err.Error())
		return
	}

	start := time.Now()
	res, err := h.engine.Calculate(cfg)
	if err != nil {
		h.engineError(c, err)
		return
	}
	if err := h.sink.RecordCalculation(res, time.Since(start)); err != nil {
		h.log.Warnf("record calculation: %v", err)
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) compare(c *gin.Context) {
	var req CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid_request", "request body failed validation", err.Error())
		return
	}

	start := time.Now()
	res, err := h.engine.Compare(req.Vehicles)
	if err != nil {
		h.engineError(c, err)
		return
	}
	if err := h.sink.RecordComparison(res, time.Since(start)); err != nil {
		h.log.Warnf("record comparison: %v", err)
	}
	c.JSON(http.StatusOK, res)
}

// engineError maps engine failures onto the error taxonomy: caller faults
// and factor-table faults are 400s, anything else is a 500.
func (h *Handler) engineError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, model.ErrInvalid):
		respondError(c, http.StatusBadRequest, "invalid_request", err.Error(), nil)
	case errors.Is(err, factors.ErrNotFound):
		respondError(c, http.StatusBadRequest, "unknown_vehicle", err.Error(), nil)
	default:
		h.log.Errorf("engine failure: %v", err)
		respondError(c, http.StatusInternalServerError, "internal_error", "calculation failed", nil)
	}
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "carbon-compare-api"})
}

func (h *Handler) regions(c *gin.Context) {
	c.JSON(http.StatusOK, factors.GridPresets)
}
