// Package api exposes the calculation engine over HTTP: a thin layer that
// validates requests, calls into core, and serializes the results.
package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kilianp07/carboncompare/core/engine"
	"github.com/kilianp07/carboncompare/core/logger"
	"github.com/kilianp07/carboncompare/core/metrics"
)

// Options tunes router construction.
type Options struct {
	Mode        string
	CORSOrigins []string
	LogRequests bool
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(eng *engine.Engine, sink metrics.Sink, log logger.Logger, opts Options) *gin.Engine {
	if opts.Mode != "" {
		gin.SetMode(opts.Mode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), CORS(opts.CORSOrigins))
	if opts.LogRequests {
		r.Use(RequestLogger(log))
	}

	h := NewHandler(eng, sink, log)
	r.GET("/health", h.health)
	r.GET("/regions", h.regions)
	r.POST("/calculate", h.calculate)
	r.POST("/compare", h.compare)
	return r
}
