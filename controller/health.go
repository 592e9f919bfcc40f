package controller

import (
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"

	"lawchat-backend/response"
)

const apiVersion = "1.0.0"

func (ctrl *Controller) Health(c *gin.Context) {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "development"
	}

	c.JSON(http.StatusOK, response.HealthResponse{
		Status:        "OK",
		Timestamp:     time.Now().UTC().Format(time.RFC3339),
		UptimeSeconds: time.Since(ctrl.startedAt).Seconds(),
		Memory: response.MemoryStats{
			AllocBytes:      mem.Alloc,
			TotalAllocBytes: mem.TotalAlloc,
			SysBytes:        mem.Sys,
			NumGC:           mem.NumGC,
		},
		Environment: env,
	})
}

func (ctrl *Controller) APIIndex(c *gin.Context) {
	c.JSON(http.StatusOK, response.APIIndexResponse{
		Message: "LawChat Backend API",
		Version: apiVersion,
		Endpoints: map[string]string{
			"sessions": "/api/sessions",
			"messages": "/api/messages",
			"chat":     "/api/chat",
			"health":   "/health",
		},
	})
}

var availableRoutes = []string{
	"GET /health",
	"GET /api",
	"GET /api/sessions",
	"POST /api/sessions",
	"GET /api/sessions/:id",
	"PUT /api/sessions/:id",
	"DELETE /api/sessions/:id",
	"GET /api/sessions/:id/messages",
	"GET /api/messages",
	"POST /api/messages",
	"DELETE /api/messages/:id",
	"POST /api/chat",
	"POST /api/chat/test",
}

func (ctrl *Controller) NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error":            "Not Found",
		"message":          "Route " + c.Request.URL.Path + " not found",
		"available_routes": availableRoutes,
	})
}
