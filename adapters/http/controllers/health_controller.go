package controllers

import (
	"log/slog"
	"net/http"

	"github.com/cloudlagoon/lagoon/infra"
	"github.com/cloudlagoon/lagoon/ports"
)

type HealthController struct {
	log    ports.Logger
	render infra.Render
	stats  StatsService
}

func NewHealthController(log ports.Logger, render infra.Render, stats StatsService) *HealthController {
	log = log.With(slog.String("entity", "HealthController"))
	s := &HealthController{
		log:    log,
		render: render,
		stats:  stats,
	}
	return s
}

func (c *HealthController) Get(w http.ResponseWriter, r *http.Request) {
	type Data struct {
		Status      string `json:"status"`
		CachedFiles int    `json:"cached_files"`
		CachedBytes string `json:"cached_bytes"`
	}
	stats := c.stats.Snapshot()
	data := Data{
		Status:      "ok",
		CachedFiles: stats.Files,
		CachedBytes: stats.Bytes.String(),
	}
	_ = c.render.JSON(w, http.StatusOK, data)
}
