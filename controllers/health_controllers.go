package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/lanchonete-app/backend/utils"
)

type HealthController struct {
	DB *gorm.DB
}

func NewHealthController(db *gorm.DB) *HealthController {
	return &HealthController{DB: db}
}

// Health reports service liveness and database reachability.
func (hc *HealthController) Health(c *gin.Context) {
	sqlDB, err := hc.DB.DB()
	if err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("database unavailable"))
		return
	}
	if err := sqlDB.Ping(); err != nil {
		utils.RespondError(c, http.StatusServiceUnavailable, errors.New("database unavailable"))
		return
	}

	utils.RespondJSON(c, http.StatusOK, "ok", nil)
}
