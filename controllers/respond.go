package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lanchonete-app/backend/domain"
	"github.com/lanchonete-app/backend/utils"
)

// respondServiceError maps the service error taxonomy onto HTTP status
// codes. Anything unclassified is a 500.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case domain.IsNotFound(err):
		utils.RespondError(c, http.StatusNotFound, err)
	case domain.IsDomainError(err):
		utils.RespondError(c, http.StatusBadRequest, err)
	case domain.IsConflict(err):
		utils.RespondError(c, http.StatusConflict, err)
	case domain.IsExternalServiceError(err):
		utils.RespondError(c, http.StatusServiceUnavailable, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
