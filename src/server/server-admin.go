package server

import (
	"net/http"
	"strings"

	. "github.com/knightsbridge-digital/intake/src/utils/logger"

	"github.com/knightsbridge-digital/intake/src/server/request"
	"github.com/knightsbridge-digital/intake/src/server/response"

	"github.com/gin-gonic/gin"
)

func (self *Server) onGetSubmissions(c *gin.Context) {
	// Expire overdue submissions first so the listing never shows a stale
	// pending status
	self.sweeper.RunNow()

	summaries, err := self.store.ListSubmissions(c)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to list submissions")
		return
	}

	c.JSON(http.StatusOK, response.SubmissionsToResponse(summaries, self.fileStore.PublicUrl))
}

func (self *Server) onGetAdminCredentials(c *gin.Context) {
	credentials, err := self.store.GetAdminCredentials(c)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to load admin credentials")
		return
	}

	c.JSON(http.StatusOK, credentials)
}

func (self *Server) onUpdateAdminCredentials(c *gin.Context) {
	var in = new(request.UpdateAdminCredentials)
	err := c.ShouldBindJSON(in)
	if err != nil {
		LOGE(c, err, http.StatusBadRequest).Error("Failed to parse credentials update")
		return
	}

	if strings.TrimSpace(in.Email) == "" || strings.TrimSpace(in.Password) == "" {
		LOGE(c, nil, http.StatusBadRequest).Debug("Rejected empty credentials update")
		return
	}

	err = self.store.UpdateAdminCredentials(c, in.Email, in.Password)
	if err != nil {
		LOGE(c, err, http.StatusInternalServerError).Error("Failed to update admin credentials")
		return
	}

	c.Status(http.StatusOK)
}
