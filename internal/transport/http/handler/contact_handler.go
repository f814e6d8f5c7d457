package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/service"
)

type ContactHandler struct {
	svc *service.ContactService
	log *zap.Logger
}

func NewContactHandler(svc *service.ContactService, log *zap.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: log}
}

type contactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

func (h *ContactHandler) Send(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, apperr.BadRequest(err.Error()))
		return
	}
	echo, err := h.svc.Send(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, echo)
}
