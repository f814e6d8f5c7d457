package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"portfolio-api/internal/apperr"
	"portfolio-api/internal/domain"
	"portfolio-api/internal/service"
)

type AccountHandler struct {
	svc *service.UserService
	log *zap.Logger
}

func NewAccountHandler(svc *service.UserService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{svc: svc, log: log}
}

// The account endpoints wrap their payloads in a "user" object, matching the
// public API this backend serves.
type registerRequest struct {
	User struct {
		Username string `json:"username" binding:"required,alphanum,min=4,max=32"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"role" binding:"omitempty,oneof=user admin"`
	} `json:"user" binding:"required"`
}

func (h *AccountHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, apperr.BadRequest(err.Error()))
		return
	}
	_, err := h.svc.Register(c.Request.Context(), service.RegisterInput{
		Username: req.User.Username,
		Email:    req.User.Email,
		Password: req.User.Password,
		Role:     domain.Role(req.User.Role),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "User registered successfully"})
}

type loginRequest struct {
	User struct {
		Identifier string `json:"identifier" binding:"required"`
		Password   string `json:"password" binding:"required"`
	} `json:"user" binding:"required"`
}

func (h *AccountHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, h.log, apperr.BadRequest(err.Error()))
		return
	}
	res, err := h.svc.Login(c.Request.Context(), req.User.Identifier, req.User.Password)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": res})
}

// Verify only runs behind the admin guard, so reaching it is the proof.
func (h *AccountHandler) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "User is verified"})
}
