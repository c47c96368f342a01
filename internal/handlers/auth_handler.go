package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/barberrock/booking-api/internal/httpresp"
	"github.com/barberrock/booking-api/internal/usecase/account"
)

type AuthHandler struct {
	register  *account.RegisterAccount
	login     *account.Login
	listUsers *account.ListUsers
	log       *zap.Logger
}

func NewAuthHandler(
	register *account.RegisterAccount,
	login *account.Login,
	listUsers *account.ListUsers,
	log *zap.Logger,
) *AuthHandler {
	return &AuthHandler{register: register, login: login, listUsers: listUsers, log: log}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Phone     string `json:"telefono"`
	Role      string `json:"rol"`
	Specialty string `json:"especialidad"`
}

func (r RegisterRequest) input() account.RegisterInput {
	return account.RegisterInput{
		Username:  r.Username,
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
		Role:      r.Role,
		Specialty: r.Specialty,
	}
}

// LoginRequest.Username may hold the email.
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	session, err := h.register.Execute(c.Request.Context(), req.input())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, session)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	session, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.OK(c, session)
}

// CreateUser lets an admin create an account of any role.
func (h *AuthHandler) CreateUser(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidRequest(c, err)
		return
	}

	in := req.input()
	in.Actor = &p

	session, err := h.register.Execute(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.Created(c, session.Account)
}

func (h *AuthHandler) ListUsers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}

	users, err := h.listUsers.Execute(c.Request.Context(), p, c.Query("rol"))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	httpresp.List(c, users)
}
