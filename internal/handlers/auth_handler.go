package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/renovation-marketplace/internal/domain/identity"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httperr"
	"github.com/BruksfildServices01/renovation-marketplace/internal/httpresp"
	"github.com/BruksfildServices01/renovation-marketplace/internal/middleware"
	ucAuth "github.com/BruksfildServices01/renovation-marketplace/internal/usecase/auth"
)

type AuthHandler struct {
	signup  *ucAuth.Signup
	login   *ucAuth.Login
	session *ucAuth.Session
	oauth   *ucAuth.OAuth
}

func NewAuthHandler(
	signup *ucAuth.Signup,
	login *ucAuth.Login,
	session *ucAuth.Session,
	oauth *ucAuth.OAuth,
) *AuthHandler {
	return &AuthHandler{signup: signup, login: login, session: session, oauth: oauth}
}

// --------- Requests ---------

type SignupRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	Role          string `json:"role" binding:"required,oneof=client professional"`
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone"`
	CompanyName   string `json:"company_name"`
	LicenseNumber string `json:"license_number"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Validation(c, "invalid_request", "Invalid sign-up data.", err.Error())
		return
	}

	res, err := h.signup.Execute(c.Request.Context(), ucAuth.SignupInput{
		Email:         req.Email,
		Password:      req.Password,
		Role:          identity.Role(req.Role),
		FullName:      req.FullName,
		Phone:         req.Phone,
		CompanyName:   req.CompanyName,
		LicenseNumber: req.LicenseNumber,
	})
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.Created(c, res)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, res)
}

// Logout is stateless: the client drops its token.
func (h *AuthHandler) Logout(c *gin.Context) {
	httpresp.NoContent(c)
}

func (h *AuthHandler) Session(c *gin.Context) {
	info, err := h.session.Execute(c.Request.Context(), middleware.CurrentIdentity(c))
	if err != nil {
		fail(c, err)
		return
	}

	httpresp.OK(c, info)
}

func (h *AuthHandler) OAuthStart(c *gin.Context) {
	target, err := h.oauth.Start(
		c.Request.Context(),
		c.Param("provider"),
		c.Query("redirect_to"),
		identity.Role(c.Query("role")),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}

func (h *AuthHandler) OAuthCallback(c *gin.Context) {
	if msg := c.Query("error"); msg != "" {
		httperr.Redirect(c, http.StatusUnauthorized, "oauth_denied", middleware.LoginPath)
		return
	}

	target, _, err := h.oauth.Callback(
		c.Request.Context(),
		c.Param("provider"),
		c.Query("state"),
		c.Query("code"),
	)
	if err != nil {
		fail(c, err)
		return
	}

	c.Redirect(http.StatusFound, target)
}
