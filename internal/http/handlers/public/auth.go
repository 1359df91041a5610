package public

import (
	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/service"
)

type registerRequest struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	Name          string `json:"name" binding:"required"`
	ListTitle     string `json:"list_title"`
	Slug          string `json:"slug"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type loginRequest struct {
	Email         string `json:"email" binding:"required"`
	Password      string `json:"password" binding:"required"`
	CaptchaID     string `json:"captcha_id"`
	CaptchaAnswer string `json:"captcha_answer"`
}

type authPayload struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}

// Register 注册
// POST /api/auth/register
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	if !h.captcha.Verify(req.CaptchaID, req.CaptchaAnswer) {
		respondError(c, service.ErrInvalidCaptcha)
		return
	}
	user, token, err := h.auth.Register(service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		Name:      req.Name,
		ListTitle: req.ListTitle,
		Slug:      req.Slug,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, authPayload{Token: token, User: user})
}

// Login 登录
// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}
	if !h.captcha.Verify(req.CaptchaID, req.CaptchaAnswer) {
		respondError(c, service.ErrInvalidCaptcha)
		return
	}
	user, token, err := h.auth.Login(req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	response.Success(c, authPayload{Token: token, User: user})
}
