package dashboard

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/lumie-registry/internal/http/handlers/shared"
	"github.com/lumie-registry/internal/http/response"
	"github.com/lumie-registry/internal/service"
)

type settingsRequest struct {
	Title               *string `json:"title"`
	Description         *string `json:"description"`
	EventDate           *string `json:"event_date"`
	EventLocation       *string `json:"event_location"`
	FeeMode             *string `json:"fee_mode"`
	AllowPublicMessages *bool   `json:"allow_public_messages"`
	Slug                *string `json:"slug"`
	Active              *bool   `json:"active"`
}

// Me 登录用户信息
// GET /api/dashboard/me
func (h *Handler) Me(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	response.Success(c, gin.H{"list": list})
}

// GetSettings 读取清单设置
// GET /api/dashboard/settings
func (h *Handler) GetSettings(c *gin.Context) {
	list, ok := h.currentList(c)
	if !ok {
		return
	}
	response.Success(c, list)
}

// UpdateSettings 更新清单设置
// PUT /api/dashboard/settings
func (h *Handler) UpdateSettings(c *gin.Context) {
	userID, ok := shared.CurrentUserID(c)
	if !ok {
		response.Fail(c, response.CodeUnauthorized, "login required")
		return
	}
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, response.CodeBadRequest, "dados inválidos")
		return
	}

	input := service.ListSettingsInput{
		Title:               req.Title,
		Description:         req.Description,
		EventLocation:       req.EventLocation,
		FeeMode:             req.FeeMode,
		AllowPublicMessages: req.AllowPublicMessages,
		Slug:                req.Slug,
		Active:              req.Active,
	}
	if req.EventDate != nil {
		if *req.EventDate == "" {
			input.ClearEventDate = true
		} else {
			parsed, err := parseEventDate(*req.EventDate)
			if err != nil {
				response.Fail(c, response.CodeBadRequest, "data do evento inválida")
				return
			}
			input.EventDate = &parsed
		}
	}

	previousSlug := ""
	if current, err := h.lists.GetByUserID(userID); err == nil {
		previousSlug = current.Slug
	}

	list, err := h.lists.UpdateSettings(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	// slug 变更时旧地址的缓存也要失效
	h.invalidatePage(list.Slug)
	if previousSlug != "" && previousSlug != list.Slug {
		h.invalidatePage(previousSlug)
	}
	response.Success(c, list)
}

func parseEventDate(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
