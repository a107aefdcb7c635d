package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitSalunkhe/jmbm-v2/internal/daily"
)

type Handler struct {
	svc   *daily.Service
	debug bool
}

func New(svc *daily.Service, debug bool) *Handler {
	return &Handler{svc: svc, debug: debug}
}

// today always answers 200: the service falls back to a built-in abhang
// when generation is unavailable, so the home screen is never empty.
func (h *Handler) today(c *gin.Context) {
	content := h.svc.Today(c.Request.Context())
	resp := gin.H{"ok": true, "content": content}
	if h.debug && content.Diagnostic != "" {
		resp["diagnostic"] = content.Diagnostic
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) refresh(c *gin.Context) {
	content := h.svc.Refresh(c.Request.Context())
	resp := gin.H{"ok": true, "content": content}
	if h.debug && content.Diagnostic != "" {
		resp["diagnostic"] = content.Diagnostic
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Register(public, admin *gin.RouterGroup) {
	public.GET("/daily", h.today)
	admin.POST("/daily/refresh", h.refresh)
}
