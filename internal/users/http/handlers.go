package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitSalunkhe/jmbm-v2/internal/auth"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/users"
)

type Handler struct {
	repo *users.Repo
}

func New(repo *users.Repo) *Handler {
	return &Handler{repo: repo}
}

// me returns the signed-in user's own document. The auth middleware has
// already ensured the document exists.
func (h *Handler) me(c *gin.Context) {
	uid := auth.UserFirebaseUID(c)
	role, err := h.repo.Role(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "uid": uid, "role": role})
}

func (h *Handler) list(c *gin.Context) {
	all, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "users": all})
}

type roleReq struct {
	Role string `json:"role"`
}

func (h *Handler) updateRole(c *gin.Context) {
	var req roleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if req.Role != domain.RoleUser && req.Role != domain.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unknown role"})
		return
	}
	uid := c.Param("id")
	// Admins cannot demote themselves; it is too easy to lock everyone out.
	if uid == auth.UserFirebaseUID(c) && req.Role != domain.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "cannot change own role"})
		return
	}
	if err := h.repo.UpdateRole(c.Request.Context(), uid, req.Role); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Register(authed, admin *gin.RouterGroup) {
	authed.GET("/me", h.me)
	admin.GET("/users", h.list)
	admin.PUT("/users/:id/role", h.updateRole)
}
