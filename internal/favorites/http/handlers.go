package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/AmitSalunkhe/jmbm-v2/internal/auth"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
	"github.com/AmitSalunkhe/jmbm-v2/internal/favorites"
)

type Handler struct {
	store repository.Store
	rdb   *redis.Client
}

func New(store repository.Store, rdb *redis.Client) *Handler {
	return &Handler{store: store, rdb: rdb}
}

// forRequest picks the favorite set for this request: the authenticated
// remote set when a verified uid is in context, the anonymous local set
// keyed by the device session header otherwise.
func (h *Handler) forRequest(c *gin.Context) (favorites.Favorites, bool) {
	id := favorites.Identity{
		UID:       auth.UserFirebaseUID(c),
		SessionID: auth.SessionID(c),
	}
	if id.UID == "" && id.SessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "missing " + auth.SessionHeader + " header"})
		return nil, false
	}
	return favorites.ForIdentity(id, h.store, h.rdb), true
}

func (h *Handler) list(c *gin.Context) {
	fav, ok := h.forRequest(c)
	if !ok {
		return
	}
	items, err := fav.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "favorites": items})
}

func (h *Handler) check(c *gin.Context) {
	fav, ok := h.forRequest(c)
	if !ok {
		return
	}
	isFav, err := fav.IsFavorite(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "favorite": isFav})
}

// toggle flips membership for the posted bhajan snapshot and reports the
// resulting state. Persistence failures surface to the caller; the UI owns
// the messaging.
func (h *Handler) toggle(c *gin.Context) {
	fav, ok := h.forRequest(c)
	if !ok {
		return
	}
	var b domain.Bhajan
	if err := c.ShouldBindJSON(&b); err != nil || b.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	added, err := fav.Toggle(c.Request.Context(), b)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "favorite": added})
}

func (h *Handler) clear(c *gin.Context) {
	fav, ok := h.forRequest(c)
	if !ok {
		return
	}
	if err := fav.ClearAll(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) Register(g *gin.RouterGroup) {
	g.GET("/favorites", h.list)
	g.GET("/favorites/:id", h.check)
	g.POST("/favorites/toggle", h.toggle)
	g.DELETE("/favorites", h.clear)
}
