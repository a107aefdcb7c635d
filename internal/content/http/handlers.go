package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
	"github.com/AmitSalunkhe/jmbm-v2/internal/search"
	"github.com/AmitSalunkhe/jmbm-v2/internal/storage"
)

type Handler struct {
	repo *repository.Repository
	imgs *storage.ImageStore
}

func New(repo *repository.Repository, imgs *storage.ImageStore) *Handler {
	return &Handler{repo: repo, imgs: imgs}
}

// writeErr maps repository failures onto HTTP statuses. Duplicate messages
// travel verbatim; the admin UI surfaces them as-is.
func writeErr(c *gin.Context, err error) {
	var dup *domain.DuplicateError
	switch {
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": dup.Error()})
	case errors.Is(err, domain.ErrNotInitialized):
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "backend not initialized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}

// Bhajans

func (h *Handler) listBhajans(c *gin.Context) {
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		items, err := h.repo.BhajansByCategory(c.Request.Context(), category)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "bhajans": items})
		return
	}
	if sant := strings.TrimSpace(c.Query("sant")); sant != "" {
		items, err := h.repo.BhajansBySant(c.Request.Context(), sant)
		if err != nil {
			writeErr(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "bhajans": items})
		return
	}

	items, err := h.repo.Bhajans(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		items = search.Filter(items, q)
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bhajans": items})
}

func (h *Handler) getBhajan(c *gin.Context) {
	b, err := h.repo.BhajanByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	if b == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "bhajan not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bhajan": b})
}

// suggest powers the live search dropdown: top five matches in collection
// order, raw and phonetic queries combined.
func (h *Handler) suggest(c *gin.Context) {
	q := c.Query("q")
	if len([]rune(strings.TrimSpace(q))) < 2 {
		c.JSON(http.StatusOK, gin.H{"ok": true, "suggestions": []domain.Bhajan{}})
		return
	}
	items, err := h.repo.Bhajans(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "suggestions": search.Suggest(items, q)})
}

// Saints, types, categories, labels

func (h *Handler) listSaints(c *gin.Context) {
	items, err := h.repo.Saints(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "saints": items})
}

func (h *Handler) listBhajanTypes(c *gin.Context) {
	items, err := h.repo.BhajanTypes(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "bhajan_types": items})
}

func (h *Handler) listCategories(c *gin.Context) {
	items, err := h.repo.Categories(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	if typeID := strings.TrimSpace(c.Query("type_id")); typeID != "" {
		filtered := []domain.Category{}
		for _, cat := range items {
			if cat.BhajanTypeID == typeID {
				filtered = append(filtered, cat)
			}
		}
		items = filtered
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "categories": items})
}

func (h *Handler) listLabels(c *gin.Context) {
	items, err := h.repo.Labels(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "labels": items})
}

// Events

func (h *Handler) upcomingEvents(c *gin.Context) {
	items, err := h.repo.UpcomingEvents(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "events": items})
}

func (h *Handler) allEvents(c *gin.Context) {
	items, err := h.repo.AllEvents(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "events": items})
}

func (h *Handler) getEvent(c *gin.Context) {
	e, err := h.repo.EventByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeErr(c, err)
		return
	}
	if e == nil {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "event not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "event": e})
}

// Members and settings

func (h *Handler) listMembers(c *gin.Context) {
	items, err := h.repo.Members(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "members": items})
}

func (h *Handler) getSettings(c *gin.Context) {
	s, err := h.repo.Settings(c.Request.Context())
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "settings": s})
}
