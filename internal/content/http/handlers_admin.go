package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AmitSalunkhe/jmbm-v2/internal/content/domain"
)

func (h *Handler) createBhajan(c *gin.Context) {
	var b domain.Bhajan
	if err := c.ShouldBindJSON(&b); err != nil || b.Title == "" || b.Lyrics == "" || b.Category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddBhajan(c.Request.Context(), b)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateBhajan(c *gin.Context) {
	var b domain.Bhajan
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateBhajan(c.Request.Context(), c.Param("id"), b); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteBhajan(c *gin.Context) {
	if err := h.repo.DeleteBhajan(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createSant(c *gin.Context) {
	var s domain.Sant
	if err := c.ShouldBindJSON(&s); err != nil || s.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddSant(c.Request.Context(), s)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateSant(c *gin.Context) {
	var s domain.Sant
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateSant(c.Request.Context(), c.Param("id"), s); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteSant(c *gin.Context) {
	if err := h.repo.DeleteSant(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createBhajanType(c *gin.Context) {
	var t domain.BhajanType
	if err := c.ShouldBindJSON(&t); err != nil || t.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddBhajanType(c.Request.Context(), t)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateBhajanType(c *gin.Context) {
	var t domain.BhajanType
	if err := c.ShouldBindJSON(&t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateBhajanType(c.Request.Context(), c.Param("id"), t); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteBhajanType(c *gin.Context) {
	if err := h.repo.DeleteBhajanType(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil || cat.Name == "" || cat.BhajanTypeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddCategory(c.Request.Context(), cat)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateCategory(c *gin.Context) {
	var cat domain.Category
	if err := c.ShouldBindJSON(&cat); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateCategory(c.Request.Context(), c.Param("id"), cat); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteCategory(c *gin.Context) {
	if err := h.repo.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createLabel(c *gin.Context) {
	var l domain.Label
	if err := c.ShouldBindJSON(&l); err != nil || l.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddLabel(c.Request.Context(), l)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateLabel(c *gin.Context) {
	var l domain.Label
	if err := c.ShouldBindJSON(&l); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateLabel(c.Request.Context(), c.Param("id"), l); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteLabel(c *gin.Context) {
	if err := h.repo.DeleteLabel(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createEvent(c *gin.Context) {
	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil || e.Title == "" || e.Date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddEvent(c.Request.Context(), e)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateEvent(c *gin.Context) {
	var e domain.Event
	if err := c.ShouldBindJSON(&e); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateEvent(c.Request.Context(), c.Param("id"), e); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteEvent(c *gin.Context) {
	if err := h.repo.DeleteEvent(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) createMember(c *gin.Context) {
	var m domain.Member
	if err := c.ShouldBindJSON(&m); err != nil || m.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	id, err := h.repo.AddMember(c.Request.Context(), m)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "id": id})
}

func (h *Handler) updateMember(c *gin.Context) {
	var m domain.Member
	if err := c.ShouldBindJSON(&m); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateMember(c.Request.Context(), c.Param("id"), m); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) deleteMember(c *gin.Context) {
	if err := h.repo.DeleteMember(c.Request.Context(), c.Param("id")); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type reorderReq struct {
	IDs []string `json:"ids"`
}

// reorderMembers applies a full new ordering produced by the drag UI. The
// repository writes only the members whose position changed; partial
// failure requires a reload to detect.
func (h *Handler) reorderMembers(c *gin.Context) {
	var req reorderReq
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.ReorderMembers(c.Request.Context(), req.IDs); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) updateSettings(c *gin.Context) {
	var s domain.AppSettings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}
	if err := h.repo.UpdateSettings(c.Request.Context(), s); err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// uploadImage stores a multipart image and returns its public URL.
func (h *Handler) uploadImage(c *gin.Context) {
	if h.imgs == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "storage not configured"})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "file is required"})
		return
	}
	defer file.Close()

	dir := c.DefaultPostForm("dir", "images")
	url, err := h.imgs.Upload(c.Request.Context(), dir, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "url": url})
}
