package http

import "github.com/gin-gonic/gin"

// Register mounts the read-only routes on public and the write routes on
// admin; the caller attaches auth middleware to admin.
func (h *Handler) Register(public, admin *gin.RouterGroup) {
	public.GET("/bhajans", h.listBhajans)
	public.GET("/bhajans/suggest", h.suggest)
	public.GET("/bhajans/:id", h.getBhajan)
	public.GET("/saints", h.listSaints)
	public.GET("/bhajan-types", h.listBhajanTypes)
	public.GET("/categories", h.listCategories)
	public.GET("/labels", h.listLabels)
	public.GET("/events", h.allEvents)
	public.GET("/events/upcoming", h.upcomingEvents)
	public.GET("/events/:id", h.getEvent)
	public.GET("/members", h.listMembers)
	public.GET("/settings", h.getSettings)

	admin.POST("/bhajans", h.createBhajan)
	admin.PUT("/bhajans/:id", h.updateBhajan)
	admin.DELETE("/bhajans/:id", h.deleteBhajan)

	admin.POST("/saints", h.createSant)
	admin.PUT("/saints/:id", h.updateSant)
	admin.DELETE("/saints/:id", h.deleteSant)

	admin.POST("/bhajan-types", h.createBhajanType)
	admin.PUT("/bhajan-types/:id", h.updateBhajanType)
	admin.DELETE("/bhajan-types/:id", h.deleteBhajanType)

	admin.POST("/categories", h.createCategory)
	admin.PUT("/categories/:id", h.updateCategory)
	admin.DELETE("/categories/:id", h.deleteCategory)

	admin.POST("/labels", h.createLabel)
	admin.PUT("/labels/:id", h.updateLabel)
	admin.DELETE("/labels/:id", h.deleteLabel)

	admin.POST("/events", h.createEvent)
	admin.PUT("/events/:id", h.updateEvent)
	admin.DELETE("/events/:id", h.deleteEvent)

	admin.POST("/members", h.createMember)
	admin.PUT("/members/reorder", h.reorderMembers)
	admin.PUT("/members/:id", h.updateMember)
	admin.DELETE("/members/:id", h.deleteMember)

	admin.PUT("/settings", h.updateSettings)
	admin.POST("/images", h.uploadImage)
}
