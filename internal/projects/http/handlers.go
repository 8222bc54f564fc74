package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ig-assessment/assessment-api/internal/projects/domain"
	"github.com/ig-assessment/assessment-api/internal/projects/store"
	"github.com/ig-assessment/assessment-api/internal/projects/validate"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

// list handles GET /api/projects with optional status, sort, order,
// limit, and offset query parameters.
func (h *Handler) list(c *gin.Context) {
	status := c.Query("status")
	sortBy := c.DefaultQuery("sort", "updatedAt")
	order := c.DefaultQuery("order", "desc")

	limit := parseIntDefault(c.Query("limit"), defaultLimit)
	if limit < 1 {
		limit = 1
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset := parseIntDefault(c.Query("offset"), 0)
	if offset < 0 {
		offset = 0
	}

	// Unknown statuses fall through to the full list inside the store.
	items := store.SortProjects(h.store.ListByStatus(status), sortBy, order)
	total := len(items)

	if offset >= total {
		items = []domain.Project{}
	} else {
		end := offset + limit
		if end > total {
			end = total
		}
		items = items[offset:end]
	}

	c.JSON(http.StatusOK, ListResponse{Items: items, Total: total})
}

// get handles GET /api/projects/:id.
func (h *Handler) get(c *gin.Context) {
	id, ok := validate.IDParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	p, err := h.store.Get(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// create handles POST /api/projects.
func (h *Handler) create(c *gin.Context) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	input, errs := validate.ProjectCreate(body)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs[0], "errors": errs})
		return
	}

	p := h.store.Create(input)
	c.JSON(http.StatusCreated, p)
}

// update handles PUT /api/projects/:id.
func (h *Handler) update(c *gin.Context) {
	id, ok := validate.IDParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON body"})
		return
	}

	input, errs := validate.ProjectUpdate(body)
	if len(errs) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errs[0], "errors": errs})
		return
	}
	if input.Empty() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	p, err := h.store.Update(id, input)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, p)
}

// delete handles DELETE /api/projects/:id.
func (h *Handler) delete(c *gin.Context) {
	id, ok := validate.IDParam(c.Param("id"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid project id"})
		return
	}

	if !h.store.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Project not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Stats handles GET /api/stats.
func (h *Handler) Stats(c *gin.Context) {
	c.JSON(http.StatusOK, StatsResponse{
		Projects: ProjectStats{
			Total:    h.store.Count(),
			ByStatus: h.store.CountByStatus(),
		},
	})
}

func parseIntDefault(raw string, def int) int {
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
