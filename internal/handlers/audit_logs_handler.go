package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/everest-cuisine/booking-api/internal/domain/booking"
	"github.com/everest-cuisine/booking-api/internal/httperr"
	"github.com/everest-cuisine/booking-api/internal/httpresp"
	"github.com/everest-cuisine/booking-api/internal/models"
)

const (
	defaultAuditPageSize = 50
	maxAuditPageSize     = 200
)

type AuditLogsHandler struct {
	db *gorm.DB
}

func NewAuditLogsHandler(db *gorm.DB) *AuditLogsHandler {
	return &AuditLogsHandler{db: db}
}

// List serves GET /api/admin/audit-logs with optional action, entity,
// entity_id, from and to filters.
func (h *AuditLogsHandler) List(c *gin.Context) {
	page, limit := pagination(c)

	q := h.db.WithContext(c.Request.Context()).Model(&models.AuditLog{})

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}
	if entity := c.Query("entity"); entity != "" {
		q = q.Where("entity = ?", entity)
	}
	if raw := c.Query("entity_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_entity_id", "entity_id must be a number.")
			return
		}
		q = q.Where("entity_id = ?", id)
	}
	if raw := c.Query("from"); raw != "" {
		if from, err := time.Parse(domain.DateLayout, raw); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}
	if raw := c.Query("to"); raw != "" {
		if to, err := time.Parse(domain.DateLayout, raw); err == nil {
			q = q.Where("created_at < ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Failed to count audit logs.")
		return
	}

	logs := []models.AuditLog{}
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&logs).Error; err != nil {
		httperr.Internal(c, "audit_list_failed", "Failed to list audit logs.")
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}

func pagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditPageSize)))
	if limit <= 0 || limit > maxAuditPageSize {
		limit = defaultAuditPageSize
	}
	return page, limit
}
