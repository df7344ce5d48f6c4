package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/inventoryhub/parts-service/models"
	"github.com/inventoryhub/parts-service/services"
	"github.com/inventoryhub/parts-service/storage"
)

// InventoryAPI is the slice of the service layer the HTTP handlers need.
type InventoryAPI interface {
	GetParts(ctx context.Context) ([]models.Part, error)
	GetPart(ctx context.Context, id int) (models.Part, error)
	AddPart(ctx context.Context, part models.Part, actor string) (models.Part, error)
	UpdatePart(ctx context.Context, part models.Part, actor string) (models.Part, error)
	DeletePart(ctx context.Context, id int) error
	CheckoutPart(ctx context.Context, id int, by, notes string) (models.Part, error)
	CheckinPart(ctx context.Context, id int, actor, notes string) (models.Part, error)
	MovePart(ctx context.Context, id int, shelfCode, actor string) (models.Part, error)
	SetQuantity(ctx context.Context, id, quantity int, actor string) (models.Part, error)
	ImportParts(ctx context.Context, parts []models.Part, actor string) (services.ImportResult, error)

	GetShelves(ctx context.Context) (map[string]models.Shelf, error)
	AddShelf(ctx context.Context, code string, shelf models.Shelf) error
	UpdateShelf(ctx context.Context, code string, shelf models.Shelf) error
	DeleteShelf(ctx context.Context, code string) error
	RenameShelf(ctx context.Context, oldCode, newCode string) error
	ShelfCounts(ctx context.Context) ([]models.ShelfSummary, error)

	GetTransactions(ctx context.Context) ([]models.Transaction, error)
	SearchParts(ctx context.Context, query string, fields []string) ([]models.Part, error)
	FilterParts(ctx context.Context, spec services.FilterSpec) ([]models.Part, error)
	GetStats(ctx context.Context) (models.Stats, error)
	HealthCheck(ctx context.Context) models.Health
	CreateBackup(ctx context.Context) (models.Backup, error)
	RestoreBackup(ctx context.Context, backup models.Backup) error
}

// InventoryController translates HTTP requests into service calls and
// service errors into status codes.
type InventoryController struct {
	service InventoryAPI
}

func NewInventoryController(service InventoryAPI) *InventoryController {
	return &InventoryController{service: service}
}

// actor identifies who performed a mutation, for the audit log.
func actor(c *gin.Context) string {
	if a := c.GetHeader("X-Actor"); a != "" {
		return a
	}
	return "system"
}

// respondError maps the error taxonomy onto status codes: not-found 404,
// conflict 409, invalid shape 400, everything else (io failures) 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, storage.ErrInvalidShape):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "storage failure"})
	}
}

func partID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid part id"})
		return 0, false
	}
	return id, true
}

// GET /parts
func (ic *InventoryController) GetParts(c *gin.Context) {
	parts, err := ic.service.GetParts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GET /parts/:id
func (ic *InventoryController) GetPart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	part, err := ic.service.GetPart(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

// POST /parts
func (ic *InventoryController) AddPart(c *gin.Context) {
	var part models.Part
	if err := c.ShouldBindJSON(&part); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	created, err := ic.service.AddPart(c.Request.Context(), part, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// PUT /parts/:id
func (ic *InventoryController) UpdatePart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	var part models.Part
	if err := c.ShouldBindJSON(&part); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	part.ID = id
	updated, err := ic.service.UpdatePart(c.Request.Context(), part, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DELETE /parts/:id
func (ic *InventoryController) DeletePart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	if err := ic.service.DeletePart(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type checkoutRequest struct {
	By    string `json:"by" binding:"required"`
	Notes string `json:"notes"`
}

// POST /parts/:id/checkout
func (ic *InventoryController) CheckoutPart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	part, err := ic.service.CheckoutPart(c.Request.Context(), id, req.By, req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

type checkinRequest struct {
	Notes string `json:"notes"`
}

// POST /parts/:id/checkin
func (ic *InventoryController) CheckinPart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	var req checkinRequest
	_ = c.ShouldBindJSON(&req)
	part, err := ic.service.CheckinPart(c.Request.Context(), id, actor(c), req.Notes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

type moveRequest struct {
	Shelf string `json:"shelf"`
}

// POST /parts/:id/move
func (ic *InventoryController) MovePart(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	part, err := ic.service.MovePart(c.Request.Context(), id, req.Shelf, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

type quantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// PUT /parts/:id/quantity
func (ic *InventoryController) SetQuantity(c *gin.Context) {
	id, ok := partID(c)
	if !ok {
		return
	}
	var req quantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	part, err := ic.service.SetQuantity(c.Request.Context(), id, *req.Quantity, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, part)
}

type importRequest struct {
	Parts []models.Part `json:"parts" binding:"required"`
}

// POST /parts/import — records are already validated upstream.
func (ic *InventoryController) ImportParts(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	result, err := ic.service.ImportParts(c.Request.Context(), req.Parts, actor(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /parts/search?q=term&fields=partNumber,description
func (ic *InventoryController) SearchParts(c *gin.Context) {
	var fields []string
	if raw := c.Query("fields"); raw != "" {
		fields = strings.Split(raw, ",")
	}
	parts, err := ic.service.SearchParts(c.Request.Context(), c.Query("q"), fields)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// POST /parts/filter
func (ic *InventoryController) FilterParts(c *gin.Context) {
	var spec services.FilterSpec
	if err := c.ShouldBindJSON(&spec); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	parts, err := ic.service.FilterParts(c.Request.Context(), spec)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GET /shelves
func (ic *InventoryController) GetShelves(c *gin.Context) {
	shelves, err := ic.service.GetShelves(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shelves)
}

// GET /shelves/summary
func (ic *InventoryController) ShelfCounts(c *gin.Context) {
	summaries, err := ic.service.ShelfCounts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, summaries)
}

type shelfRequest struct {
	Code string `json:"code" binding:"required"`
	models.Shelf
}

// POST /shelves
func (ic *InventoryController) AddShelf(c *gin.Context) {
	var req shelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := ic.service.AddShelf(c.Request.Context(), req.Code, req.Shelf); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusCreated)
}

// PUT /shelves/:code
func (ic *InventoryController) UpdateShelf(c *gin.Context) {
	var shelf models.Shelf
	if err := c.ShouldBindJSON(&shelf); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := ic.service.UpdateShelf(c.Request.Context(), c.Param("code"), shelf); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// DELETE /shelves/:code
func (ic *InventoryController) DeleteShelf(c *gin.Context) {
	if err := ic.service.DeleteShelf(c.Request.Context(), c.Param("code")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type renameRequest struct {
	NewCode string `json:"newCode" binding:"required"`
}

// POST /shelves/:code/rename
func (ic *InventoryController) RenameShelf(c *gin.Context) {
	var req renameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := ic.service.RenameShelf(c.Request.Context(), c.Param("code"), req.NewCode); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}

// GET /transactions
func (ic *InventoryController) GetTransactions(c *gin.Context) {
	transactions, err := ic.service.GetTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, transactions)
}

// GET /stats
func (ic *InventoryController) GetStats(c *gin.Context) {
	stats, err := ic.service.GetStats(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GET /health
func (ic *InventoryController) Health(c *gin.Context) {
	health := ic.service.HealthCheck(c.Request.Context())
	status := http.StatusOK
	if health.Status != "healthy" {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, health)
}

// POST /backup
func (ic *InventoryController) CreateBackup(c *gin.Context) {
	backup, err := ic.service.CreateBackup(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, backup)
}

// POST /restore
func (ic *InventoryController) RestoreBackup(c *gin.Context) {
	var backup models.Backup
	if err := c.ShouldBindJSON(&backup); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}
	if err := ic.service.RestoreBackup(c.Request.Context(), backup); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusOK)
}
