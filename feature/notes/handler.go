package notes

import (
	"bytes"
	"encoding/json"
	"errors"
	"strconv"

	"bulk-manager/core/bulk"
	"bulk-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the notes resource.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the notes routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/notes")
	group.Get("/", h.HandleList)
	group.Post("/", h.HandleCreate)
	group.Put("/", h.HandleBulkUpdate)
	group.Patch("/", h.HandlePartialBulkUpdate)
	group.Delete("/", h.HandleBulkDestroy)
}

// HandleList returns the notes matching the query filters.
// @Summary List notes
// @Description List notes, optionally filtered and ordered via query parameters.
// @Tags notes
// @Produce json
// @Param contents query string false "Exact contents match"
// @Param number_min query int false "Minimum number (inclusive)"
// @Param number_max query int false "Maximum number (inclusive)"
// @Param order query string false "Ordering: number, -number, contents, -contents"
// @Success 200 {array} models.Note "Notes"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notes [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	query := applyOrdering(applyFilters(h.service.Collection(), c), c)
	recs, err := h.service.List(query)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// HandleCreate creates one note or, given a JSON array, many notes.
// @Summary Create notes
// @Description Create a single note (JSON object) or many notes in bulk (JSON array). A bulk request is all-or-nothing.
// @Tags notes
// @Accept json
// @Produce json
// @Success 201 {array} models.Note "Created"
// @Failure 400 {object} bulk.BatchError "Validation failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notes [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	body := bytes.TrimSpace(c.Body())

	// A leading bracket means a bulk request; anything else takes the
	// singular path, mirroring how both shapes share the POST method.
	if len(body) > 0 && body[0] == '[' {
		var items []bulk.Payload
		if err := json.Unmarshal(body, &items); err != nil {
			return h.badBody(c, err)
		}
		recs, err := h.service.BulkCreate(items)
		if err != nil {
			return h.fail(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(recs)
	}

	var item bulk.Payload
	if err := json.Unmarshal(body, &item); err != nil {
		return h.badBody(c, err)
	}
	rec, err := h.service.Create(item)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(rec)
}

// HandleBulkUpdate applies a full update to many notes at once.
// @Summary Bulk update notes
// @Description Update many notes in one request. Items are matched to records by the identifier field; the whole batch fails on any duplicate, invalid, or unresolved identifier.
// @Tags notes
// @Accept json
// @Produce json
// @Param contents query string false "Restrict targets: exact contents match"
// @Param number_min query int false "Restrict targets: minimum number"
// @Param number_max query int false "Restrict targets: maximum number"
// @Success 200 {array} models.Note "Updated, in request order"
// @Failure 400 {object} bulk.BatchError "Validation failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notes [put]
func (h *Handler) HandleBulkUpdate(c *fiber.Ctx) error {
	return h.bulkUpdate(c, false)
}

// HandlePartialBulkUpdate is HandleBulkUpdate with partial semantics:
// items may carry any subset of mutable fields.
// @Summary Partially bulk update notes
// @Description Same as the bulk update, but items may omit fields.
// @Tags notes
// @Accept json
// @Produce json
// @Success 200 {array} models.Note "Updated, in request order"
// @Failure 400 {object} bulk.BatchError "Validation failure"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notes [patch]
func (h *Handler) HandlePartialBulkUpdate(c *fiber.Ctx) error {
	return h.bulkUpdate(c, true)
}

func (h *Handler) bulkUpdate(c *fiber.Ctx, partial bool) error {
	var items []bulk.Payload
	if err := json.Unmarshal(c.Body(), &items); err != nil {
		return h.badBody(c, err)
	}

	// Updates are restricted to the caller-filtered collection.
	target := applyFilters(h.service.Collection(), c)
	recs, err := h.service.BulkUpdate(target, items, partial)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(recs)
}

// HandleBulkDestroy deletes every note in the filtered collection.
// @Summary Bulk destroy notes
// @Description Delete all notes matched by the query filters. Rejected when no filtering is applied; ordering alone does not count as filtering.
// @Tags notes
// @Param contents query string false "Exact contents match"
// @Param number_min query int false "Minimum number (inclusive)"
// @Param number_max query int false "Maximum number (inclusive)"
// @Success 204 "Deleted"
// @Failure 400 {object} bulk.BatchError "Unfiltered destroy rejected"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /notes [delete]
func (h *Handler) HandleBulkDestroy(c *fiber.Ctx) error {
	base := h.service.Collection()
	filtered := applyOrdering(applyFilters(h.service.Collection(), c), c)

	count, err := h.service.BulkDestroy(base, filtered)
	if err != nil {
		return h.fail(c, err)
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Info("Bulk destroy completed", zap.Int64("deleted", count))
	return c.SendStatus(fiber.StatusNoContent)
}

// fail maps batch errors to 400 with the structured error as body and
// everything else to 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var be *bulk.BatchError
	if errors.As(err, &be) {
		return c.Status(fiber.StatusBadRequest).JSON(be)
	}

	l := logger.WithRayID(h.service.logger, c)
	l.Error("Notes request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}

func (h *Handler) badBody(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": "invalid request body: " + err.Error(),
	})
}

// applyFilters narrows the query from the request's filter parameters.
func applyFilters(query *gorm.DB, c *fiber.Ctx) *gorm.DB {
	if v := c.Query("contents"); v != "" {
		query = query.Where("contents = ?", v)
	}
	if v := c.Query("number_min"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			query = query.Where("number >= ?", n)
		}
	}
	if v := c.Query("number_max"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			query = query.Where("number <= ?", n)
		}
	}
	return query
}

// applyOrdering adds the requested sort clause. Ordering never narrows the
// collection; the destroy-safety predicate discards it.
func applyOrdering(query *gorm.DB, c *fiber.Ctx) *gorm.DB {
	switch c.Query("order") {
	case "number":
		query = query.Order("number ASC")
	case "-number":
		query = query.Order("number DESC")
	case "contents":
		query = query.Order("contents ASC")
	case "-contents":
		query = query.Order("contents DESC")
	}
	return query
}
