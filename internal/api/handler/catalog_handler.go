package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushq/attendance-system/internal/core/ports"
)

// CatalogHandler serves CRUD for one academic reference collection. The six
// catalogs (faculties, majors, education levels, classes, subjects, rooms)
// share this handler parameterised by entity type and ID path parameter.
type CatalogHandler[T any] struct {
	repo    ports.CatalogRepository[T]
	idParam string
}

func NewCatalogHandler[T any](repo ports.CatalogRepository[T], idParam string) *CatalogHandler[T] {
	return &CatalogHandler[T]{repo: repo, idParam: idParam}
}

// Register mounts the five CRUD routes under the given prefix. Reads stay
// open; mutations go behind the admin gate.
func (h *CatalogHandler[T]) Register(g *echo.Group, prefix string, adminGate echo.MiddlewareFunc) {
	g.GET(prefix, h.List)
	g.GET(prefix+"/:"+h.idParam, h.Get)
	g.POST(prefix, h.Create, adminGate)
	g.PUT(prefix+"/:"+h.idParam, h.Update, adminGate)
	g.DELETE(prefix+"/:"+h.idParam, h.Delete, adminGate)
}

func (h *CatalogHandler[T]) List(c echo.Context) error {
	skip, limit := listRange(c)
	entities, err := h.repo.List(c.Request().Context(), skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entities)
}

func (h *CatalogHandler[T]) Get(c echo.Context) error {
	entity, err := h.repo.Get(c.Request().Context(), c.Param(h.idParam))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *CatalogHandler[T]) Create(c echo.Context) error {
	var entity T
	if err := c.Bind(&entity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.repo.Create(c.Request().Context(), &entity); err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, entity)
}

func (h *CatalogHandler[T]) Update(c echo.Context) error {
	var entity T
	if err := c.Bind(&entity); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.repo.Update(c.Request().Context(), c.Param(h.idParam), &entity); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *CatalogHandler[T]) Delete(c echo.Context) error {
	if err := h.repo.Delete(c.Request().Context(), c.Param(h.idParam)); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
