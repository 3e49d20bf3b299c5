// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"strconv"

	"atelier/internal/delivery/http/response"
	"atelier/internal/domain/entity"
	"atelier/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CatalogHandler serves the public, read-only catalog endpoints.
type CatalogHandler struct {
	uc usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler, injected by Fx.
func NewCatalogHandler(uc usecase.CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// ListProjects handles the catalog listing request with optional filters.
func (h *CatalogHandler) ListProjects(c echo.Context) error {
	filter, err := filterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	projects, err := h.uc.ListProjects(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// GetProject handles the detail view request, addressed by project name.
func (h *CatalogHandler) GetProject(c echo.Context) error {
	project, err := h.uc.GetProjectByName(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, project, "")
}

// SimilarProjects handles the detail page's similar entries strip.
func (h *CatalogHandler) SimilarProjects(c echo.Context) error {
	projects, err := h.uc.SimilarProjects(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, projects, "")
}

// ShareQR returns a PNG QR code linking to the project detail page.
func (h *CatalogHandler) ShareQR(c echo.Context) error {
	qrBytes, err := h.uc.GenerateShareQR(c.Request().Context(), c.Param("name"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", qrBytes)
}

// filterFromQuery parses the optional listing filters. Absent params
// leave the dimension unconstrained.
func filterFromQuery(c echo.Context) (*usecase.ProjectFilter, error) {
	filter := &usecase.ProjectFilter{}

	if raw := c.QueryParam("category"); raw != "" {
		category := entity.Category(raw)
		if !category.Valid() {
			return nil, errors.Errorf("unknown category: %s", raw)
		}
		filter.Category = &category
	}

	if raw := c.QueryParam("bedrooms"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("bedrooms must be a number")
		}
		filter.Bedrooms = &v
	}

	if raw := c.QueryParam("bathrooms"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("bathrooms must be a number")
		}
		filter.Bathrooms = &v
	}

	if raw := c.QueryParam("hasGarage"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, errors.New("hasGarage must be true or false")
		}
		filter.HasGarage = &v
	}

	if raw := c.QueryParam("maxMP"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("maxMP must be a number")
		}
		filter.MaxMP = &v
	}

	if raw := c.QueryParam("priceMin"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("priceMin must be a number")
		}
		filter.PriceMin = &v
	}

	if raw := c.QueryParam("priceMax"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("priceMax must be a number")
		}
		filter.PriceMax = &v
	}

	return filter, nil
}
