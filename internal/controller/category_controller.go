package controller

import (
	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/service"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/response"
	"github.com/freshmart/catalog-service/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService, isLoggedIn echo.MiddlewareFunc) {
	c := CategoryController{
		service: service,
	}
	e.POST("/categories", c.AddCategory, isLoggedIn)
	e.GET("/categories", c.GetCategories)
	e.GET("/categories/counts", c.GetCategoryCounts)
	e.GET("/categories/:id", c.GetCategoryByID)
	e.GET("/categories/:id/product-count", c.GetCategoryProductCount)
	e.PUT("/categories/:id", c.UpdateCategory, isLoggedIn)
	e.DELETE("/categories/:id", c.DeleteCategory, isLoggedIn)
}

func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.MapValidationErrors(err))
	}

	category, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Category created successfully", category)
}

func (c *CategoryController) GetCategories(e echo.Context) error {
	data, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if len(data) == 0 {
		return response.WriteErrorResponse(e, errs.ErrNotFound, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *CategoryController) GetCategoryCounts(e echo.Context) error {
	counts, err := c.service.GetCategoryCounts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", counts)
}

func (c *CategoryController) GetCategoryByID(e echo.Context) error {
	id := e.Param("id")
	category, err := c.service.GetCategoryByID(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", category)
}

func (c *CategoryController) GetCategoryProductCount(e echo.Context) error {
	id := e.Param("id")
	count, err := c.service.GetCategoryProductCount(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.ProductCountResponse{Count: count})
}

func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryUpdateRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.MapValidationErrors(err))
	}

	payload.ID = e.Param("id")
	category, err := c.service.UpdateCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", category)
}

func (c *CategoryController) DeleteCategory(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Category deleted successfully", nil)
}
