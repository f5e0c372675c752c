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

type SubCategoryController struct {
	service service.SubCategoryService
}

func CreateSubCategoryController(e *echo.Group, service service.SubCategoryService, isLoggedIn echo.MiddlewareFunc) {
	c := SubCategoryController{
		service: service,
	}
	e.POST("/subcategories", c.AddSubCategory, isLoggedIn)
	e.GET("/subcategories/with-parent", c.GetSubCategories)
	e.GET("/subcategories/by-parent/:parentId", c.GetSubCategoriesByParent)
	e.DELETE("/subcategories/:id", c.DeleteSubCategory, isLoggedIn)
}

func (c *SubCategoryController) AddSubCategory(e echo.Context) error {
	payload := dto.SubCategoryRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddSubCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.MapValidationErrors(err))
	}

	subCategory, err := c.service.AddSubCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "Subcategory created successfully", subCategory)
}

func (c *SubCategoryController) GetSubCategories(e echo.Context) error {
	param := dto.SubCategoryFilter{}
	err := e.Bind(&param)
	if err != nil {
		log.Error().Err(err).Str("component", "GetSubCategories").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	data, err := c.service.GetSubCategories(e.Request().Context(), param)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *SubCategoryController) GetSubCategoriesByParent(e echo.Context) error {
	parentID := e.Param("parentId")
	data, err := c.service.GetSubCategoriesByParent(e.Request().Context(), parentID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *SubCategoryController) DeleteSubCategory(e echo.Context) error {
	id := e.Param("id")
	err := c.service.DeleteSubCategory(e.Request().Context(), id)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Subcategory deleted successfully", nil)
}
