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

type ReviewController struct {
	service service.ReviewService
}

func CreateReviewController(e *echo.Group, service service.ReviewService, isLoggedIn echo.MiddlewareFunc) {
	c := ReviewController{
		service: service,
	}
	e.POST("/reviews", c.AddReview)
	e.GET("/reviews/:productId", c.GetProductReviews)
	e.DELETE("/reviews/:reviewId", c.DeleteReview, isLoggedIn)
}

func (c *ReviewController) AddReview(e echo.Context) error {
	payload := dto.ReviewRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "AddReview").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.MapValidationErrors(err))
	}

	review, err := c.service.AddReview(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", review)
}

func (c *ReviewController) GetProductReviews(e echo.Context) error {
	productID := e.Param("productId")
	resp, err := c.service.GetProductReviews(e.Request().Context(), productID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", resp)
}

func (c *ReviewController) DeleteReview(e echo.Context) error {
	reviewID := e.Param("reviewId")
	err := c.service.DeleteReview(e.Request().Context(), reviewID)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Review deleted successfully", nil)
}
