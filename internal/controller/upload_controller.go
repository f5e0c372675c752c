package controller

import (
	"io"
	"mime/multipart"

	"github.com/freshmart/catalog-service/internal/dto"
	"github.com/freshmart/catalog-service/internal/service"
	"github.com/freshmart/catalog-service/pkg/errs"
	"github.com/freshmart/catalog-service/pkg/response"
	"github.com/freshmart/catalog-service/pkg/validation"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

const maxUploadFiles = 5

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type UploadController struct {
	service service.UploadService
}

func CreateUploadController(e *echo.Group, service service.UploadService, isLoggedIn echo.MiddlewareFunc) {
	c := UploadController{
		service: service,
	}
	e.POST("/categories/upload", c.UploadImages, isLoggedIn)
	e.POST("/products/upload", c.UploadImages, isLoggedIn)
	e.DELETE("/categories/images", c.DeleteImageByURL, isLoggedIn)
	e.GET("/uploads", c.GetImageUploads)
	e.DELETE("/uploads", c.DeleteAllImageUploads, isLoggedIn)
}

func (c *UploadController) UploadImages(e echo.Context) error {
	form, err := e.MultipartForm()
	if err != nil {
		log.Error().Err(err).Str("component", "UploadImages").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	fileHeaders := form.File["images"]
	if len(fileHeaders) == 0 || len(fileHeaders) > maxUploadFiles {
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	files := make([]io.Reader, 0, len(fileHeaders))
	closers := make([]multipart.File, 0, len(fileHeaders))
	defer func() {
		for _, f := range closers {
			f.Close()
		}
	}()

	for _, fileHeader := range fileHeaders {
		if !allowedImageTypes[fileHeader.Header.Get("Content-Type")] {
			return response.WriteErrorResponse(e, errs.ErrNotAnImage, nil)
		}

		file, err := fileHeader.Open()
		if err != nil {
			log.Error().Err(err).Str("component", "UploadImages").Msg("")
			return response.WriteErrorResponse(e, errs.ErrInternalServer, nil)
		}

		closers = append(closers, file)
		files = append(files, file)
	}

	assets, err := c.service.UploadImages(e.Request().Context(), files)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteCreatedResponse(e, "", dto.UploadedFilesResponse{Files: assets})
}

func (c *UploadController) DeleteImageByURL(e echo.Context) error {
	payload := dto.DeleteImageRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Error().Err(err).Str("component", "DeleteImageByURL").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	if err := e.Validate(&payload); err != nil {
		return response.WriteErrorResponse(e, errs.ErrClient, validation.MapValidationErrors(err))
	}

	err = c.service.DeleteImageByURL(e.Request().Context(), payload.ImgURL)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "Image deleted successfully", nil)
}

func (c *UploadController) GetImageUploads(e echo.Context) error {
	data, err := c.service.GetImageUploads(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", data)
}

func (c *UploadController) DeleteAllImageUploads(e echo.Context) error {
	deleted, err := c.service.DeleteAllImageUploads(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", deleted)
}
