package dto

import (
	"strings"

	"github.com/freshmart/catalog-service/internal/domain"
)

type CategoryCountsResponse struct {
	ParentCategories uint64 `json:"parentCategories"`
	SubCategories    uint64 `json:"subCategories"`
}

type ParentCategoryResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Slug   string   `json:"slug"`
	Images []string `json:"images"`
	Color  string   `json:"color"`
}

type SubCategoryResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Slug           string                  `json:"slug"`
	ParentID       string                  `json:"parentId,omitempty"`
	ParentCategory *ParentCategoryResponse `json:"parentCategory"`
}

type ProductCountResponse struct {
	Count uint64 `json:"count"`
}

func BuildSubCategoryResponse(sub domain.SubCategory, parent *domain.Category) SubCategoryResponse {
	resp := SubCategoryResponse{
		ID:   sub.ID.Hex(),
		Name: sub.Name,
		Slug: strings.ToLower(sub.Name),
	}

	if sub.ParentID != nil {
		resp.ParentID = sub.ParentID.Hex()
	}

	if parent != nil {
		resp.ParentCategory = &ParentCategoryResponse{
			ID:     parent.ID.Hex(),
			Name:   parent.Name,
			Slug:   parent.Slug,
			Images: parent.Images,
			Color:  parent.Color,
		}
	}

	return resp
}
