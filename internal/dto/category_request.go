package dto

type CategoryRequest struct {
	ID       string   `json:"id" param:"id"`
	Name     string   `json:"name" validate:"required"`
	Slug     string   `json:"slug"`
	Images   []string `json:"images" validate:"required,min=1"`
	Color    string   `json:"color" validate:"omitempty,hexcolor"`
	ParentID string   `json:"parentId"`
}

type CategoryUpdateRequest struct {
	ID       string   `json:"id" param:"id"`
	Name     string   `json:"name"`
	Slug     string   `json:"slug"`
	Images   []string `json:"images"`
	Color    string   `json:"color" validate:"omitempty,hexcolor"`
	ParentID string   `json:"parentId"`
}

type SubCategoryRequest struct {
	Name     string `json:"name" validate:"required"`
	ParentID string `json:"parentId"`
}

type DeleteImageRequest struct {
	ImgURL string `json:"imgUrl" validate:"required"`
}
