package dto

type ReviewRequest struct {
	ProductID string `json:"product" validate:"required"`
	UserID    string `json:"user"`
	Rating    int    `json:"rating" validate:"required"`
	Comment   string `json:"comment" validate:"required"`
}
