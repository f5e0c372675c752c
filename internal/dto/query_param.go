package dto

type ProductFilter struct {
	Page          uint64 `query:"page"`
	Limit         uint64 `query:"limit"`
	CategoryID    string `query:"category"`
	SubCategoryID string `query:"subCategory"`
	Brand         string `query:"brand"`
	IsFeatured    string `query:"isFeatured"`
	Search        string `query:"search"`
	SortBy        string `query:"sortBy"`
}

type SubCategoryFilter struct {
	ParentID string `query:"parentId"`
	Name     string `query:"name"`
	Sort     string `query:"sort"`
	Order    string `query:"order"`
}
