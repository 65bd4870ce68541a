package select_category

// SelectCategoryRequest HTTP request model
type SelectCategoryRequest struct {
	CategorySlug string `json:"categorySlug"`
}
