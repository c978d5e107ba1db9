package dtos

type CatalogSearchRequest struct {
	Query string `json:"query" validate:"required"`
}

type StockItemsRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type CreateWholesalerRequest struct {
	Name       string  `json:"name" validate:"required"`
	Slug       string  `json:"slug" validate:"required"`
	BrandColor *string `json:"brand_color"`
}

type SettingsRequest struct {
	ID             *string `json:"id" validate:"omitempty,uuid"`
	BrewwSubdomain *string `json:"breww_subdomain"`
	BrewwApiKey    *string `json:"breww_api_key"`
	CorsProxy      *string `json:"cors_proxy"`
	GeminiApiKey   *string `json:"gemini_api_key"`
}
