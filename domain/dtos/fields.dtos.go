package dtos

type EnsureFieldsRequest struct {
	Keys         []string `json:"keys"`
	Scope        string   `json:"scope" validate:"omitempty,oneof=global wholesaler"`
	WholesalerID *string  `json:"wholesaler_id" validate:"omitempty,uuid"`
	Source       string   `json:"source"`
}

type SetFieldValuesRequest struct {
	Items []SetFieldValueItem `json:"items" validate:"dive"`
}

// Value stays untyped: non-string values are stored as an empty string.
type SetFieldValueItem struct {
	FieldDefinitionID string `json:"field_definition_id" validate:"required,uuid"`
	Value             any    `json:"value"`
}
