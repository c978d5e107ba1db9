package dtos

import "github.com/init-pkg/sheet-export/domain/workbook"

type GenerateMappingRequest struct {
	WorkbookBase64 string `form:"workbook_base64" json:"workbook_base64"`
	WholesalerID   string `form:"wholesaler_id" json:"wholesaler_id" validate:"omitempty,uuid"`
}

type CreateTemplateRequest struct {
	WholesalerID   string           `json:"wholesaler_id" validate:"required,uuid"`
	Name           string           `json:"name" validate:"required"`
	WorkbookBase64 string           `json:"workbook_base64" validate:"required"`
	Mapping        workbook.Mapping `json:"mapping_json"`
}

type UpdateTemplateMappingRequest struct {
	ID      string           `json:"id" validate:"required,uuid"`
	Mapping workbook.Mapping `json:"mapping_json" validate:"required"`
}

type TemplateSummary struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	WholesalerID string `json:"wholesaler_id"`
}
