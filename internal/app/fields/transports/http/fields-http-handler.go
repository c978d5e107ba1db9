package fields_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/domain/fields"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type FieldsHttpHandler struct {
	service    app.FieldRegistryService
	adminToken string
}

func New(service app.FieldRegistryService, cfg *config.Config) *FieldsHttpHandler {
	return &FieldsHttpHandler{service, cfg.Http.AdminToken}
}

func (this *FieldsHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/fields", httpx.AdminOnly(this.adminToken))

	app.Post("/ensure", this.ensure)
	app.Get("/values", this.listValues)
	app.Post("/values", this.setValues)
}

// ensure godoc
// @Summary  Register field keys
// @Tags     fields
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.EnsureFieldsRequest true "Keys to register"
// @Success  200 {object} httpx.OK
// @Router   /api/fields/ensure [post]
func (this *FieldsHttpHandler) ensure(fctx fiber.Ctx) error {
	var req dtos.EnsureFieldsRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	err := this.service.Ensure(fctx.Context(), app.EnsureFieldsRequest{
		Keys:         req.Keys,
		Scope:        fields.Scope(req.Scope),
		WholesalerID: req.WholesalerID,
		Source:       fields.Source(req.Source),
	})
	if err != nil {
		return err
	}
	return fctx.JSON(httpx.OK{Ok: true})
}

// listValues godoc
// @Summary  Field definitions with their stored value
// @Tags     fields
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    scope query string false "global or wholesaler"
// @Param    wholesaler_id query string false "Required for wholesaler scope"
// @Success  200 {array} models.FieldDefinition
// @Router   /api/fields/values [get]
func (this *FieldsHttpHandler) listValues(fctx fiber.Ctx) error {
	var wholesalerID *string
	if id := fctx.Query("wholesaler_id"); id != "" {
		wholesalerID = &id
	}

	defs, err := this.service.ListValues(fctx.Context(), fields.Scope(fctx.Query("scope")), wholesalerID)
	if err != nil {
		return err
	}
	return fctx.JSON(defs)
}

// setValues godoc
// @Summary  Store field values
// @Tags     fields
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.SetFieldValuesRequest true "Values by definition id"
// @Success  200 {object} httpx.OK
// @Router   /api/fields/values [post]
func (this *FieldsHttpHandler) setValues(fctx fiber.Ctx) error {
	var req dtos.SetFieldValuesRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	items := make([]app.FieldValueItem, 0, len(req.Items))
	for _, item := range req.Items {
		// non-string values are stored empty
		value, _ := item.Value.(string)
		items = append(items, app.FieldValueItem{FieldDefinitionID: item.FieldDefinitionID, Value: value})
	}

	if err := this.service.SetValues(fctx.Context(), items); err != nil {
		return err
	}
	return fctx.JSON(httpx.OK{Ok: true})
}
