package settings_http_handler

import (
	"github.com/gofiber/fiber/v3"

	"github.com/init-pkg/sheet-export/domain/app"
	"github.com/init-pkg/sheet-export/domain/dtos"
	"github.com/init-pkg/sheet-export/domain/models"
	"github.com/init-pkg/sheet-export/internal/config"
	"github.com/init-pkg/sheet-export/internal/shared/httpx"
)

type SettingsHttpHandler struct {
	service    app.SettingsService
	adminToken string
}

func New(service app.SettingsService, cfg *config.Config) *SettingsHttpHandler {
	return &SettingsHttpHandler{service, cfg.Http.AdminToken}
}

func (this *SettingsHttpHandler) Register(mainApp *fiber.App) {
	var app = mainApp.Group("/api/settings", httpx.AdminOnly(this.adminToken))

	app.Get("/", this.get)
	app.Post("/", this.upsert)
}

// get godoc
// @Summary  Stored integration settings
// @Tags     settings
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Success  200 {object} models.Settings
// @Router   /api/settings [get]
func (this *SettingsHttpHandler) get(fctx fiber.Ctx) error {
	s, err := this.service.Get(fctx.Context())
	if err != nil {
		return err
	}
	return fctx.JSON(s)
}

// upsert godoc
// @Summary  Save integration settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Param    x-admin-token header string true "Admin token"
// @Param    body body dtos.SettingsRequest true "Settings"
// @Success  200 {object} models.Settings
// @Router   /api/settings [post]
func (this *SettingsHttpHandler) upsert(fctx fiber.Ctx) error {
	var req dtos.SettingsRequest
	if err := httpx.Bind(fctx, &req); err != nil {
		return err
	}

	s := &models.Settings{
		BrewwSubdomain: req.BrewwSubdomain,
		BrewwApiKey:    req.BrewwApiKey,
		CorsProxy:      req.CorsProxy,
		GeminiApiKey:   req.GeminiApiKey,
	}
	if req.ID != nil {
		s.ID = *req.ID
	}

	saved, err := this.service.Upsert(fctx.Context(), s)
	if err != nil {
		return err
	}
	return fctx.JSON(saved)
}
