package bootstrap

import (
	"go.uber.org/fx"

	catalog_module "github.com/init-pkg/sheet-export/internal/app/catalog"
	excel_parser_module "github.com/init-pkg/sheet-export/internal/app/excel-parser"
	export_module "github.com/init-pkg/sheet-export/internal/app/export"
	fields_module "github.com/init-pkg/sheet-export/internal/app/fields"
	mapping_module "github.com/init-pkg/sheet-export/internal/app/mapping"
	settings_module "github.com/init-pkg/sheet-export/internal/app/settings"
	templates_module "github.com/init-pkg/sheet-export/internal/app/templates"
	wholesalers_module "github.com/init-pkg/sheet-export/internal/app/wholesalers"
)

func appOptions() fx.Option {
	return fx.Options(
		settings_module.Register(),
		wholesalers_module.Register(),
		fields_module.Register(),
		excel_parser_module.Register(),
		mapping_module.Register(),
		templates_module.Register(),
		catalog_module.Register(),
		export_module.Register(),
	)
}
