// Package docs holds the swagger document served under /swagger.
// Regenerate with: swag init -g cmd/api/main.go --parseDependency
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "AdminToken": {
            "type": "apiKey",
            "name": "x-admin-token",
            "in": "header"
        }
    },
    "paths": {
        "/api/excel/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "tags": ["export"],
                "summary": "Fill a template and download it",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"type": "object"}}],
                "responses": {"200": {"description": "OK", "schema": {"type": "file"}}}
            }
        },
        "/api/mapping/generate": {
            "post": {
                "security": [{"AdminToken": []}],
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "tags": ["mapping"],
                "summary": "Generate a field mapping for a workbook",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/excel-parsers/scan": {
            "post": {
                "security": [{"AdminToken": []}],
                "consumes": ["multipart/form-data", "application/json"],
                "produces": ["application/json"],
                "tags": ["excel-parser"],
                "summary": "Scan a workbook for label cells",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/templates": {
            "get": {
                "security": [{"AdminToken": []}],
                "tags": ["templates"],
                "summary": "List templates",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            },
            "post": {
                "security": [{"AdminToken": []}],
                "tags": ["templates"],
                "summary": "Create a template",
                "responses": {"200": {"description": "OK", "schema": {"type": "object"}}}
            }
        },
        "/api/breww/search": {
            "post": {
                "tags": ["breww"],
                "summary": "Search catalog products",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"type": "object"}}}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Sheet export API",
	Description:      "Wholesaler spreadsheet templates, field mappings and exports.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
