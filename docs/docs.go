// Package docs Swagger-описание API дашборда, поддерживается вручную по аннотациям internal/handler/http/v1
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
    "paths": {
        "/dashboard": {
            "get": {
                "description": "KPIs, per-type bars and the incident table built from the latest snapshot.",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get dashboard view model",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Dashboard"}}
                }
            }
        },
        "/dashboard/filters": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get current filters",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.FilterResponse"}}
                }
            },
            "put": {
                "description": "Replaces one facet of the current filter. Data is not reloaded until refresh.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Edit one filter facet",
                "parameters": [
                    {"description": "Facet edit", "name": "filter", "in": "body", "required": true, "schema": {"$ref": "#/definitions/v1.SetFilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/v1.FilterResponse"}},
                    "400": {"description": "Invalid request body or validation error", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/dashboard/options": {
            "get": {
                "description": "Facet catalogs for the filter drop-downs. An empty value means \"All\".",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Get filter options",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Facet"}}}
                }
            }
        },
        "/dashboard/refresh": {
            "post": {
                "description": "Reloads summary and incident list. An optional body replaces the whole filter first.\nA failed fetch keeps the previous data.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Refresh dashboard",
                "parameters": [
                    {"description": "Filter to apply", "name": "filter", "in": "body", "schema": {"$ref": "#/definitions/v1.FilterRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Dashboard"}},
                    "400": {"description": "Invalid request body", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        },
        "/dashboard/seed": {
            "post": {
                "description": "Asks the backend to generate demo records, then refreshes. Seed failures are ignored.",
                "produces": ["application/json"],
                "tags": ["Dashboard"],
                "summary": "Seed sample data",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/view.Dashboard"}}
                }
            }
        },
        "/system/health": {
            "get": {
                "description": "Get health status of the application",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["System"],
                "summary": "Get application health status",
                "responses": {
                    "200": {"description": "Status OK", "schema": {"type": "object", "additionalProperties": {"type": "string"}}}
                }
            }
        }
    },
    "definitions": {
        "models.Facet": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "options": {"type": "array", "items": {"$ref": "#/definitions/models.FacetOption"}}
            }
        },
        "models.FacetOption": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "models.FilterState": {
            "type": "object",
            "properties": {
                "precinct": {"type": "string"},
                "severity": {"type": "string"},
                "status": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "v1.FilterRequest": {
            "description": "DTO фильтра целиком",
            "type": "object",
            "properties": {
                "precinct": {"type": "string"},
                "severity": {"type": "string"},
                "status": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "v1.FilterResponse": {
            "description": "DTO текущего фильтра",
            "type": "object",
            "properties": {
                "precinct": {"type": "string"},
                "query": {"type": "object", "additionalProperties": {"type": "string"}},
                "severity": {"type": "string"},
                "status": {"type": "string"},
                "type": {"type": "string"}
            }
        },
        "v1.SetFilterRequest": {
            "description": "DTO для изменения одного фасета",
            "type": "object",
            "required": ["field"],
            "properties": {
                "field": {"type": "string", "enum": ["type", "severity", "status", "precinct"]},
                "value": {"type": "string"}
            }
        },
        "view.Bar": {
            "type": "object",
            "properties": {
                "count": {"type": "integer"},
                "fraction": {"type": "number"},
                "label": {"type": "string"},
                "percent": {"type": "number"},
                "type": {"type": "string"}
            }
        },
        "view.KPI": {
            "type": "object",
            "properties": {
                "label": {"type": "string"},
                "value": {"type": "string"}
            }
        },
        "view.Row": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "incident_id": {"type": "string"},
                "precinct": {"type": "string"},
                "response_minutes": {"type": "string"},
                "severity": {"type": "string"},
                "severity_color": {"type": "string"},
                "status": {"type": "string"},
                "status_color": {"type": "string"},
                "type": {"type": "string"},
                "type_color": {"type": "string"}
            }
        },
        "view.Dashboard": {
            "type": "object",
            "properties": {
                "bars": {"type": "array", "items": {"$ref": "#/definitions/view.Bar"}},
                "facets": {"type": "array", "items": {"$ref": "#/definitions/models.Facet"}},
                "filters": {"$ref": "#/definitions/models.FilterState"},
                "kpis": {"type": "array", "items": {"$ref": "#/definitions/view.KPI"}},
                "loading": {"type": "boolean"},
                "message": {"type": "string"},
                "rows": {"type": "array", "items": {"$ref": "#/definitions/view.Row"}},
                "updated_at": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Police Smart Analytics Dashboard API",
	Description:      "Dashboard over the police incident analytics backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
