// Package docs registers the OpenAPI description served at /swagger/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "API Support"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/cities": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List all cities",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/cities/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get one city",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/api/v1/cities/{id}/categories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List travel categories for a city",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/cities/{id}/categories/{category}/subcategories": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "List subcategories for a city and category",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "category", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/plans/generate": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Generate a travel plan",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/api/v1/plans/save": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "Save a generated plan",
                "responses": {
                    "200": {"description": "OK"},
                    "500": {"description": "Internal Server Error"}
                }
            }
        },
        "/api/v1/plans/saved": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Plans"],
                "summary": "List saved plans",
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Trip Planner API",
	Description:      "Travel itinerary planning service.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
