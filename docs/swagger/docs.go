// Package swagger holds the generated OpenAPI document served at /swagger.
// Regenerate with: swag init -g cmd/start.go -o docs/swagger
package swagger

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
        "/notes": {
            "get": {
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "List notes",
                "parameters": [
                    {"type": "string", "name": "contents", "in": "query"},
                    {"type": "integer", "name": "number_min", "in": "query"},
                    {"type": "integer", "name": "number_max", "in": "query"},
                    {"type": "string", "name": "order", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "Notes", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Note"}}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Create notes",
                "description": "Create a single note (JSON object) or many notes in bulk (JSON array). A bulk request is all-or-nothing.",
                "responses": {
                    "201": {"description": "Created", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Note"}}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/bulk.BatchError"}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Bulk update notes",
                "description": "Update many notes in one request, matched to records by the identifier field. The whole batch fails on any duplicate, invalid, or unresolved identifier.",
                "responses": {
                    "200": {"description": "Updated, in request order", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Note"}}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/bulk.BatchError"}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["notes"],
                "summary": "Partially bulk update notes",
                "description": "Same as the bulk update, but items may omit fields.",
                "responses": {
                    "200": {"description": "Updated, in request order", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Note"}}},
                    "400": {"description": "Validation failure", "schema": {"$ref": "#/definitions/bulk.BatchError"}},
                    "500": {"description": "Internal Server Error"}
                }
            },
            "delete": {
                "tags": ["notes"],
                "summary": "Bulk destroy notes",
                "description": "Delete all notes matched by the query filters. Rejected when no filtering is applied; ordering alone does not count as filtering.",
                "parameters": [
                    {"type": "string", "name": "contents", "in": "query"},
                    {"type": "integer", "name": "number_min", "in": "query"},
                    {"type": "integer", "name": "number_max", "in": "query"}
                ],
                "responses": {
                    "204": {"description": "Deleted"},
                    "400": {"description": "Unfiltered destroy rejected", "schema": {"$ref": "#/definitions/bulk.BatchError"}},
                    "500": {"description": "Internal Server Error"}
                }
            }
        }
    },
    "definitions": {
        "bulk.BatchError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "detail": {"type": "string"},
                "field": {"type": "string"},
                "values": {"type": "array", "items": {}}
            }
        },
        "models.Note": {
            "type": "object",
            "properties": {
                "contents": {"type": "string"},
                "id": {"type": "integer"},
                "number": {"type": "integer"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Bulk Manager API",
	Description:      "REST API with bulk create, update, and delete semantics.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
