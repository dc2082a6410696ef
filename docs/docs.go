// Package docs registers the OpenAPI document served at /swagger/doc.json.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/v1/tasks": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "List tasks",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Add a task",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/http.addReq"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "400": {"description": "Invalid date format", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Search tasks",
                "parameters": [{"type": "string", "name": "keyword", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/tasks/stats": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Task statistics",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/tasks/sort": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Sort tasks",
                "parameters": [{"type": "string", "enum": ["alpha", "deadline"], "name": "by", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}}}
            }
        },
        "/api/v1/tasks/save": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Save tasks to the task file",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Write failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/load": {
            "post": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Reload tasks from the task file",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "500": {"description": "Read failed", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{index}/done": {
            "patch": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Mark a task as done",
                "parameters": [{"type": "integer", "name": "index", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Invalid task number", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/api/v1/tasks/{index}": {
            "delete": {
                "produces": ["application/json"],
                "tags": ["Tasks"],
                "summary": "Delete a task",
                "parameters": [{"type": "integer", "name": "index", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Resp"}},
                    "404": {"description": "Invalid task number", "schema": {"$ref": "#/definitions/response.Resp"}}
                }
            }
        },
        "/health": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Health check", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Readiness check", "responses": {"200": {"description": "OK"}}}
        },
        "/live": {
            "get": {"produces": ["application/json"], "tags": ["Health"], "summary": "Liveness check", "responses": {"200": {"description": "OK"}}}
        }
    },
    "definitions": {
        "http.addReq": {
            "type": "object",
            "required": ["deadline"],
            "properties": {
                "description": {"type": "string"},
                "deadline": {"type": "string", "example": "31/12/2025"}
            }
        },
        "response.Resp": {
            "type": "object",
            "properties": {
                "error_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "errors": {}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "To-do Tracker API",
	Description:      "Personal task tracker with DD/MM/YYYY deadlines and flat-file persistence.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
