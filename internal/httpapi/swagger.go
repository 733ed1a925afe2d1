package httpapi

import (
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
	"github.com/swaggo/swag"
)

type swaggerDoc struct{}

func (swaggerDoc) ReadDoc() string { return openAPIDoc }

func init() {
	swag.Register(swag.Name, swaggerDoc{})
}

// MountSwagger serves the API description and Swagger UI under /swagger/.
func MountSwagger(r chi.Router) {
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
}

const openAPIDoc = `{
  "swagger": "2.0",
  "info": {
    "title": "moduled API",
    "description": "HTTP API for switching the current engine module.",
    "version": "1.0"
  },
  "basePath": "/",
  "schemes": ["http"],
  "paths": {
    "/modules": {
      "get": {
        "summary": "List module identifiers",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ModulesResponse"}}}
      }
    },
    "/module": {
      "get": {
        "summary": "Current module",
        "produces": ["application/json"],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.CurrentModuleResponse"}}}
      },
      "put": {
        "summary": "Switch the current module",
        "consumes": ["application/json"],
        "produces": ["application/json"],
        "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/types.SwitchRequest"}}],
        "responses": {
          "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.SwitchResponse"}},
          "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/types.ErrorResponse"}},
          "415": {"description": "Unsupported Media Type", "schema": {"$ref": "#/definitions/types.ErrorResponse"}}
        }
      }
    },
    "/events/recent": {
      "get": {
        "summary": "Retained engine events newer than a sequence number",
        "produces": ["application/json"],
        "parameters": [{"in": "query", "name": "since", "type": "integer"}],
        "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RecentEventsResponse"}}}
      }
    },
    "/events": {
      "get": {
        "summary": "Stream engine notifications as NDJSON",
        "produces": ["application/x-ndjson"],
        "responses": {"200": {"description": "stream of types.EventMessage"}}
      }
    }
  },
  "definitions": {
    "types.ModulesResponse": {"type": "object", "properties": {"modules": {"type": "array", "items": {"type": "string"}}}},
    "types.CurrentModuleResponse": {"type": "object", "properties": {"id": {"type": "string", "example": "one"}}},
    "types.SwitchRequest": {"type": "object", "properties": {"id": {"type": "string", "example": "another"}}},
    "types.SwitchResponse": {"type": "object", "properties": {"id": {"type": "string"}, "changed": {"type": "boolean"}, "op_id": {"type": "string"}}},
    "types.EventMessage": {"type": "object", "properties": {"id": {"type": "string"}, "seq": {"type": "integer"}, "name": {"type": "string"}, "module_id": {"type": "string"}, "time_unix_ms": {"type": "integer"}}},
    "types.RecentEventsResponse": {"type": "object", "properties": {"events": {"type": "array", "items": {"$ref": "#/definitions/types.EventMessage"}}}},
    "types.ErrorResponse": {"type": "object", "properties": {"error": {"type": "string"}, "code": {"type": "integer"}}}
  }
}`
