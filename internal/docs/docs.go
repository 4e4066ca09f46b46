// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/kittens-api/main.go -o internal/docs
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
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness probe",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.healthResponse"}}
                }
            }
        },
        "/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a user and issue a token pair",
                "parameters": [
                    {"description": "Credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.tokenPairResponse"}},
                    "400": {"description": "missing parameter, username taken or credentials too long", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/token": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange credentials for a token pair",
                "parameters": [
                    {"description": "Credentials", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.credentialsRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.tokenPairResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "invalid credentials", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/token/refresh": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Exchange a refresh token for a new access token",
                "parameters": [
                    {"description": "Refresh token", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.refreshRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.accessTokenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "invalid token", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/breeds": {
            "get": {
                "produces": ["application/json"],
                "tags": ["breeds"],
                "summary": "List breeds",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.breedResponse"}}}
                }
            }
        },
        "/kittens": {
            "get": {
                "produces": ["application/json"],
                "tags": ["kittens"],
                "summary": "List kittens",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.kittenSummaryResponse"}}}
                }
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "description": "Someone else's kitten is reported as not found.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kittens"],
                "summary": "Partially update a kitten owned by the caller",
                "parameters": [
                    {"description": "Kitten id and the fields to change", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kittenUpdateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.kittenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "404": {"description": "kitten not found", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "Any owner value in the payload is ignored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kittens"],
                "summary": "Create a kitten owned by the caller",
                "parameters": [
                    {"description": "Kitten", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kittenRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/handler.kittenResponse"}},
                    "400": {"description": "field errors", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "tags": ["kittens"],
                "summary": "Delete a kitten owned by the caller",
                "parameters": [
                    {"description": "Kitten", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kittenIDRequest"}}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "404": {"description": "kitten not found", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/kittens/by-breed": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kittens"],
                "summary": "List kittens of a breed",
                "parameters": [
                    {"description": "Breed", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.breedIDRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/handler.kittenSummaryResponse"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "404": {"description": "no kittens found", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/kittens/detail": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["kittens"],
                "summary": "Kitten detail",
                "parameters": [
                    {"description": "Kitten", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.kittenIDRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/handler.kittenResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "404": {"description": "kitten not found", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        },
        "/ratings": {
            "post": {
                "security": [{"BearerAuth": []}],
                "description": "The first rating of a kitten by the caller is created, later ones overwrite it.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["ratings"],
                "summary": "Rate a kitten from 1 to 5",
                "parameters": [
                    {"description": "Rating", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/handler.rateRequest"}}
                ],
                "responses": {
                    "200": {"description": "rating updated", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "201": {"description": "rating created", "schema": {"$ref": "#/definitions/handler.messageResponse"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "404": {"description": "no such kitten", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}},
                    "409": {"description": "concurrent rating", "schema": {"$ref": "#/definitions/handler.errorEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "handler.accessTokenResponse": {
            "type": "object",
            "properties": {"access": {"type": "string"}}
        },
        "handler.breedIDRequest": {
            "type": "object",
            "properties": {"breed_id": {"type": "integer"}}
        },
        "handler.breedResponse": {
            "type": "object",
            "properties": {"id": {"type": "integer"}, "name": {"type": "string"}}
        },
        "handler.credentialsRequest": {
            "type": "object",
            "properties": {"password": {"type": "string"}, "username": {"type": "string"}}
        },
        "handler.errorBody": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "fields": {"type": "object", "additionalProperties": {"type": "array", "items": {"type": "string"}}},
                "message": {"type": "string"}
            }
        },
        "handler.errorEnvelope": {
            "type": "object",
            "properties": {"error": {"$ref": "#/definitions/handler.errorBody"}}
        },
        "handler.healthResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "handler.kittenIDRequest": {
            "type": "object",
            "properties": {"kitten_id": {"type": "integer"}}
        },
        "handler.kittenRequest": {
            "type": "object",
            "properties": {
                "age_in_months": {"type": "integer"},
                "breed": {"type": "integer"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "name": {"type": "string"}
            }
        },
        "handler.kittenResponse": {
            "type": "object",
            "properties": {
                "age_in_months": {"type": "integer"},
                "breed": {"type": "integer"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "owner": {"type": "integer"}
            }
        },
        "handler.kittenSummaryResponse": {
            "type": "object",
            "properties": {
                "breed": {"type": "integer"},
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "owner": {"type": "integer"}
            }
        },
        "handler.kittenUpdateRequest": {
            "type": "object",
            "properties": {
                "age_in_months": {"type": "integer"},
                "breed": {"type": "integer"},
                "color": {"type": "string"},
                "description": {"type": "string"},
                "kitten_id": {"type": "integer"},
                "name": {"type": "string"}
            }
        },
        "handler.messageResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "handler.rateRequest": {
            "type": "object",
            "properties": {"kitten_id": {"type": "integer"}, "rating_value": {"type": "integer"}}
        },
        "handler.refreshRequest": {
            "type": "object",
            "properties": {"refresh": {"type": "string"}}
        },
        "handler.tokenPairResponse": {
            "type": "object",
            "properties": {"access": {"type": "string"}, "refresh": {"type": "string"}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Kittens API",
	Description:      "Kittens, breeds and per-user ratings behind JWT bearer authentication.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
