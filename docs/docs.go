// Package docs is generated by swaggo/swag from the handler annotations.
// Regenerate with: swag init -g cmd/api/main.go -o docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Eventini"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/": {
            "get": {
                "description": "Returns API name, version, status and datastore backend.",
                "produces": ["application/json"],
                "tags": ["meta"],
                "summary": "API root info",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/api/providers/{id}": {
            "get": {
                "description": "Locates a provider across ActiveProviders and the four category collections and returns its normalized form. Every field is always present; missing data is null, false or an empty array.",
                "produces": ["application/json"],
                "tags": ["providers"],
                "summary": "Get provider",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Provider document id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "ETag from a previous response",
                        "name": "If-None-Match",
                        "in": "header"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"$ref": "#/definitions/handler.ProviderResponse"}
                    },
                    "304": {
                        "description": "Not modified"
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {"$ref": "#/definitions/respond.ErrorResponse"}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/respond.ErrorResponse"}
                    }
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns basic health status and timestamp.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        },
        "/health/store": {
            "get": {
                "description": "Verifies the configured provider datastore is reachable.",
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Datastore health check",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "additionalProperties": true}
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {"type": "object", "additionalProperties": true}
                    }
                }
            }
        }
    },
    "definitions": {
        "handler.ProviderResponse": {
            "type": "object",
            "properties": {
                "provider": {"$ref": "#/definitions/provider.NormalizedProvider"}
            }
        },
        "respond.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        },
        "provider.LatLng": {
            "type": "object",
            "properties": {
                "lat": {"type": "number"},
                "lng": {"type": "number"}
            }
        },
        "provider.NormalizedProvider": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "category": {"type": "string", "enum": ["FoodBeverage", "Entertainment", "Venues", "Vendors"]},
                "source": {"type": "string"},
                "name": {"type": "string"},
                "businessName": {"type": "string"},
                "contactName": {"type": "string"},
                "email": {"type": "string"},
                "phone": {"type": "string"},
                "website": {"type": "string"},
                "address": {"type": "string"},
                "city": {"type": "string"},
                "state": {"type": "string"},
                "zipCode": {"type": "string"},
                "serviceLocation": {"type": "string"},
                "coordinates": {"$ref": "#/definitions/provider.LatLng"},
                "serviceRadius": {"type": "number"},
                "rating": {"type": "number"},
                "reviewCount": {"type": "integer"},
                "verified": {"type": "boolean"},
                "status": {"type": "string"},
                "images": {"type": "array", "items": {"type": "string"}},
                "coverPhoto": {"type": "string"},
                "bio": {"type": "string"},
                "description": {"type": "string"},
                "yearsInBusiness": {"type": "integer"},
                "languages": {"type": "array", "items": {"type": "string"}},
                "eventTypes": {"type": "array", "items": {"type": "string"}},
                "tags": {"type": "array", "items": {"type": "string"}},
                "priceRange": {"type": "string"},
                "startingPrice": {"type": "number"},
                "socialLinks": {"type": "object", "additionalProperties": {"type": "string"}},
                "policies": {"type": "object", "additionalProperties": true},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"},
                "foodBeverage": {"type": "object", "additionalProperties": true},
                "entertainment": {"type": "object", "additionalProperties": true},
                "venue": {"type": "object", "additionalProperties": true},
                "vendor": {"type": "object", "additionalProperties": true}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8000",
	BasePath:         "/",
	Schemes:          []string{"http", "https"},
	Title:            "Eventini Provider API",
	Description:      "Resolves marketplace providers across the Eventini collections and serves them in one normalized shape.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
