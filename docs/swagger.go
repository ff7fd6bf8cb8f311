// Package docs registers the swagger spec served at /swagger/index.html.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": ["http"],
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/register": {
            "post": {
                "tags": ["users"],
                "summary": "Register a new user",
                "responses": {
                    "201": {"description": "Created"},
                    "409": {"description": "Email already registered"}
                }
            }
        },
        "/login": {
            "post": {
                "tags": ["users"],
                "summary": "Log in and receive a JWT",
                "responses": {
                    "200": {"description": "OK"},
                    "401": {"description": "Invalid credentials"}
                }
            }
        },
        "/schedules": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["schedules"],
                "summary": "Create a schedule with candidate slots",
                "responses": {
                    "302": {"description": "Redirect to the schedule detail location"}
                }
            }
        },
        "/schedules/{scheduleId}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["schedules"],
                "summary": "Schedule detail with the aggregated availability matrix",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Schedule not found"}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["schedules"],
                "summary": "Update a schedule and append candidates (requires edit=1)",
                "responses": {
                    "302": {"description": "Redirect to the schedule detail location"},
                    "400": {"description": "Missing or wrong edit flag"},
                    "404": {"description": "Schedule not found or not owned by the caller"}
                }
            }
        },
        "/schedules/{scheduleId}/edit": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["schedules"],
                "summary": "Schedule and candidates for edit-form population",
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Schedule not found or not owned by the caller"}
                }
            }
        },
        "/schedules/{scheduleId}/users/{userId}/candidates/{candidateId}": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["availabilities"],
                "summary": "Upsert one availability cell",
                "responses": {
                    "200": {"description": "{\"status\":\"OK\",\"availability\":<int>}"}
                }
            }
        },
        "/schedules/{scheduleId}/users/{userId}/comments": {
            "post": {
                "security": [{"BearerAuth": []}],
                "tags": ["comments"],
                "summary": "Upsert the user's comment on a schedule",
                "responses": {
                    "200": {"description": "{\"status\":\"OK\",\"comment\":\"<text>\"}"}
                }
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{"http"},
	Title:            "Schedule Arranger API",
	Description:      "API for arranging events: schedules, candidate slots, availability, comments.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
