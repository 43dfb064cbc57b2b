// Package docs registers the Swagger document served at /swagger/doc.json.
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
        "/recommendations": {
            "post": {
                "description": "Generates five destination recommendations and the coordinates of the places they mention.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Get travel recommendations",
                "parameters": [
                    {"description": "Travel preferences", "name": "preferences", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.UserPreferences"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.RecommendationResult"}},
                    "400": {"description": "Missing required parameter", "schema": {"$ref": "#/definitions/types.Response"}},
                    "500": {"description": "Configuration or upstream error", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/generate": {
            "post": {
                "description": "Sends a free-form prompt to the generative model.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Recommendations"],
                "summary": "Generate text",
                "parameters": [
                    {"description": "Prompt", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.GenerateRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.GenerateResponse"}},
                    "400": {"description": "Missing prompt", "schema": {"$ref": "#/definitions/types.Response"}},
                    "500": {"description": "Configuration or upstream error", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/download-pdf": {
            "get": {
                "description": "Serves the static product PDF as an attachment.",
                "produces": ["application/pdf"],
                "tags": ["Brochure"],
                "summary": "Download the Smart Tour brochure",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "PDF file not found", "schema": {"$ref": "#/definitions/types.Response"}},
                    "500": {"description": "Failed to serve PDF", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/api/v1/map": {
            "post": {
                "description": "Groups places by state, assigns marker colours and computes the viewport.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Map"],
                "summary": "Build a map view",
                "parameters": [
                    {"description": "Places to plot", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.MapRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/api/v1/chat/sessions": {
            "post": {
                "description": "Creates a questionnaire session and returns the greeting with the first question.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Start a chat session",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/types.ChatTurn"}}
                }
            }
        },
        "/api/v1/chat/sessions/{sessionID}": {
            "get": {
                "description": "Returns the full transcript, collected preferences and latest places.",
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get a chat session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Invalid session ID", "schema": {"$ref": "#/definitions/types.Response"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/api/v1/chat/sessions/{sessionID}/messages": {
            "post": {
                "description": "Validates the answer, advances the questionnaire and, after the last answer, returns recommendations and places.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Answer the current question",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"description": "User message", "name": "message", "in": "body", "required": true, "schema": {"$ref": "#/definitions/types.ChatMessageRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/types.ChatTurn"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/types.Response"}},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/types.Response"}},
                    "409": {"description": "Conversation ended or busy", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/api/v1/chat/sessions/{sessionID}/map": {
            "get": {
                "description": "Renders the latest recommended places as a Leaflet page, a list page with view=list, or JSON when requested.",
                "produces": ["text/html", "application/json"],
                "tags": ["Map"],
                "summary": "Map of a session's destinations",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true},
                    {"type": "string", "description": "list for the non-interactive fallback", "name": "view", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Session not found", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        },
        "/api/v1/chat/sessions/{sessionID}/itinerary.pdf": {
            "get": {
                "description": "Renders the session's latest recommendation and destinations as a PDF.",
                "produces": ["application/pdf"],
                "tags": ["Brochure"],
                "summary": "Download a session itinerary",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "sessionID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "404": {"description": "Session or recommendation not found", "schema": {"$ref": "#/definitions/types.Response"}}
                }
            }
        }
    },
    "definitions": {
        "types.UserPreferences": {
            "type": "object",
            "properties": {
                "placeType": {"type": "string", "example": "beach"},
                "budget": {"type": "string", "example": "30k"},
                "season": {"type": "string", "example": "winter"},
                "source": {"type": "string", "example": "delhi"}
            }
        },
        "types.Place": {
            "type": "object",
            "properties": {
                "name": {"type": "string", "example": "Manali"},
                "state": {"type": "string", "example": "Himachal Pradesh"},
                "lat": {"type": "number", "example": 32.2432},
                "lng": {"type": "number", "example": 77.1892}
            }
        },
        "types.RecommendationResult": {
            "type": "object",
            "properties": {
                "recommendations": {"type": "string"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/types.Place"}}
            }
        },
        "types.GenerateRequest": {
            "type": "object",
            "properties": {
                "prompt": {"type": "string", "example": "Suggest a weekend trip from Pune"}
            }
        },
        "types.GenerateResponse": {
            "type": "object",
            "properties": {
                "response": {"type": "string"}
            }
        },
        "types.MapRequest": {
            "type": "object",
            "properties": {
                "places": {"type": "array", "items": {"$ref": "#/definitions/types.Place"}},
                "interactive": {"type": "boolean"}
            }
        },
        "types.ChatMessageRequest": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Beach"}
            }
        },
        "types.ChatTurn": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "state": {"type": "string"},
                "messages": {"type": "array", "items": {"type": "object"}},
                "preferences": {"$ref": "#/definitions/types.UserPreferences"},
                "places": {"type": "array", "items": {"$ref": "#/definitions/types.Place"}},
                "map_url": {"type": "string"}
            }
        },
        "types.Response": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean", "example": false},
                "error": {"type": "string", "example": "Resource not found"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Smart Tour API",
	Description:      "Travel recommendations from a generative model, geocoded destinations, a guided chat questionnaire and map/PDF renderings.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
