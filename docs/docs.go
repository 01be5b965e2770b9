// Package docs holds the Swagger description served at /swagger.
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
        "/chat": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Send a chat message",
                "parameters": [
                    {
                        "description": "Chat request",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/http.chatReq"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.chatResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/response.ErrorResp"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/chat-history/{session_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Get the transcript of a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/http.turnResp"}}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["Chat"],
                "summary": "Clear a session",
                "parameters": [
                    {"type": "string", "description": "Session ID", "name": "session_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/http.resetResp"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/text-to-speech": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["audio/mpeg"],
                "tags": ["Speech"],
                "summary": "Synthesize placeholder audio",
                "parameters": [
                    {
                        "description": "Synthesis request",
                        "name": "request",
                        "in": "body",
                        "schema": {"$ref": "#/definitions/speech.SynthesizeRequest"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "file"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.ErrorResp"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Health Check",
                "responses": {"200": {"description": "API is healthy", "schema": {"type": "object", "additionalProperties": true}}}
            }
        },
        "/ready": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Readiness Check",
                "responses": {
                    "200": {"description": "API is ready", "schema": {"type": "object", "additionalProperties": true}},
                    "503": {"description": "A dependency is unavailable", "schema": {"type": "object", "additionalProperties": true}}
                }
            }
        },
        "/live": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Health"],
                "summary": "Liveness Check",
                "responses": {"200": {"description": "API is alive", "schema": {"type": "object", "additionalProperties": true}}}
            }
        }
    },
    "definitions": {
        "http.chatReq": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "message": {"type": "string"},
                "session_id": {"type": "string"},
                "source_language": {"type": "string", "example": "auto"},
                "target_language": {"type": "string", "example": "en"}
            }
        },
        "http.chatResp": {
            "type": "object",
            "properties": {
                "response": {"type": "string"},
                "session_id": {"type": "string"},
                "source_language": {"type": "string"},
                "target_language": {"type": "string"}
            }
        },
        "http.turnResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "timestamp": {"type": "string"},
                "user_input": {"type": "string"},
                "bot_response": {"type": "string"},
                "source_language": {"type": "string"},
                "target_language": {"type": "string"}
            }
        },
        "http.resetResp": {
            "type": "object",
            "properties": {
                "session_id": {"type": "string"},
                "cleared": {"type": "boolean"}
            }
        },
        "speech.SynthesizeRequest": {
            "type": "object",
            "properties": {
                "text": {"type": "string"},
                "language_code": {"type": "string"},
                "voice_id": {"type": "string"}
            }
        },
        "response.ErrorResp": {
            "type": "object",
            "properties": {
                "error": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1",
	Host:             "localhost:8000",
	BasePath:         "",
	Schemes:          []string{"http"},
	Title:            "Multilingual Chatbot API",
	Description:      "Session-based multilingual chat with a model-backed or template responder.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
