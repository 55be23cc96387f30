// Package docs holds the swagger spec served at /docs/*.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/auth/register": {
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Register a new user",
                "parameters": [
                    {"type": "string", "name": "firstName", "in": "formData", "required": true},
                    {"type": "string", "name": "lastName", "in": "formData", "required": true},
                    {"type": "string", "name": "email", "in": "formData", "required": true},
                    {"type": "string", "name": "password", "in": "formData", "required": true},
                    {"type": "string", "name": "bio", "in": "formData"},
                    {"type": "file", "name": "picture", "in": "formData"}
                ],
                "responses": {
                    "201": {"description": "created user"},
                    "400": {"description": "validation error"},
                    "409": {"description": "email already registered"}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Log in and receive a bearer token",
                "responses": {
                    "200": {"description": "authToken and user"},
                    "403": {"description": "invalid credentials"},
                    "404": {"description": "unknown email"}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "summary": "Get one user",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "user"}, "403": {"description": "access denied"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/friends": {
            "get": {
                "produces": ["application/json"],
                "summary": "List a user's friends",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "friend summaries"}, "404": {"description": "not found"}}
            }
        },
        "/users/{id}/{friendId}": {
            "patch": {
                "produces": ["application/json"],
                "summary": "Befriend or unfriend (mutual toggle)",
                "parameters": [
                    {"type": "string", "name": "id", "in": "path", "required": true},
                    {"type": "string", "name": "friendId", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "updated friend summaries"}, "400": {"description": "self-friend rejected"}, "404": {"description": "not found"}}
            }
        },
        "/posts": {
            "get": {
                "produces": ["application/json"],
                "summary": "Feed of all posts, newest first",
                "responses": {"200": {"description": "posts"}}
            },
            "post": {
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "summary": "Create a post",
                "parameters": [
                    {"type": "string", "name": "userId", "in": "formData", "required": true},
                    {"type": "string", "name": "postHeader", "in": "formData", "required": true},
                    {"type": "string", "name": "description", "in": "formData"},
                    {"type": "file", "name": "picture", "in": "formData"}
                ],
                "responses": {"201": {"description": "full refreshed feed"}}
            }
        },
        "/posts/{userId}": {
            "get": {
                "produces": ["application/json"],
                "summary": "One user's posts, newest first",
                "parameters": [{"type": "string", "name": "userId", "in": "path", "required": true}],
                "responses": {"200": {"description": "posts"}}
            }
        },
        "/posts/{id}/like": {
            "patch": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Toggle a like",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "updated post"}, "404": {"description": "not found"}}
            }
        },
        "/posts/{id}/comment": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Append a comment",
                "parameters": [{"type": "string", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "updated post"}, "400": {"description": "empty comment"}, "404": {"description": "not found"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "What's Cookin' API",
	Description:      "Food-sharing social network backend.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
