// Package docs holds the OpenAPI document served on /swagger.
// Regenerate with: swag init -g cmd/server/main.go
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
				"tags": [
					"health"
				],
				"summary": "Liveness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/health/ready": {
			"get": {
				"tags": [
					"health"
				],
				"summary": "Readiness probe",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"503": {
						"description": "Service Unavailable"
					}
				}
			}
		},
		"/api/session": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Start a session",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				}
			},
			"get": {
				"tags": [
					"session"
				],
				"summary": "Current session",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/session/logout": {
			"post": {
				"tags": [
					"session"
				],
				"summary": "Log out",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/sections": {
			"get": {
				"tags": [
					"navigation"
				],
				"summary": "Navigation items",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/sections/{key}": {
			"get": {
				"tags": [
					"navigation"
				],
				"summary": "Auth gate decision",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "path",
						"name": "key",
						"type": "string",
						"required": true
					}
				]
			}
		},
		"/api/navigate": {
			"post": {
				"tags": [
					"navigation"
				],
				"summary": "Navigate",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/navigateRequest"
						}
					}
				]
			}
		},
		"/api/login": {
			"get": {
				"tags": [
					"login"
				],
				"summary": "Login dialog state",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/login/open": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Open login dialog",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/login/credentials": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Submit credentials",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/credentialsRequest"
						}
					}
				]
			}
		},
		"/api/login/otp": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Verify OTP",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/otpRequest"
						}
					}
				]
			}
		},
		"/api/login/otp/resend": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Resend OTP",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/login/forgot": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Forgot password",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/login/forgot/submit": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Send reset link",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				],
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/forgotPasswordRequest"
						}
					}
				]
			}
		},
		"/api/login/back": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Back to login",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/users": {
			"post": {
				"tags": [
					"login"
				],
				"summary": "Create user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/createUserRequest"
						}
					}
				]
			}
		},
		"/api/cctv": {
			"get": {
				"tags": [
					"cctv"
				],
				"summary": "Live CCTV",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					},
					"401": {
						"description": "Unauthorized"
					}
				},
				"security": [
					{
						"BearerAuth": []
					}
				]
			}
		},
		"/api/donations": {
			"post": {
				"tags": [
					"donations"
				],
				"summary": "Donate",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/donationRequest"
						}
					}
				]
			}
		},
		"/api/admin/dashboard": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Admin dashboard",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/admin/users": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "List admin users",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			},
			"post": {
				"tags": [
					"admin"
				],
				"summary": "Create admin user",
				"produces": [
					"application/json"
				],
				"responses": {
					"201": {
						"description": "Created"
					}
				},
				"parameters": [
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/adminUserRequest"
						}
					}
				]
			}
		},
		"/api/admin/users/draft": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Draft admin user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				}
			}
		},
		"/api/admin/users/{id}": {
			"put": {
				"tags": [
					"admin"
				],
				"summary": "Update admin user",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					},
					{
						"in": "body",
						"name": "body",
						"required": true,
						"schema": {
							"$ref": "#/definitions/adminUserRequest"
						}
					}
				]
			},
			"delete": {
				"tags": [
					"admin"
				],
				"summary": "Delete admin user",
				"produces": [
					"application/json"
				],
				"responses": {
					"204": {
						"description": "No Content"
					}
				},
				"parameters": [
					{
						"in": "path",
						"name": "id",
						"type": "integer",
						"required": true
					}
				]
			}
		},
		"/api/admin/transactions": {
			"get": {
				"tags": [
					"admin"
				],
				"summary": "Transactions",
				"produces": [
					"application/json"
				],
				"responses": {
					"200": {
						"description": "OK"
					}
				},
				"parameters": [
					{
						"in": "query",
						"name": "from",
						"type": "string"
					},
					{
						"in": "query",
						"name": "to",
						"type": "string"
					},
					{
						"in": "query",
						"name": "range",
						"type": "string",
						"enum": [
							"today",
							"yesterday",
							"last_week",
							"last_month",
							"last_365",
							"last_fiscal_year"
						]
					}
				]
			}
		}
	},
	"definitions": {
		"navigateRequest": {
			"type": "object",
			"properties": {
				"target": {
					"type": "string"
				}
			}
		},
		"credentialsRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"otpRequest": {
			"type": "object",
			"properties": {
				"code": {
					"type": "string"
				}
			}
		},
		"forgotPasswordRequest": {
			"type": "object",
			"properties": {
				"email": {
					"type": "string"
				}
			}
		},
		"createUserRequest": {
			"type": "object",
			"properties": {
				"username": {
					"type": "string"
				},
				"password": {
					"type": "string"
				}
			}
		},
		"donationRequest": {
			"type": "object",
			"properties": {
				"name": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"phone": {
					"type": "string"
				},
				"amount": {
					"type": "integer"
				},
				"purpose": {
					"type": "string"
				}
			}
		},
		"adminUserRequest": {
			"type": "object",
			"properties": {
				"id": {
					"type": "integer"
				},
				"username": {
					"type": "string"
				},
				"email": {
					"type": "string"
				},
				"mobile": {
					"type": "string"
				},
				"full_name": {
					"type": "string"
				},
				"cctv_link": {
					"type": "string"
				},
				"is_admin": {
					"type": "boolean"
				},
				"is_active": {
					"type": "boolean"
				},
				"is_cctv_visible": {
					"type": "boolean"
				},
				"is_cctv_storage_visible": {
					"type": "boolean"
				}
			}
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
	Version:		  "1.0",
	Host:			 "",
	BasePath:		 "/",
	Schemes:		  []string{},
	Title:			"JPK Web API",
	Description:	  "Navigation shell, login flow and admin panel for the Janasiksha Prochar Kendra website.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:		"{{",
	RightDelim:	   "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
