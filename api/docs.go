// Package api holds the OpenAPI specification served at /docs.
package api

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
        "/": {
            "get": {
                "tags": ["General"],
                "summary": "API root",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/healthz": {
            "get": {
                "tags": ["General"],
                "summary": "Get health",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/version": {
            "get": {
                "tags": ["General"],
                "summary": "API version",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1": {
            "get": {
                "tags": ["General"],
                "summary": "v1 API",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/user": {
            "get": {
                "tags": ["User"],
                "summary": "Get user configuration",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["User"],
                "summary": "Update user configuration",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/user/onboarding": {
            "post": {
                "tags": ["User"],
                "summary": "Complete onboarding",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/transactions": {
            "get": {
                "tags": ["Transactions"],
                "summary": "Get transactions",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            },
            "post": {
                "tags": ["Transactions"],
                "summary": "Create transaction",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/transactions/{id}": {
            "get": {
                "tags": ["Transactions"],
                "summary": "Get transaction",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["Transactions"],
                "summary": "Update transaction",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "delete": {
                "tags": ["Transactions"],
                "summary": "Delete transaction",
                "responses": {"204": {"description": "No Content"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/categories": {
            "get": {
                "tags": ["Categories"],
                "summary": "Get categories",
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Categories"],
                "summary": "Create category",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/categories/{id}": {
            "get": {
                "tags": ["Categories"],
                "summary": "Get category",
                "responses": {"200": {"description": "OK"}, "404": {"description": "Not Found"}}
            },
            "patch": {
                "tags": ["Categories"],
                "summary": "Update category",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            }
        },
        "/v1/budgets": {
            "get": {
                "tags": ["Budgets"],
                "summary": "Get monthly budgets",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/v1/budgets/{month}": {
            "get": {
                "tags": ["Budgets"],
                "summary": "Get monthly budget",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "404": {"description": "Not Found"}}
            },
            "put": {
                "tags": ["Budgets"],
                "summary": "Set monthly budget",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/months/{month}": {
            "get": {
                "tags": ["Months"],
                "summary": "Get month data",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/auth/url": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get sign-in URL",
                "responses": {"200": {"description": "OK"}, "501": {"description": "Not Implemented"}}
            }
        },
        "/v1/auth/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Sign in",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}, "501": {"description": "Not Implemented"}}
            }
        },
        "/v1/session": {
            "delete": {
                "tags": ["Session"],
                "summary": "Sign out",
                "responses": {"204": {"description": "No Content"}, "500": {"description": "Internal Server Error"}}
            }
        },
        "/v1/bank/connect": {
            "post": {
                "tags": ["Bank"],
                "summary": "Connect a bank account",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "501": {"description": "Not Implemented"}, "502": {"description": "Bad Gateway"}}
            }
        },
        "/v1/bank/callback": {
            "get": {
                "tags": ["Bank"],
                "summary": "Bank connection callback",
                "responses": {"200": {"description": "OK"}, "400": {"description": "Bad Request"}}
            }
        },
        "/v1/subscription": {
            "post": {
                "tags": ["Subscription"],
                "summary": "Confirm a purchase",
                "responses": {"201": {"description": "Created"}, "400": {"description": "Bad Request"}, "501": {"description": "Not Implemented"}, "502": {"description": "Bad Gateway"}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
