// Package swagger holds the OpenAPI document served under /swagger.
// Regenerate it from the handler annotations with:
//
//	swag init -g cmd/api/main.go -o api/swagger --outputTypes go
package swagger

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
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/users": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "List users",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Create a new user",
                "parameters": [
                    {"description": "Create User Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateUserRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/users/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Get user by ID",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Update user",
                "parameters": [
                    {"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true},
                    {"description": "Update User Payload", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Delete user",
                "parameters": [{"type": "string", "description": "User ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/roles": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "List roles",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Create role",
                "parameters": [{"description": "Role", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateRoleRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/roles/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Get role by ID",
                "parameters": [{"type": "string", "description": "Role ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Update role",
                "parameters": [
                    {"type": "string", "description": "Role ID", "name": "id", "in": "path", "required": true},
                    {"description": "Role fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateRoleRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["roles"],
                "summary": "Delete role",
                "parameters": [{"type": "string", "description": "Role ID", "name": "id", "in": "path", "required": true}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}},
                    "409": {"description": "Conflict", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/permissions": {
            "get": {
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "List permissions",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Create permission",
                "parameters": [{"description": "Permission", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreatePermissionRequest"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/permissions/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Get permission by ID",
                "parameters": [{"type": "string", "description": "Permission ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Update permission",
                "parameters": [
                    {"type": "string", "description": "Permission ID", "name": "id", "in": "path", "required": true},
                    {"description": "Permission fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdatePermissionRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["permissions"],
                "summary": "Delete permission",
                "parameters": [{"type": "string", "description": "Permission ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/role-permissions": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["role-permissions"],
                "summary": "Assign permission to role",
                "parameters": [{"description": "Role and permission ids", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RolePermissionRequest"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            },
            "delete": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["role-permissions"],
                "summary": "Remove permission from role",
                "parameters": [{"description": "Role and permission ids", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.RolePermissionRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/role-permissions/{role_id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["role-permissions"],
                "summary": "Get permissions by role",
                "parameters": [{"type": "string", "description": "Role ID", "name": "role_id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/faqs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "List FAQs",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "Create FAQ",
                "parameters": [
                    {"type": "string", "description": "Acting user ID", "name": "user-id", "in": "header", "required": true},
                    {"description": "FAQ", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.CreateFAQRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/response.Response"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/api/v1/faqs/search": {
            "get": {
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "Search FAQs",
                "parameters": [{"type": "string", "description": "Substring to look for", "name": "keyword", "in": "query", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/faqs/category/{category}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "List FAQs in a category",
                "parameters": [{"type": "string", "description": "Category", "name": "category", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/faqs/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "Get FAQ by ID",
                "parameters": [{"type": "string", "description": "FAQ ID", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "put": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "Update FAQ",
                "parameters": [
                    {"type": "string", "description": "Acting user ID", "name": "user-id", "in": "header", "required": true},
                    {"type": "string", "description": "FAQ ID", "name": "id", "in": "path", "required": true},
                    {"description": "FAQ fields", "name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/service.UpdateFAQRequest"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["faqs"],
                "summary": "Delete FAQ",
                "parameters": [
                    {"type": "string", "description": "Acting user ID", "name": "user-id", "in": "header", "required": true},
                    {"type": "string", "description": "FAQ ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        },
        "/api/v1/audit-logs": {
            "get": {
                "produces": ["application/json"],
                "tags": ["audit"],
                "summary": "Get audit logs",
                "parameters": [{"type": "integer", "description": "Number of entries (default 20, max 100)", "name": "limit", "in": "query"}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/response.Response"}}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "status_code": {"type": "integer"},
                "message": {"type": "string"},
                "data": {},
                "error": {"type": "string"}
            }
        },
        "service.CreateUserRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role_id": {"type": "string"}
            }
        },
        "service.UpdateUserRequest": {
            "type": "object",
            "properties": {
                "full_name": {"type": "string"},
                "email": {"type": "string"},
                "password": {"type": "string"},
                "role_id": {"type": "string"}
            }
        },
        "service.CreateRoleRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "service.UpdateRoleRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "service.CreatePermissionRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "service.UpdatePermissionRequest": {
            "type": "object",
            "properties": {"name": {"type": "string"}, "description": {"type": "string"}}
        },
        "service.RolePermissionRequest": {
            "type": "object",
            "required": ["role_id", "permission_id"],
            "properties": {"role_id": {"type": "string"}, "permission_id": {"type": "string"}}
        },
        "service.CreateFAQRequest": {
            "type": "object",
            "required": ["question", "answer"],
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"},
                "created_by": {"type": "string"}
            }
        },
        "service.UpdateFAQRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "answer": {"type": "string"},
                "category": {"type": "string"}
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
	Title:            "Support Center API",
	Description:      "Users, roles, permissions and FAQs of the support center.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
