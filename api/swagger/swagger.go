package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Late Comers API",
        "description": "Campus late-arrival tracking service",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Authentication", "description": "Teacher login and section lookup"},
        {"name": "Records", "description": "Late-arrival records"},
        {"name": "Reports", "description": "Daily report downloads"}
    ],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "paths": {
        "/teacher/login": {
            "post": {
                "tags": ["Authentication"],
                "summary": "Authenticate teacher",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            }
        },
        "/teacher/section": {
            "get": {
                "tags": ["Authentication"],
                "summary": "Get teacher section",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Teacher not found", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            }
        },
        "/students": {
            "post": {
                "tags": ["Records"],
                "summary": "Log a late arrival",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AddRecordRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/LateRecord"}},
                    "400": {"description": "Missing fields or duplicate", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            },
            "get": {
                "tags": ["Records"],
                "summary": "List late records",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "department", "in": "query", "type": "string"},
                    {"name": "section", "in": "query", "type": "string"},
                    {"name": "date", "in": "query", "type": "string", "description": "YYYY-MM-DD"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LateRecord"}}}
                }
            }
        },
        "/students/{regdNumber}": {
            "get": {
                "tags": ["Records"],
                "summary": "Get a student's records",
                "parameters": [
                    {"name": "regdNumber", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentRecords"}},
                    "404": {"description": "No records", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            },
            "delete": {
                "tags": ["Records"],
                "summary": "Delete a record",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "regdNumber", "in": "path", "required": true, "type": "string", "description": "Record id"}
                ],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/APIMessage"}},
                    "404": {"description": "Record not found", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            }
        },
        "/department/{department}": {
            "get": {
                "tags": ["Records"],
                "summary": "Today's records for a department",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "department", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/LateRecord"}}}
                }
            }
        },
        "/statistics": {
            "get": {
                "tags": ["Records"],
                "summary": "Today's per-department counts",
                "security": [{"BearerAuth": []}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/DepartmentCount"}}}
                }
            }
        },
        "/reports/daily": {
            "get": {
                "tags": ["Reports"],
                "summary": "Download today's report",
                "security": [{"BearerAuth": []}],
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/APIMessage"}}
                }
            }
        }
    },
    "definitions": {
        "LoginRequest": {
            "type": "object",
            "properties": {
                "teacherId": {"type": "string"},
                "password": {"type": "string"}
            },
            "required": ["teacherId", "password"]
        },
        "LoginResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "teacherId": {"type": "string"},
                "section": {"type": "string", "enum": ["A", "B", "C", "D"]}
            }
        },
        "AddRecordRequest": {
            "type": "object",
            "properties": {
                "regdNumber": {"type": "string"},
                "name": {"type": "string"},
                "department": {"type": "string", "enum": ["CSE", "ECE", "EEE", "MECH", "CIVIL", "IT"]},
                "section": {"type": "string", "enum": ["A", "B", "C", "D"]},
                "time": {"type": "string"},
                "reason": {"type": "string"}
            },
            "required": ["regdNumber", "name", "department", "section", "time", "reason"]
        },
        "LateRecord": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "regdNumber": {"type": "string"},
                "name": {"type": "string"},
                "department": {"type": "string"},
                "section": {"type": "string"},
                "time": {"type": "string"},
                "reason": {"type": "string"},
                "date": {"type": "string"}
            }
        },
        "StudentRecords": {
            "type": "object",
            "properties": {
                "student": {
                    "type": "object",
                    "properties": {
                        "regdNumber": {"type": "string"},
                        "name": {"type": "string"},
                        "department": {"type": "string"},
                        "section": {"type": "string"}
                    }
                },
                "records": {"type": "array", "items": {"$ref": "#/definitions/LateRecord"}}
            }
        },
        "DepartmentCount": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "count": {"type": "integer"}
            }
        },
        "APIMessage": {
            "type": "object",
            "properties": {
                "message": {"type": "string"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
