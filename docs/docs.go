// Package docs contiene la especificación Swagger 2.0 de la API, registrada en swag.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "paths": {
        "/api/auth/login": {
            "post": {
                "tags": ["auth"], "summary": "Login con email y password",
                "security": [],
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/LoginRequest"}}],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/LoginResponse"}}, "401": {"description": "Credenciales inválidas", "schema": {"$ref": "#/definitions/ErrorResponse"}}}
            }
        },
        "/api/auth/register": {
            "post": {
                "tags": ["auth"], "summary": "Registrar usuario (admin)",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/RegisterRequest"}}],
                "responses": {"201": {"description": "Creado", "schema": {"$ref": "#/definitions/UserResponse"}}, "409": {"description": "Email duplicado", "schema": {"$ref": "#/definitions/ErrorResponse"}}}
            }
        },
        "/api/auth/me": {
            "get": {"tags": ["auth"], "summary": "Usuario autenticado", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}}}}
        },
        "/api/users": {
            "get": {"tags": ["users"], "summary": "Listar usuarios", "parameters": [{"in": "query", "name": "id", "type": "string"}, {"in": "query", "name": "search", "type": "string"}, {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UserListResponse"}}, "403": {"description": "Solo admin", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/users/{id}": {
            "get": {"tags": ["users"], "summary": "Obtener usuario", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}}, "404": {"description": "No existe", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "put": {"tags": ["users"], "summary": "Actualizar email, nombre, rol o estado", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/UserResponse"}}, "409": {"description": "Email en uso o cambio sobre la propia cuenta", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "delete": {"tags": ["users"], "summary": "Eliminar usuario", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "Eliminado"}, "409": {"description": "Propia cuenta", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/stats": {
            "get": {"tags": ["stats"], "summary": "Totales del sistema (solo admin)", "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/StatsResponse"}}, "403": {"description": "Solo admin", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/branches": {
            "get": {
                "tags": ["branches"], "summary": "Listar sedes",
                "parameters": [
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "include", "type": "string", "enum": ["warehouses"]},
                    {"in": "query", "name": "limit", "type": "integer"},
                    {"in": "query", "name": "offset", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/BranchListResponse"}}}
            },
            "post": {
                "tags": ["branches"], "summary": "Crear sede",
                "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBranchRequest"}}],
                "responses": {"201": {"description": "Creada", "schema": {"$ref": "#/definitions/BranchResponse"}}, "400": {"description": "Validación", "schema": {"$ref": "#/definitions/ErrorResponse"}}}
            }
        },
        "/api/branches/{id}": {
            "get": {"tags": ["branches"], "summary": "Obtener sede con sus bodegas", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/BranchResponse"}}, "404": {"description": "No existe", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "put": {"tags": ["branches"], "summary": "Actualizar sede", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBranchRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/BranchResponse"}}}},
            "delete": {"tags": ["branches"], "summary": "Eliminar sede", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "Eliminada"}, "409": {"description": "Tiene bodegas", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/branches/{id}/warehouses": {
            "get": {"tags": ["branches"], "summary": "Bodegas de una sede", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/WarehouseListResponse"}}}}
        },
        "/api/warehouses": {
            "get": {"tags": ["warehouses"], "summary": "Listar bodegas", "parameters": [{"in": "query", "name": "branch_id", "type": "string"}, {"in": "query", "name": "limit", "type": "integer"}, {"in": "query", "name": "offset", "type": "integer"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/WarehouseListResponse"}}}},
            "post": {"tags": ["warehouses"], "summary": "Crear bodega", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateWarehouseRequest"}}], "responses": {"201": {"description": "Creada", "schema": {"$ref": "#/definitions/WarehouseResponse"}}}}
        },
        "/api/warehouses/{id}": {
            "get": {"tags": ["warehouses"], "summary": "Obtener bodega", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/WarehouseResponse"}}}},
            "put": {"tags": ["warehouses"], "summary": "Actualizar bodega", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateWarehouseRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/WarehouseResponse"}}}},
            "delete": {"tags": ["warehouses"], "summary": "Eliminar bodega", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "Eliminada"}, "409": {"description": "Tiene activos", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/warehouses/{id}/assets": {
            "get": {"tags": ["warehouses"], "summary": "Activos de una bodega", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssetListResponse"}}}}
        },
        "/api/assets": {
            "get": {
                "tags": ["assets"], "summary": "Listar activos",
                "parameters": [
                    {"in": "query", "name": "warehouse_id", "type": "string"},
                    {"in": "query", "name": "branch_id", "type": "string"},
                    {"in": "query", "name": "category", "type": "string"},
                    {"in": "query", "name": "search", "type": "string"},
                    {"in": "query", "name": "active", "type": "boolean"},
                    {"in": "query", "name": "limit", "type": "integer"},
                    {"in": "query", "name": "offset", "type": "integer"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssetListResponse"}}}
            },
            "post": {"tags": ["assets"], "summary": "Crear activo", "parameters": [{"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAssetRequest"}}], "responses": {"201": {"description": "Creado", "schema": {"$ref": "#/definitions/AssetResponse"}}, "409": {"description": "product_code duplicado", "schema": {"$ref": "#/definitions/ErrorResponse"}}}}
        },
        "/api/assets/export": {
            "get": {"tags": ["assets"], "summary": "Exportar activos a XLSX", "produces": ["application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"], "responses": {"200": {"description": "Archivo XLSX", "schema": {"type": "file"}}}}
        },
        "/api/assets/{id}": {
            "get": {"tags": ["assets"], "summary": "Obtener activo", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssetResponse"}}}},
            "put": {"tags": ["assets"], "summary": "Actualizar activo", "parameters": [{"$ref": "#/parameters/id"}, {"in": "body", "name": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAssetRequest"}}], "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/AssetResponse"}}}},
            "delete": {"tags": ["assets"], "summary": "Eliminar activo", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "Eliminado"}}}
        },
        "/api/assets/{id}/attachment": {
            "post": {"tags": ["assets"], "summary": "Subir o reemplazar adjunto", "consumes": ["multipart/form-data"], "parameters": [{"$ref": "#/parameters/id"}, {"in": "formData", "name": "file", "type": "file", "required": true}], "responses": {"201": {"description": "Creado", "schema": {"$ref": "#/definitions/AttachmentResponse"}}}},
            "get": {"tags": ["assets"], "summary": "Descargar adjunto", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "Archivo", "schema": {"type": "file"}}, "404": {"description": "Sin adjunto", "schema": {"$ref": "#/definitions/ErrorResponse"}}}},
            "delete": {"tags": ["assets"], "summary": "Eliminar adjunto", "parameters": [{"$ref": "#/parameters/id"}], "responses": {"204": {"description": "Eliminado"}}}
        },
        "/api/assets/{id}/label": {
            "get": {"tags": ["assets"], "summary": "Etiqueta PDF con código de barras", "produces": ["application/pdf"], "parameters": [{"$ref": "#/parameters/id"}], "responses": {"200": {"description": "PDF", "schema": {"type": "file"}}}}
        }
    },
    "parameters": {
        "id": {"in": "path", "name": "id", "type": "string", "format": "uuid", "required": true}
    },
    "definitions": {
        "ErrorResponse": {"type": "object", "properties": {"code": {"type": "string"}, "message": {"type": "string"}}},
        "Page": {"type": "object", "properties": {"limit": {"type": "integer"}, "offset": {"type": "integer"}, "total": {"type": "integer"}}},
        "LoginRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string"}}},
        "LoginResponse": {"type": "object", "properties": {"token": {"type": "string"}, "user": {"$ref": "#/definitions/UserResponse"}}},
        "UpdateUserRequest": {"type": "object", "properties": {"email": {"type": "string"}, "full_name": {"type": "string"}, "role": {"type": "string", "enum": ["admin", "manager", "viewer"]}, "active": {"type": "boolean"}}},
        "UserListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/UserResponse"}}, "page": {"$ref": "#/definitions/Page"}}},
        "StatsResponse": {"type": "object", "properties": {"total_branches": {"type": "integer"}, "total_warehouses": {"type": "integer"}, "total_assets": {"type": "integer"}, "active_assets": {"type": "integer"}, "inactive_assets": {"type": "integer"}, "total_users": {"type": "integer"}}},
        "RegisterRequest": {"type": "object", "required": ["email", "password"], "properties": {"email": {"type": "string"}, "password": {"type": "string", "minLength": 8}, "full_name": {"type": "string"}, "role": {"type": "string", "enum": ["admin", "manager", "viewer"]}}},
        "UserResponse": {"type": "object", "properties": {"id": {"type": "string"}, "email": {"type": "string"}, "full_name": {"type": "string"}, "role": {"type": "string"}, "active": {"type": "boolean"}, "permissions": {"type": "array", "items": {"type": "string"}}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "CreateBranchRequest": {"type": "object", "required": ["name", "address"], "properties": {"name": {"type": "string"}, "name_ar": {"type": "string"}, "address": {"type": "string"}, "address_ar": {"type": "string"}}},
        "BranchResponse": {"type": "object", "properties": {"id": {"type": "string"}, "name": {"type": "string"}, "name_ar": {"type": "string"}, "address": {"type": "string"}, "address_ar": {"type": "string"}, "warehouse_count": {"type": "integer"}, "warehouses": {"type": "array", "items": {"$ref": "#/definitions/WarehouseResponse"}}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "BranchListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/BranchResponse"}}, "page": {"$ref": "#/definitions/Page"}}},
        "CreateWarehouseRequest": {"type": "object", "required": ["branch_id", "name", "address"], "properties": {"branch_id": {"type": "string"}, "name": {"type": "string"}, "name_ar": {"type": "string"}, "address": {"type": "string"}, "address_ar": {"type": "string"}, "capacity": {"type": "integer", "minimum": 0}}},
        "WarehouseResponse": {"type": "object", "properties": {"id": {"type": "string"}, "branch_id": {"type": "string"}, "name": {"type": "string"}, "name_ar": {"type": "string"}, "address": {"type": "string"}, "address_ar": {"type": "string"}, "capacity": {"type": "integer"}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "WarehouseListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/WarehouseResponse"}}, "page": {"$ref": "#/definitions/Page"}}},
        "CreateAssetRequest": {"type": "object", "required": ["warehouse_id", "name"], "properties": {"warehouse_id": {"type": "string"}, "name": {"type": "string"}, "name_ar": {"type": "string"}, "category": {"type": "string"}, "product_code": {"type": "string"}, "quantity": {"type": "integer", "minimum": 0}, "acquisition_value": {"type": "string", "example": "1500.00"}, "acquisition_date": {"type": "string", "example": "2025-09-24"}, "is_active": {"type": "boolean"}}},
        "AttachmentResponse": {"type": "object", "properties": {"id": {"type": "string"}, "asset_id": {"type": "string"}, "filename": {"type": "string"}, "content_type": {"type": "string"}, "size_bytes": {"type": "integer"}, "sha256": {"type": "string"}, "created_at": {"type": "string", "format": "date-time"}}},
        "AssetResponse": {"type": "object", "properties": {"id": {"type": "string"}, "warehouse_id": {"type": "string"}, "name": {"type": "string"}, "name_ar": {"type": "string"}, "category": {"type": "string"}, "product_code": {"type": "string"}, "quantity": {"type": "integer"}, "acquisition_value": {"type": "string"}, "acquisition_date": {"type": "string"}, "is_active": {"type": "boolean"}, "attachment": {"$ref": "#/definitions/AttachmentResponse"}, "created_at": {"type": "string", "format": "date-time"}, "updated_at": {"type": "string", "format": "date-time"}}},
        "AssetListResponse": {"type": "object", "properties": {"items": {"type": "array", "items": {"$ref": "#/definitions/AssetResponse"}}, "page": {"$ref": "#/definitions/Page"}}}
    }
}`

// SwaggerInfo metadatos exportados de la API.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Activos API",
	Description:      "API de activos fijos: sedes, bodegas, activos y adjuntos.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
