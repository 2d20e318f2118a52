package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "TutorHub API",
        "description": "Tutor marketplace: goal catalog, tutor profiles, trial-lesson bookings and inquiries",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Catalog", "description": "Goals and tutor profiles"},
        {"name": "Bookings", "description": "Trial-lesson booking workflow"},
        {"name": "Requests", "description": "General tutoring inquiries"},
        {"name": "Admin", "description": "Operational exports"}
    ],
    "paths": {
        "/goals": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List learning goals",
                "responses": {
                    "200": {"description": "Goal slug to name map with emoji meta", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers": {
            "get": {
                "tags": ["Catalog"],
                "summary": "List tutor profiles",
                "parameters": [
                    {"name": "goal", "in": "query", "type": "string", "description": "Filter by goal slug (rating-descending order)"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["rating", "random"]},
                    {"name": "limit", "in": "query", "type": "integer"}
                ],
                "responses": {
                    "200": {"description": "Tutor profiles", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/teachers/{id}": {
            "get": {
                "tags": ["Catalog"],
                "summary": "Get one tutor profile with its availability map",
                "parameters": [
                    {"name": "id", "in": "path", "type": "integer", "required": true}
                ],
                "responses": {
                    "200": {"description": "Tutor profile", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/bookings": {
            "post": {
                "tags": ["Bookings"],
                "summary": "Book a trial lesson",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateBookingRequest"}}
                ],
                "responses": {
                    "201": {"description": "Booking confirmed", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure with field messages", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown teacher", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "409": {"description": "Slot already booked", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/requests": {
            "post": {
                "tags": ["Requests"],
                "summary": "Submit a general tutoring inquiry",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateInquiryRequest"}}
                ],
                "responses": {
                    "201": {"description": "Inquiry received", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation failure with field messages", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown goal", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/admin/bookings/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export the booking log",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        },
        "/admin/requests/export": {
            "get": {
                "tags": ["Admin"],
                "summary": "Export the inquiry log",
                "parameters": [
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {
                    "200": {"description": "File download"}
                }
            }
        }
    },
    "definitions": {
        "CreateBookingRequest": {
            "type": "object",
            "required": ["teacher_id", "day", "time", "name", "phone"],
            "properties": {
                "teacher_id": {"type": "integer"},
                "day": {"type": "string", "example": "monday"},
                "time": {"type": "string", "example": "10:00"},
                "name": {"type": "string"},
                "phone": {"type": "string", "minLength": 5}
            }
        },
        "CreateInquiryRequest": {
            "type": "object",
            "required": ["goal", "time", "name", "phone"],
            "properties": {
                "goal": {"type": "string", "example": "travel"},
                "time": {"type": "string", "example": "5-10"},
                "name": {"type": "string"},
                "phone": {"type": "string", "minLength": 5}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"},
                "fields": {"type": "object"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "meta": {"type": "object"}
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
