// Package docs registers the swagger document served under /swagger.
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
        "/api/tours": {
            "get": {
                "tags": [
                    "tours"
                ],
                "summary": "List published tours",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "category",
                        "name": "category",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "page",
                        "name": "page",
                        "in": "query",
                        "required": false
                    },
                    {
                        "type": "integer",
                        "description": "limit",
                        "name": "limit",
                        "in": "query",
                        "required": false
                    }
                ]
            },
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Create a tour",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TourRequest"
                        }
                    }
                ]
            }
        },
        "/api/tours/search": {
            "get": {
                "tags": [
                    "tours"
                ],
                "summary": "Fuzzy search published tours by title and location",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "q",
                        "name": "q",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "en, th or zh",
                        "name": "locale",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/tours/slug/{slug}": {
            "get": {
                "tags": [
                    "tours"
                ],
                "summary": "Get a published tour by slug",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "slug",
                        "name": "slug",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/announcements/active": {
            "get": {
                "tags": [
                    "announcements"
                ],
                "summary": "Active banner and popup for a locale",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "en, th or zh",
                        "name": "locale",
                        "in": "query",
                        "required": false
                    }
                ]
            }
        },
        "/api/announcements": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Create an announcement, activating it when isActive is set",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AnnouncementRequest"
                        }
                    }
                ]
            }
        },
        "/api/announcements/{id}/activate": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Activate an announcement, deactivating any other of the same type",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Conflict",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "integer",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ]
            }
        },
        "/api/bookings": {
            "post": {
                "tags": [
                    "bookings"
                ],
                "summary": "Book a published tour as a guest or signed-in user",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateBookingRequest"
                        }
                    }
                ]
            }
        },
        "/api/bookings/lookup": {
            "get": {
                "tags": [
                    "bookings"
                ],
                "summary": "Find a booking by reference code and contact email",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "parameters": [
                    {
                        "type": "string",
                        "description": "reference code",
                        "name": "ref",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "contact email",
                        "name": "email",
                        "in": "query",
                        "required": true
                    }
                ]
            }
        },
        "/api/bookings/{id}": {
            "put": {
                "tags": [
                    "admin"
                ],
                "summary": "Change a booking's status or admin note",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "integer",
                        "description": "id",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateBookingRequest"
                        }
                    }
                ]
            }
        },
        "/api/auth/login": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Admin sign in",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    },
                    "429": {
                        "description": "Too Many Requests",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.LoginInput"
                        }
                    }
                ]
            }
        },
        "/api/auth/sync": {
            "post": {
                "tags": [
                    "auth"
                ],
                "summary": "Broadcast a sign-in or sign-out to the user's other tabs",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AuthSyncRequest"
                        }
                    }
                ]
            }
        },
        "/api/translate": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Translate text; the source text is returned when translation is unavailable",
                "produces": [
                    "application/json"
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    }
                },
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "in": "body",
                        "name": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.TranslateRequest"
                        }
                    }
                ]
            }
        },
        "/api/upload": {
            "post": {
                "tags": [
                    "admin"
                ],
                "summary": "Upload an image to the CDN",
                "consumes": [
                    "multipart/form-data"
                ],
                "produces": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "file",
                        "description": "image",
                        "name": "file",
                        "in": "formData",
                        "required": true
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/response.Response"
                        }
                    },
                    "503": {
                        "description": "Service Unavailable",
                        "schema": {
                            "$ref": "#/definitions/response.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "data": {},
                "pagination": {
                    "$ref": "#/definitions/response.Pagination"
                }
            }
        },
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "integer"
                },
                "error": {
                    "type": "string"
                }
            }
        },
        "response.Pagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "limit": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.TourRequest": {
            "type": "object",
            "properties": {
                "slug": {
                    "type": "string"
                },
                "titleEn": {
                    "type": "string"
                },
                "titleTh": {
                    "type": "string"
                },
                "titleZh": {
                    "type": "string"
                },
                "descriptionEn": {
                    "type": "string"
                },
                "descriptionTh": {
                    "type": "string"
                },
                "descriptionZh": {
                    "type": "string"
                },
                "locationEn": {
                    "type": "string"
                },
                "locationTh": {
                    "type": "string"
                },
                "locationZh": {
                    "type": "string"
                },
                "price": {
                    "type": "string"
                },
                "currency": {
                    "type": "string"
                },
                "duration": {
                    "type": "string"
                },
                "availableDates": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "maxGuests": {
                    "type": "integer"
                },
                "bannerImageUrl": {
                    "type": "string"
                },
                "galleryUrls": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "isDiscountActive": {
                    "type": "boolean"
                },
                "discountPercentage": {
                    "type": "integer"
                },
                "isPublished": {
                    "type": "boolean"
                },
                "categoryIds": {
                    "type": "array",
                    "items": {
                        "type": "integer"
                    }
                },
                "autoTranslate": {
                    "type": "boolean"
                }
            },
            "required": [
                "titleEn"
            ]
        },
        "dto.AnnouncementRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "banner",
                        "popup"
                    ]
                },
                "popupType": {
                    "type": "string",
                    "enum": [
                        "discount",
                        "new_feature",
                        "system_update",
                        "general"
                    ]
                },
                "titleEn": {
                    "type": "string"
                },
                "titleTh": {
                    "type": "string"
                },
                "titleZh": {
                    "type": "string"
                },
                "messageEn": {
                    "type": "string"
                },
                "messageTh": {
                    "type": "string"
                },
                "messageZh": {
                    "type": "string"
                },
                "linkUrl": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isActive": {
                    "type": "boolean"
                },
                "discountTourId": {
                    "type": "integer"
                },
                "discountPercentage": {
                    "type": "integer"
                },
                "autoTranslate": {
                    "type": "boolean"
                }
            },
            "required": [
                "type",
                "messageEn"
            ]
        },
        "dto.CreateBookingRequest": {
            "type": "object",
            "properties": {
                "tourId": {
                    "type": "integer"
                },
                "contactName": {
                    "type": "string"
                },
                "contactEmail": {
                    "type": "string"
                },
                "contactPhone": {
                    "type": "string"
                },
                "travelDate": {
                    "type": "string"
                },
                "guests": {
                    "type": "integer"
                },
                "specialRequests": {
                    "type": "string"
                },
                "locale": {
                    "type": "string"
                }
            },
            "required": [
                "tourId",
                "contactName",
                "contactEmail",
                "travelDate",
                "guests"
            ]
        },
        "dto.UpdateBookingRequest": {
            "type": "object",
            "properties": {
                "status": {
                    "type": "string",
                    "enum": [
                        "pending",
                        "confirmed",
                        "cancelled"
                    ]
                },
                "adminNote": {
                    "type": "string"
                }
            }
        },
        "dto.LoginInput": {
            "type": "object",
            "properties": {
                "email": {
                    "type": "string"
                },
                "password": {
                    "type": "string"
                }
            },
            "required": [
                "email",
                "password"
            ]
        },
        "dto.AuthSyncRequest": {
            "type": "object",
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "SIGNED_IN",
                        "SIGNED_OUT"
                    ]
                }
            },
            "required": [
                "type"
            ]
        },
        "dto.TranslateRequest": {
            "type": "object",
            "properties": {
                "text": {
                    "type": "string"
                },
                "source": {
                    "type": "string"
                },
                "target": {
                    "type": "string"
                }
            },
            "required": [
                "text",
                "target"
            ]
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Tour booking API",
	Description:      "Multi-locale tour catalog, bookings and back office API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
