package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Course Booking API",
        "description": "Users, courses, availabilities, reservations and reviews.",
        "version": "1.0.0"
    },
    "basePath": "/",
    "schemes": ["http"],
    "tags": [
        {"name": "Users"},
        {"name": "Courses"},
        {"name": "Availabilities"},
        {"name": "Reservations"},
        {"name": "Reviews"},
        {"name": "Ops", "description": "Probes and metrics"}
    ],
    "paths": {
        "/health": {
            "get": {"tags": ["Ops"], "summary": "Liveness probe", "responses": {"200": {"description": "OK"}}}
        },
        "/ready": {
            "get": {
                "tags": ["Ops"],
                "summary": "Readiness probe",
                "responses": {
                    "200": {"description": "Ready"},
                    "503": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List users",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {"users": {"type": "array", "items": {"$ref": "#/definitions/User"}}}
                        }
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create user",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateUserRequest"}}],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/User"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/users/{id}": {
            "get": {
                "tags": ["Users"],
                "summary": "Get user",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/User"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Users"],
                "summary": "Update user",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateUserRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/User"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Users"],
                "summary": "Delete user",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/users/email/{email}": {
            "get": {
                "tags": ["Users"],
                "summary": "Find user by email",
                "parameters": [{"name": "email", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"user": {"$ref": "#/definitions/User"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses": {
            "get": {
                "tags": ["Courses"],
                "summary": "List courses",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "courses": {"type": "array", "items": {"$ref": "#/definitions/Course"}}
                            }
                        }
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "properties": {"course": {"$ref": "#/definitions/Course"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"course": {"$ref": "#/definitions/Course"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Update course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CourseRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"course": {"$ref": "#/definitions/Course"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/{id}/price": {
            "put": {
                "tags": ["Courses"],
                "summary": "Change course price",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdatePriceRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"course": {"$ref": "#/definitions/Course"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/avg-rating/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Average review rating (-1 without reservations, null without reviews)",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CourseRating"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/courses/teacher/{teacherId}": {
            "get": {
                "tags": ["Courses"],
                "summary": "List a teacher's courses",
                "parameters": [
                    {"name": "teacherId", "in": "path", "required": true, "type": "integer", "description": "Teacher (user) ID"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "courses": {"type": "array", "items": {"$ref": "#/definitions/Course"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/availabilities": {
            "get": {
                "tags": ["Availabilities"],
                "summary": "List availabilities",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "availabilities": {"type": "array", "items": {"$ref": "#/definitions/Availability"}}
                            }
                        }
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Availabilities"],
                "summary": "Create availability",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateAvailabilityRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "properties": {"availability": {"$ref": "#/definitions/Availability"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/availabilities/{id}": {
            "get": {
                "tags": ["Availabilities"],
                "summary": "Get availability",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"availability": {"$ref": "#/definitions/Availability"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Availabilities"],
                "summary": "Update availability",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdateAvailabilityRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"availability": {"$ref": "#/definitions/Availability"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Availabilities"],
                "summary": "Delete availability",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/availabilities/user/{userId}": {
            "get": {
                "tags": ["Availabilities"],
                "summary": "List a user's availabilities",
                "parameters": [{"name": "userId", "in": "path", "required": true, "type": "integer", "description": "User ID"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "availabilities": {"type": "array", "items": {"$ref": "#/definitions/Availability"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/availabilities/daterange": {
            "post": {
                "tags": ["Availabilities"],
                "summary": "List availabilities within an inclusive date range",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/DateRangeRequest"}}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "availabilities": {"type": "array", "items": {"$ref": "#/definitions/Availability"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/availabilities/update-status/{id}": {
            "put": {
                "tags": ["Availabilities"],
                "summary": "Open or close an availability",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/UpdateStatusRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"availability": {"$ref": "#/definitions/Availability"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations": {
            "get": {
                "tags": ["Reservations"],
                "summary": "List reservations",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reservations": {"type": "array", "items": {"$ref": "#/definitions/Reservation"}}
                            }
                        }
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Reservations"],
                "summary": "Create reservation",
                "parameters": [
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/CreateReservationRequest"}
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "properties": {"reservation": {"$ref": "#/definitions/Reservation"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/{id}": {
            "get": {
                "tags": ["Reservations"],
                "summary": "Get reservation",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"reservation": {"$ref": "#/definitions/Reservation"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Reservations"],
                "summary": "Update reservation",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/UpdateReservationRequest"}
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"reservation": {"$ref": "#/definitions/Reservation"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Reservations"],
                "summary": "Delete reservation",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/active": {
            "get": {
                "tags": ["Reservations"],
                "summary": "List reservations that are not cancelled",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reservations": {"type": "array", "items": {"$ref": "#/definitions/Reservation"}}
                            }
                        }
                    },
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/user/{userId}": {
            "get": {
                "tags": ["Reservations"],
                "summary": "List a user's reservations",
                "parameters": [{"name": "userId", "in": "path", "required": true, "type": "integer", "description": "User ID"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reservations": {"type": "array", "items": {"$ref": "#/definitions/Reservation"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/course/{courseId}": {
            "get": {
                "tags": ["Reservations"],
                "summary": "List a course's reservations",
                "parameters": [{"name": "courseId", "in": "path", "required": true, "type": "integer", "description": "Course ID"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reservations": {"type": "array", "items": {"$ref": "#/definitions/Reservation"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/date/{date}": {
            "get": {
                "tags": ["Reservations"],
                "summary": "List reservations created on a day",
                "parameters": [{"name": "date", "in": "path", "required": true, "type": "string", "format": "date"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reservations": {"type": "array", "items": {"$ref": "#/definitions/Reservation"}}
                            }
                        }
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/cancel/{id}": {
            "put": {
                "tags": ["Reservations"],
                "summary": "Cancel reservation",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/CancelResponse"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reservations/review/{id}": {
            "put": {
                "tags": ["Reservations"],
                "summary": "Mark reservation reviewed",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"reservation": {"$ref": "#/definitions/Reservation"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reviews": {
            "get": {
                "tags": ["Reviews"],
                "summary": "List reviews",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "properties": {
                                "reviews": {"type": "array", "items": {"$ref": "#/definitions/Review"}}
                            }
                        }
                    },
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Reviews"],
                "summary": "Create review",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewRequest"}}],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {"type": "object", "properties": {"review": {"$ref": "#/definitions/Review"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/reviews/{id}": {
            "get": {
                "tags": ["Reviews"],
                "summary": "Get review",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"review": {"$ref": "#/definitions/Review"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "put": {
                "tags": ["Reviews"],
                "summary": "Update review",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ReviewRequest"}}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "object", "properties": {"review": {"$ref": "#/definitions/Review"}}}
                    },
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Reviews"],
                "summary": "Delete review",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "integer", "description": "Identifier"}],
                "responses": {
                    "200": {"description": "Deleted", "schema": {"$ref": "#/definitions/MessageBody"}},
                    "400": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "500": {"description": "Error", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "User": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "birthdate": {"type": "string", "format": "date"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "userId": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Availability": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "date": {"type": "string", "format": "date"},
                "startTime": {"type": "string", "example": "09:00:00"},
                "endTime": {"type": "string", "example": "09:00:00"},
                "isAvailable": {"type": "boolean"},
                "userId": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Reservation": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "isCancelled": {"type": "boolean"},
                "isReviewed": {"type": "boolean"},
                "courseId": {"type": "integer"},
                "userId": {"type": "integer"},
                "availabilityId": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "Review": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "rating": {"type": "integer"},
                "comment": {"type": "string"},
                "reservationId": {"type": "integer"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CourseRating": {
            "type": "object",
            "properties": {"courseId": {"type": "integer"}, "averageRating": {"type": "number"}}
        },
        "CreateUserRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "birthdate": {"type": "string", "format": "date"}
            },
            "required": ["firstName", "lastName", "email", "birthdate"]
        },
        "UpdateUserRequest": {
            "type": "object",
            "properties": {
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "email": {"type": "string"},
                "birthdate": {"type": "string", "format": "date"}
            },
            "required": ["firstName", "lastName", "birthdate"]
        },
        "CourseRequest": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "price": {"type": "integer"},
                "description": {"type": "string"},
                "category": {"type": "string"},
                "userId": {"type": "integer"}
            },
            "required": ["name", "price", "description", "userId"]
        },
        "UpdatePriceRequest": {"type": "object", "properties": {"newPrice": {"type": "integer"}}, "required": ["newPrice"]},
        "CreateAvailabilityRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date"},
                "startTime": {"type": "string", "example": "09:00:00"},
                "endTime": {"type": "string", "example": "09:00:00"},
                "isAvailable": {"type": "boolean"},
                "userId": {"type": "integer"}
            },
            "required": ["date", "startTime", "endTime", "userId"]
        },
        "UpdateAvailabilityRequest": {
            "type": "object",
            "properties": {
                "date": {"type": "string", "format": "date"},
                "startTime": {"type": "string", "example": "09:00:00"},
                "endTime": {"type": "string", "example": "09:00:00"},
                "isAvailable": {"type": "boolean"},
                "userId": {"type": "integer"}
            },
            "required": ["date", "startTime", "endTime", "isAvailable", "userId"]
        },
        "DateRangeRequest": {
            "type": "object",
            "properties": {"startDate": {"type": "string", "format": "date"}, "endDate": {"type": "string", "format": "date"}},
            "required": ["startDate", "endDate"]
        },
        "UpdateStatusRequest": {"type": "object", "properties": {"isAvailable": {"type": "boolean"}}, "required": ["isAvailable"]},
        "CreateReservationRequest": {
            "type": "object",
            "properties": {"courseId": {"type": "integer"}, "userId": {"type": "integer"}, "availabilityId": {"type": "integer"}},
            "required": ["courseId", "userId", "availabilityId"]
        },
        "UpdateReservationRequest": {
            "type": "object",
            "properties": {
                "courseId": {"type": "integer"},
                "userId": {"type": "integer"},
                "availabilityId": {"type": "integer"},
                "isCancelled": {"type": "boolean"}
            },
            "required": ["courseId", "userId", "availabilityId"]
        },
        "ReviewRequest": {
            "type": "object",
            "properties": {"rating": {"type": "integer"}, "comment": {"type": "string"}, "reservationId": {"type": "integer"}},
            "required": ["rating", "comment", "reservationId"]
        },
        "CancelResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}, "reservation": {"$ref": "#/definitions/Reservation"}}
        },
        "MessageBody": {"type": "object", "properties": {"message": {"type": "string"}}},
        "ErrorBody": {"type": "object", "properties": {"error": {"type": "string"}}}
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
