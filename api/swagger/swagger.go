package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Academic CRUD API",
        "description": "CRUD endpoints for students, courses, disciplines, curricula and class sections",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Students", "description": "Students collection (alunos)"},
        {"name": "Courses", "description": "Courses collection (cursos)"},
        {"name": "Disciplines", "description": "Disciplines collection (disciplinas)"},
        {"name": "Curricula", "description": "Curricula collection (curriculos)"},
        {"name": "Class Sections", "description": "Class Sections collection (turmas)"}
    ],
    "paths": {
        "/alunos": {
            "get": {
                "tags": ["Students"],
                "summary": "List every student",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Student"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Students"],
                "summary": "Create student",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Student"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/alunos/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get student by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Students"],
                "summary": "Replace every field of student",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Student"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Students"],
                "summary": "Delete student",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/cursos": {
            "get": {
                "tags": ["Courses"],
                "summary": "List every course",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Course"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Courses"],
                "summary": "Create course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/cursos/{id}": {
            "get": {
                "tags": ["Courses"],
                "summary": "Get course by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Courses"],
                "summary": "Replace every field of course",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Course"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Course"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Courses"],
                "summary": "Delete course",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/disciplinas": {
            "get": {
                "tags": ["Disciplines"],
                "summary": "List every discipline",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Discipline"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Disciplines"],
                "summary": "Create discipline",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Discipline"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Discipline"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/disciplinas/{id}": {
            "get": {
                "tags": ["Disciplines"],
                "summary": "Get discipline by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Discipline"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Disciplines"],
                "summary": "Replace every field of discipline",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Discipline"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Discipline"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Disciplines"],
                "summary": "Delete discipline",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/curriculos": {
            "get": {
                "tags": ["Curricula"],
                "summary": "List every curriculum",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Curriculum"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Curricula"],
                "summary": "Create curriculum",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Curriculum"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Curriculum"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/curriculos/{id}": {
            "get": {
                "tags": ["Curricula"],
                "summary": "Get curriculum by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Curriculum"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Curricula"],
                "summary": "Replace every field of curriculum",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/Curriculum"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Curriculum"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Curricula"],
                "summary": "Delete curriculum",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/turmas": {
            "get": {
                "tags": ["Class Sections"],
                "summary": "List every class section",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/ClassSection"}}},
                    "500": {"description": "Store failure", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "post": {
                "tags": ["Class Sections"],
                "summary": "Create class section",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassSection"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ClassSection"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/turmas/{id}": {
            "get": {
                "tags": ["Class Sections"],
                "summary": "Get class section by id",
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClassSection"}},
                    "404": {"description": "Not Found"}
                }
            },
            "put": {
                "tags": ["Class Sections"],
                "summary": "Replace every field of class section",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/ClassSection"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ClassSection"}},
                    "400": {"description": "Malformed payload", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not Found"}
                }
            },
            "delete": {
                "tags": ["Class Sections"],
                "summary": "Delete class section",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "No Content"},
                    "404": {"description": "Not Found"}
                }
            }
        }
    },
    "definitions": {
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "ira": {"type": "number"},
                "cursoId": {"type": "string"},
                "periodoIngressoId": {"type": "string"}
            }
        },
        "Course": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "nivel": {"type": "string"},
                "modalidade": {"type": "string"},
                "turno": {"type": "string"}
            }
        },
        "Discipline": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "nome": {"type": "string"},
                "cargaHoraria": {"type": "integer"},
                "ementa": {"type": "string"}
            }
        },
        "Curriculum": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "cursoId": {"type": "string"},
                "ano": {"type": "integer"},
                "semestre": {"type": "integer"},
                "disciplinasObrigatorias": {"type": "array", "items": {"type": "string"}},
                "disciplinasOptativas": {"type": "array", "items": {"type": "string"}}
            }
        },
        "ClassSection": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "disciplinaId": {"type": "string"},
                "ano": {"type": "integer"},
                "semestre": {"type": "integer"},
                "professor": {"type": "string"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ErrorBody": {
            "type": "object",
            "properties": {
                "error": {"$ref": "#/definitions/APIError"}
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
