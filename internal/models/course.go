package models

import "github.com/exemplo/crudmongo-api/internal/document"

const CourseCollection = "cursos"

// Course is a degree programme offered in a given modality and shift.
type Course struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	Level    string `json:"nivel"`
	Modality string `json:"modalidade"`
	Shift    string `json:"turno"`
}

func (c *Course) GetID() string   { return c.ID }
func (c *Course) SetID(id string) { c.ID = id }

func (c *Course) Overwrite(src *Course) {
	c.Name = src.Name
	c.Level = src.Level
	c.Modality = src.Modality
	c.Shift = src.Shift
}

func (c *Course) ToDocument() document.Doc {
	return document.Doc{
		{Key: "nome", Value: c.Name},
		{Key: "nivel", Value: c.Level},
		{Key: "modalidade", Value: c.Modality},
		{Key: "turno", Value: c.Shift},
	}
}

func CourseFromDocument(id string, doc document.Doc) Course {
	return Course{
		ID:       id,
		Name:     doc.String("nome"),
		Level:    doc.String("nivel"),
		Modality: doc.String("modalidade"),
		Shift:    doc.String("turno"),
	}
}
