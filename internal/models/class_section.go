package models

import "github.com/exemplo/crudmongo-api/internal/document"

const ClassSectionCollection = "turmas"

// ClassSection is one offering of a discipline in a given period.
type ClassSection struct {
	ID           string `json:"id"`
	DisciplineID string `json:"disciplinaId"`
	Year         *int   `json:"ano"`
	Semester     *int   `json:"semestre"`
	Instructor   string `json:"professor"`
}

func (t *ClassSection) GetID() string   { return t.ID }
func (t *ClassSection) SetID(id string) { t.ID = id }

func (t *ClassSection) Overwrite(src *ClassSection) {
	t.DisciplineID = src.DisciplineID
	t.Year = src.Year
	t.Semester = src.Semester
	t.Instructor = src.Instructor
}

func (t *ClassSection) ToDocument() document.Doc {
	return document.Doc{
		{Key: "disciplinaId", Value: t.DisciplineID},
		{Key: "ano", Value: document.Int(t.Year)},
		{Key: "semestre", Value: document.Int(t.Semester)},
		{Key: "professor", Value: t.Instructor},
	}
}

func ClassSectionFromDocument(id string, doc document.Doc) ClassSection {
	return ClassSection{
		ID:           id,
		DisciplineID: doc.String("disciplinaId"),
		Year:         doc.Int("ano"),
		Semester:     doc.Int("semestre"),
		Instructor:   doc.String("professor"),
	}
}
