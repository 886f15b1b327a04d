package models

import "github.com/exemplo/crudmongo-api/internal/document"

const CurriculumCollection = "curriculos"

// Curriculum lists the mandatory and elective disciplines of a course for one
// academic period. Discipline ids are not checked against the disciplines collection.
type Curriculum struct {
	ID                     string   `json:"id"`
	CourseID               string   `json:"cursoId"`
	Year                   *int     `json:"ano"`
	Semester               *int     `json:"semestre"`
	MandatoryDisciplineIDs []string `json:"disciplinasObrigatorias"`
	ElectiveDisciplineIDs  []string `json:"disciplinasOptativas"`
}

func (c *Curriculum) GetID() string   { return c.ID }
func (c *Curriculum) SetID(id string) { c.ID = id }

func (c *Curriculum) Overwrite(src *Curriculum) {
	c.CourseID = src.CourseID
	c.Year = src.Year
	c.Semester = src.Semester
	c.MandatoryDisciplineIDs = src.MandatoryDisciplineIDs
	c.ElectiveDisciplineIDs = src.ElectiveDisciplineIDs
}

func (c *Curriculum) ToDocument() document.Doc {
	return document.Doc{
		{Key: "cursoId", Value: c.CourseID},
		{Key: "ano", Value: document.Int(c.Year)},
		{Key: "semestre", Value: document.Int(c.Semester)},
		{Key: "disciplinasObrigatorias", Value: c.MandatoryDisciplineIDs},
		{Key: "disciplinasOptativas", Value: c.ElectiveDisciplineIDs},
	}
}

func CurriculumFromDocument(id string, doc document.Doc) Curriculum {
	return Curriculum{
		ID:                     id,
		CourseID:               doc.String("cursoId"),
		Year:                   doc.Int("ano"),
		Semester:               doc.Int("semestre"),
		MandatoryDisciplineIDs: doc.Strings("disciplinasObrigatorias"),
		ElectiveDisciplineIDs:  doc.Strings("disciplinasOptativas"),
	}
}
