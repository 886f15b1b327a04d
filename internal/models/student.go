package models

import "github.com/exemplo/crudmongo-api/internal/document"

const StudentCollection = "alunos"

// Student is an enrolled student. CourseID and IntakePeriodID are unchecked references.
type Student struct {
	ID             string   `json:"id"`
	Name           string   `json:"nome"`
	AcademicIndex  *float64 `json:"ira"`
	CourseID       string   `json:"cursoId"`
	IntakePeriodID string   `json:"periodoIngressoId"`
}

func (s *Student) GetID() string   { return s.ID }
func (s *Student) SetID(id string) { s.ID = id }

func (s *Student) Overwrite(src *Student) {
	s.Name = src.Name
	s.AcademicIndex = src.AcademicIndex
	s.CourseID = src.CourseID
	s.IntakePeriodID = src.IntakePeriodID
}

func (s *Student) ToDocument() document.Doc {
	return document.Doc{
		{Key: "nome", Value: s.Name},
		{Key: "ira", Value: document.Float64(s.AcademicIndex)},
		{Key: "cursoId", Value: s.CourseID},
		{Key: "periodoIngressoId", Value: s.IntakePeriodID},
	}
}

// StudentFromDocument decodes a stored student.
func StudentFromDocument(id string, doc document.Doc) Student {
	return Student{
		ID:             id,
		Name:           doc.String("nome"),
		AcademicIndex:  doc.Float("ira"),
		CourseID:       doc.String("cursoId"),
		IntakePeriodID: doc.String("periodoIngressoId"),
	}
}
