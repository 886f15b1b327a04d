package models

import "github.com/exemplo/crudmongo-api/internal/document"

const DisciplineCollection = "disciplinas"

type Discipline struct {
	ID          string `json:"id"`
	Name        string `json:"nome"`
	CreditHours *int   `json:"cargaHoraria"`
	Syllabus    string `json:"ementa"`
}

func (d *Discipline) GetID() string   { return d.ID }
func (d *Discipline) SetID(id string) { d.ID = id }

func (d *Discipline) Overwrite(src *Discipline) {
	d.Name = src.Name
	d.CreditHours = src.CreditHours
	d.Syllabus = src.Syllabus
}

func (d *Discipline) ToDocument() document.Doc {
	return document.Doc{
		{Key: "nome", Value: d.Name},
		{Key: "cargaHoraria", Value: document.Int(d.CreditHours)},
		{Key: "ementa", Value: d.Syllabus},
	}
}

func DisciplineFromDocument(id string, doc document.Doc) Discipline {
	return Discipline{
		ID:          id,
		Name:        doc.String("nome"),
		CreditHours: doc.Int("cargaHoraria"),
		Syllabus:    doc.String("ementa"),
	}
}
