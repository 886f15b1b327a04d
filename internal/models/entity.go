package models

import "github.com/exemplo/crudmongo-api/internal/document"

// Entity is satisfied by pointers to the stored record types. Overwrite copies
// every mutable field from src and leaves the identifier untouched.
type Entity[T any] interface {
	*T
	GetID() string
	SetID(id string)
	Overwrite(src *T)
	ToDocument() document.Doc
}

// Collections lists every collection in registration order.
var Collections = []string{
	StudentCollection,
	CourseCollection,
	DisciplineCollection,
	CurriculumCollection,
	ClassSectionCollection,
}
