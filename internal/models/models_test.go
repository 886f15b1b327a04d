package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/exemplo/crudmongo-api/internal/document"
)

func intPtr(v int) *int { return &v }

func docKeys(doc document.Doc) []string {
	keys := make([]string, 0, len(doc))
	for _, f := range doc {
		keys = append(keys, f.Key)
	}
	return keys
}

func TestDocumentKeysMatchStoredLayout(t *testing.T) {
	assert.Equal(t, []string{"nome", "ira", "cursoId", "periodoIngressoId"}, docKeys((&Student{}).ToDocument()))
	assert.Equal(t, []string{"nome", "nivel", "modalidade", "turno"}, docKeys((&Course{}).ToDocument()))
	assert.Equal(t, []string{"nome", "cargaHoraria", "ementa"}, docKeys((&Discipline{}).ToDocument()))
	assert.Equal(t, []string{"cursoId", "ano", "semestre", "disciplinasObrigatorias", "disciplinasOptativas"}, docKeys((&Curriculum{}).ToDocument()))
	assert.Equal(t, []string{"disciplinaId", "ano", "semestre", "professor"}, docKeys((&ClassSection{}).ToDocument()))
}

func TestDocumentNeverCarriesID(t *testing.T) {
	course := &Course{ID: "c1", Name: "CS"}
	_, ok := course.ToDocument().Get("id")
	assert.False(t, ok)
	_, ok = course.ToDocument().Get("_id")
	assert.False(t, ok)
}

func TestNullNumericsStayNull(t *testing.T) {
	doc := (&Student{Name: "Ana"}).ToDocument()

	v, ok := doc.Get("ira")
	assert.True(t, ok)
	assert.Nil(t, v)
	assert.Nil(t, StudentFromDocument("s1", doc).AcademicIndex)
}

func TestCurriculumFromDocument(t *testing.T) {
	doc := document.Doc{
		{Key: "cursoId", Value: "c1"},
		{Key: "ano", Value: int32(2024)},
		{Key: "semestre", Value: int64(1)},
		{Key: "disciplinasObrigatorias", Value: []interface{}{"d1", "d2"}},
	}

	got := CurriculumFromDocument("cur1", doc)

	assert.Equal(t, "cur1", got.ID)
	assert.Equal(t, 2024, *got.Year)
	assert.Equal(t, 1, *got.Semester)
	assert.Equal(t, []string{"d1", "d2"}, got.MandatoryDisciplineIDs)
	assert.Nil(t, got.ElectiveDisciplineIDs)
}

func TestOverwriteReplacesEveryMutableField(t *testing.T) {
	existing := &ClassSection{ID: "t1", DisciplineID: "d1", Year: intPtr(2023), Semester: intPtr(2), Instructor: "Silva"}

	existing.Overwrite(&ClassSection{ID: "other", DisciplineID: "d2", Year: intPtr(2024)})

	assert.Equal(t, "t1", existing.ID)
	assert.Equal(t, "d2", existing.DisciplineID)
	assert.Equal(t, 2024, *existing.Year)
	assert.Nil(t, existing.Semester)
	assert.Empty(t, existing.Instructor)
}
