package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/exemplo/crudmongo-api/internal/document"
	"github.com/exemplo/crudmongo-api/internal/models"
	"github.com/exemplo/crudmongo-api/internal/store"
)

// QueryObserver receives the duration of every store round trip.
type QueryObserver interface {
	ObserveDBQuery(label string, duration time.Duration)
}

// Schema binds an entity type to its collection and decoder.
type Schema[T any] struct {
	Collection string
	Decode     func(id string, doc document.Doc) T
}

// DocumentRepository is the persistence gateway for one collection.
type DocumentRepository[T any, PT models.Entity[T]] struct {
	store    store.Store
	schema   Schema[T]
	observer QueryObserver
}

// NewDocumentRepository creates a repository over s. observer may be nil.
func NewDocumentRepository[T any, PT models.Entity[T]](s store.Store, schema Schema[T], observer QueryObserver) *DocumentRepository[T, PT] {
	return &DocumentRepository[T, PT]{store: s, schema: schema, observer: observer}
}

// Collection returns the collection name backing the repository.
func (r *DocumentRepository[T, PT]) Collection() string {
	return r.schema.Collection
}

// FindAll returns every stored entity; never nil.
func (r *DocumentRepository[T, PT]) FindAll(ctx context.Context) ([]T, error) {
	defer r.observe("find_all", time.Now())

	records, err := r.store.FindAll(ctx, r.schema.Collection)
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.schema.Collection, err)
	}

	items := make([]T, 0, len(records))
	for _, rec := range records {
		items = append(items, r.schema.Decode(rec.ID, rec.Doc))
	}
	return items, nil
}

// FindByID returns store.ErrNoDocument (wrapped) when id is unknown.
func (r *DocumentRepository[T, PT]) FindByID(ctx context.Context, id string) (*T, error) {
	defer r.observe("find_by_id", time.Now())

	doc, err := r.store.FindByID(ctx, r.schema.Collection, id)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", r.schema.Collection, err)
	}
	entity := r.schema.Decode(id, doc)
	return &entity, nil
}

func (r *DocumentRepository[T, PT]) ExistsByID(ctx context.Context, id string) (bool, error) {
	defer r.observe("exists_by_id", time.Now())

	exists, err := r.store.Exists(ctx, r.schema.Collection, id)
	if err != nil {
		return false, fmt.Errorf("exists %s: %w", r.schema.Collection, err)
	}
	return exists, nil
}

// Save inserts the entity when it has no id yet, assigning one from the store,
// and replaces the stored document otherwise.
func (r *DocumentRepository[T, PT]) Save(ctx context.Context, entity *T) (*T, error) {
	defer r.observe("save", time.Now())

	e := PT(entity)
	if e.GetID() == "" {
		e.SetID(r.store.NewID())
	}
	if err := r.store.Replace(ctx, r.schema.Collection, e.GetID(), e.ToDocument()); err != nil {
		return nil, fmt.Errorf("save %s: %w", r.schema.Collection, err)
	}
	return entity, nil
}

func (r *DocumentRepository[T, PT]) DeleteByID(ctx context.Context, id string) error {
	defer r.observe("delete_by_id", time.Now())

	if err := r.store.Delete(ctx, r.schema.Collection, id); err != nil {
		return fmt.Errorf("delete %s: %w", r.schema.Collection, err)
	}
	return nil
}

func (r *DocumentRepository[T, PT]) observe(op string, start time.Time) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveDBQuery(r.schema.Collection+"."+op, time.Since(start))
}

type (
	StudentRepository      = DocumentRepository[models.Student, *models.Student]
	CourseRepository       = DocumentRepository[models.Course, *models.Course]
	DisciplineRepository   = DocumentRepository[models.Discipline, *models.Discipline]
	CurriculumRepository   = DocumentRepository[models.Curriculum, *models.Curriculum]
	ClassSectionRepository = DocumentRepository[models.ClassSection, *models.ClassSection]
)

func NewStudentRepository(s store.Store, observer QueryObserver) *StudentRepository {
	return NewDocumentRepository[models.Student](s, Schema[models.Student]{
		Collection: models.StudentCollection,
		Decode:     models.StudentFromDocument,
	}, observer)
}

func NewCourseRepository(s store.Store, observer QueryObserver) *CourseRepository {
	return NewDocumentRepository[models.Course](s, Schema[models.Course]{
		Collection: models.CourseCollection,
		Decode:     models.CourseFromDocument,
	}, observer)
}

func NewDisciplineRepository(s store.Store, observer QueryObserver) *DisciplineRepository {
	return NewDocumentRepository[models.Discipline](s, Schema[models.Discipline]{
		Collection: models.DisciplineCollection,
		Decode:     models.DisciplineFromDocument,
	}, observer)
}

func NewCurriculumRepository(s store.Store, observer QueryObserver) *CurriculumRepository {
	return NewDocumentRepository[models.Curriculum](s, Schema[models.Curriculum]{
		Collection: models.CurriculumCollection,
		Decode:     models.CurriculumFromDocument,
	}, observer)
}

func NewClassSectionRepository(s store.Store, observer QueryObserver) *ClassSectionRepository {
	return NewDocumentRepository[models.ClassSection](s, Schema[models.ClassSection]{
		Collection: models.ClassSectionCollection,
		Decode:     models.ClassSectionFromDocument,
	}, observer)
}
