package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/models"
	"github.com/exemplo/crudmongo-api/internal/store"
	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
)

type resourceRepository[T any] interface {
	Collection() string
	FindAll(ctx context.Context) ([]T, error)
	FindByID(ctx context.Context, id string) (*T, error)
	ExistsByID(ctx context.Context, id string) (bool, error)
	Save(ctx context.Context, entity *T) (*T, error)
	DeleteByID(ctx context.Context, id string) error
}

// ResourceService implements list/get/create/update/delete for one entity type.
//
// Update and Delete each take two store round trips (lookup, then write) with
// nothing held in between; a concurrent writer can slip in between the two.
type ResourceService[T any, PT models.Entity[T]] struct {
	name   string
	repo   resourceRepository[T]
	cache  *CacheService
	logger *zap.Logger
}

// NewResourceService builds a service; name is the singular noun used in error messages.
func NewResourceService[T any, PT models.Entity[T]](name string, repo resourceRepository[T], cache *CacheService, logger *zap.Logger) *ResourceService[T, PT] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService[T, PT]{
		name:   name,
		repo:   repo,
		cache:  cache,
		logger: logger.With(zap.String("collection", repo.Collection())),
	}
}

// List returns every entity; an empty collection yields an empty, non-nil slice.
func (s *ResourceService[T, PT]) List(ctx context.Context) ([]T, error) {
	collection := s.repo.Collection()
	items, err := cached(ctx, s.cache, collection, func(gen int64) string {
		return listCacheKey(collection, gen)
	}, s.repo.FindAll)
	if err != nil {
		return nil, s.internal(err, "failed to list "+s.repo.Collection())
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// Get returns the entity or a NOT_FOUND error.
func (s *ResourceService[T, PT]) Get(ctx context.Context, id string) (*T, error) {
	collection := s.repo.Collection()
	entity, err := cached(ctx, s.cache, collection, func(gen int64) string {
		return itemCacheKey(collection, gen, id)
	}, func(ctx context.Context) (*T, error) {
		return s.repo.FindByID(ctx, id)
	})
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, s.notFound()
		}
		return nil, s.internal(err, "failed to load "+s.name)
	}
	return entity, nil
}

// Create stores entity under a store-assigned identifier; any id sent by the caller is discarded.
func (s *ResourceService[T, PT]) Create(ctx context.Context, entity *T) (*T, error) {
	PT(entity).SetID("")

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		return nil, s.internal(err, "failed to create "+s.name)
	}
	s.cache.Invalidate(ctx, s.repo.Collection())
	s.logger.Info("resource created", zap.String("id", PT(saved).GetID()))
	return saved, nil
}

// Update overwrites every mutable field of the stored entity with the values in
// patch. Fields absent from patch are reset to their zero value.
func (s *ResourceService[T, PT]) Update(ctx context.Context, id string, patch *T) (*T, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNoDocument) {
			return nil, s.notFound()
		}
		return nil, s.internal(err, "failed to load "+s.name)
	}

	PT(existing).Overwrite(patch)

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		return nil, s.internal(err, "failed to update "+s.name)
	}
	s.cache.Invalidate(ctx, s.repo.Collection())
	s.logger.Info("resource updated", zap.String("id", id))
	return saved, nil
}

// Delete removes the entity or returns NOT_FOUND when it does not exist.
func (s *ResourceService[T, PT]) Delete(ctx context.Context, id string) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return s.internal(err, "failed to check "+s.name)
	}
	if !exists {
		return s.notFound()
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return s.internal(err, "failed to delete "+s.name)
	}
	s.cache.Invalidate(ctx, s.repo.Collection())
	s.logger.Info("resource deleted", zap.String("id", id))
	return nil
}

func (s *ResourceService[T, PT]) notFound() error {
	return appErrors.Clone(appErrors.ErrNotFound, s.name+" not found")
}

func (s *ResourceService[T, PT]) internal(err error, message string) error {
	s.logger.Error(message, zap.Error(err))
	return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, message)
}

type (
	StudentService      = ResourceService[models.Student, *models.Student]
	CourseService       = ResourceService[models.Course, *models.Course]
	DisciplineService   = ResourceService[models.Discipline, *models.Discipline]
	CurriculumService   = ResourceService[models.Curriculum, *models.Curriculum]
	ClassSectionService = ResourceService[models.ClassSection, *models.ClassSection]
)
