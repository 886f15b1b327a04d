package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exemplo/crudmongo-api/internal/models"
	appErrors "github.com/exemplo/crudmongo-api/pkg/errors"
)

type courseServiceMock struct {
	items      map[string]models.Course
	failList   error
	lastCreate *models.Course
	lastUpdate struct {
		id    string
		patch *models.Course
	}
}

func newCourseServiceMock(items ...models.Course) *courseServiceMock {
	m := &courseServiceMock{items: map[string]models.Course{}}
	for _, item := range items {
		m.items[item.ID] = item
	}
	return m
}

func (m *courseServiceMock) List(ctx context.Context) ([]models.Course, error) {
	if m.failList != nil {
		return nil, m.failList
	}
	out := make([]models.Course, 0, len(m.items))
	for _, item := range m.items {
		out = append(out, item)
	}
	return out, nil
}

func (m *courseServiceMock) Get(ctx context.Context, id string) (*models.Course, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &item, nil
}

func (m *courseServiceMock) Create(ctx context.Context, entity *models.Course) (*models.Course, error) {
	m.lastCreate = entity
	created := *entity
	created.ID = "generated"
	m.items[created.ID] = created
	return &created, nil
}

func (m *courseServiceMock) Update(ctx context.Context, id string, patch *models.Course) (*models.Course, error) {
	m.lastUpdate.id = id
	m.lastUpdate.patch = patch
	if _, ok := m.items[id]; !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	updated := *patch
	updated.ID = id
	m.items[id] = updated
	return &updated, nil
}

func (m *courseServiceMock) Delete(ctx context.Context, id string) error {
	if _, ok := m.items[id]; !ok {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	delete(m.items, id)
	return nil
}

func newCourseRouter(svc *courseServiceMock) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewResourceHandler[models.Course](svc).Register(r.Group("/cursos"))
	return r
}

func serve(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestResourceHandlerList(t *testing.T) {
	r := newCourseRouter(newCourseServiceMock(models.Course{ID: "c1", Name: "Direito"}))

	w := serve(r, http.MethodGet, "/cursos", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"c1","nome":"Direito","nivel":"","modalidade":"","turno":""}]`, w.Body.String())
	assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
}

func TestResourceHandlerListFailure(t *testing.T) {
	svc := newCourseServiceMock()
	svc.failList = appErrors.Wrap(errors.New("boom"), appErrors.ErrInternal.Code, http.StatusInternalServerError, "failed to list cursos")
	r := newCourseRouter(svc)

	w := serve(r, http.MethodGet, "/cursos", "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, appErrors.ErrInternal.Code, body["error"]["code"])
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestResourceHandlerGet(t *testing.T) {
	r := newCourseRouter(newCourseServiceMock(models.Course{ID: "c1", Name: "Direito"}))

	w := serve(r, http.MethodGet, "/cursos/c1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var course models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &course))
	assert.Equal(t, "Direito", course.Name)

	w = serve(r, http.MethodGet, "/cursos/c2", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResourceHandlerCreate(t *testing.T) {
	svc := newCourseServiceMock()
	r := newCourseRouter(svc)

	w := serve(r, http.MethodPost, "/cursos", `{"nome":"Medicina","turno":"Integral"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, svc.lastCreate)
	assert.Equal(t, "Medicina", svc.lastCreate.Name)
	assert.JSONEq(t, `{"id":"generated","nome":"Medicina","nivel":"","modalidade":"","turno":"Integral"}`, w.Body.String())
}

func TestResourceHandlerCreateRejectsMalformedJSON(t *testing.T) {
	svc := newCourseServiceMock()
	r := newCourseRouter(svc)

	w := serve(r, http.MethodPost, "/cursos", `{"nome":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Nil(t, svc.lastCreate)
	assert.Contains(t, w.Body.String(), appErrors.ErrValidation.Code)
}

func TestResourceHandlerUpdate(t *testing.T) {
	svc := newCourseServiceMock(models.Course{ID: "c1", Name: "Direito", Modality: "Presencial"})
	r := newCourseRouter(svc)

	w := serve(r, http.MethodPut, "/cursos/c1", `{"nome":"Direito","modalidade":"EaD"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "c1", svc.lastUpdate.id)
	assert.Equal(t, "EaD", svc.items["c1"].Modality)

	w = serve(r, http.MethodPut, "/cursos/ghost", `{"nome":"x"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestResourceHandlerDelete(t *testing.T) {
	svc := newCourseServiceMock(models.Course{ID: "c1"})
	r := newCourseRouter(svc)

	w := serve(r, http.MethodDelete, "/cursos/c1", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.NotContains(t, svc.items, "c1")

	w = serve(r, http.MethodDelete, "/cursos/c1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
