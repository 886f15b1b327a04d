package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/exemplo/crudmongo-api/internal/models"
	"github.com/exemplo/crudmongo-api/internal/service"
	"github.com/exemplo/crudmongo-api/internal/store"
	"github.com/exemplo/crudmongo-api/pkg/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	return newTestRouterWithPrefix(t, "/api")
}

func newTestRouterWithPrefix(t *testing.T, prefix string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:       "test",
		Port:      8080,
		APIPrefix: prefix,
		Store:     config.StoreConfig{Driver: config.DriverMemory, Timeout: time.Second},
		Metrics:   config.MetricsConfig{Enabled: true, Path: "/metrics"},
	}
	metrics := service.NewMetricsService()
	return NewRouter(Dependencies{
		Config:  cfg,
		Logger:  zap.NewNop(),
		Store:   store.NewMemoryStore(),
		Cache:   service.NewCacheService(nil, metrics, time.Minute, zap.NewNop()),
		Metrics: metrics,
	})
}

func perform(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCourseLifecycle(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPost, "/api/cursos", map[string]interface{}{
		"nome":       "Engenharia de Software",
		"nivel":      "Graduação",
		"modalidade": "Presencial",
		"turno":      "Noturno",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Presencial", created.Modality)

	w = perform(r, http.MethodGet, "/api/cursos/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created, fetched)

	w = perform(r, http.MethodPut, "/api/cursos/"+created.ID, map[string]interface{}{
		"nome":       "Engenharia de Software",
		"nivel":      "Graduação",
		"modalidade": "EaD",
		"turno":      "Noturno",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var updated models.Course
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "EaD", updated.Modality)

	w = perform(r, http.MethodDelete, "/api/cursos/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(r, http.MethodGet, "/api/cursos/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestListReflectsCreatesAndDeletes(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/api/disciplinas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	ids := make([]string, 0, 3)
	for _, name := range []string{"Cálculo I", "Álgebra Linear", "Estruturas de Dados"} {
		w = perform(r, http.MethodPost, "/api/disciplinas", map[string]interface{}{"nome": name, "cargaHoraria": 60})
		require.Equal(t, http.StatusCreated, w.Code)
		var d models.Discipline
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &d))
		ids = append(ids, d.ID)
	}

	w = perform(r, http.MethodDelete, "/api/disciplinas/"+ids[1], nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = perform(r, http.MethodGet, "/api/disciplinas", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listed []models.Discipline
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	require.Len(t, listed, 2)
	assert.Equal(t, ids[0], listed[0].ID)
	assert.Equal(t, ids[2], listed[1].ID)
	require.NotNil(t, listed[0].CreditHours)
	assert.Equal(t, 60, *listed[0].CreditHours)
}

func TestCreateDiscardsClientID(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPost, "/api/alunos", map[string]interface{}{"id": "chosen", "nome": "Ana", "ira": 8.5})
	require.Equal(t, http.StatusCreated, w.Code)
	var student models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &student))
	assert.NotEqual(t, "chosen", student.ID)

	w = perform(r, http.MethodGet, "/api/alunos/chosen", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMissingDocumentsReturnNotFound(t *testing.T) {
	r := newTestRouter(t)

	for _, collection := range models.Collections {
		w := perform(r, http.MethodGet, "/api/"+collection+"/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, collection)

		w = perform(r, http.MethodPut, "/api/"+collection+"/missing", map[string]interface{}{})
		assert.Equal(t, http.StatusNotFound, w.Code, collection)

		w = perform(r, http.MethodDelete, "/api/"+collection+"/missing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code, collection)
	}

	w := perform(r, http.MethodGet, "/api/turmas", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestUpdateDoesNotCreate(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPut, "/api/curriculos/ghost", map[string]interface{}{"ano": 2024})
	require.Equal(t, http.StatusNotFound, w.Code)

	w = perform(r, http.MethodGet, "/api/curriculos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	r := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/cursos", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/api/cursos", nil)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	req := httptest.NewRequest(http.MethodOptions, "/api/cursos/abc", nil)
	req.Header.Set("Origin", "https://example.org")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), http.MethodPut)
}

func TestSystemRoutes(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = perform(r, http.MethodGet, "/ready", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	perform(r, http.MethodGet, "/api/cursos", nil)
	w = perform(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")
	assert.Contains(t, w.Body.String(), "store_operation_duration_seconds")
}

func TestCreatedDocumentMatchesFetchedDocument(t *testing.T) {
	r := newTestRouter(t)

	w := perform(r, http.MethodPost, "/api/curriculos", map[string]interface{}{"cursoId": "x"})
	require.Equal(t, http.StatusCreated, w.Code)
	created := w.Body.String()
	assert.Contains(t, created, `"disciplinasObrigatorias":null`)

	var curriculum models.Curriculum
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &curriculum))

	w = perform(r, http.MethodGet, "/api/curriculos/"+curriculum.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, created, w.Body.String())

	w = perform(r, http.MethodGet, "/api/curriculos", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "["+created+"]", w.Body.String())
}

func TestRootPrefixMountsResourcesAtTopLevel(t *testing.T) {
	r := newTestRouterWithPrefix(t, "/")

	w := perform(r, http.MethodPost, "/turmas", map[string]interface{}{"professor": "Ana", "ano": 2024})
	require.Equal(t, http.StatusCreated, w.Code)
	var section models.ClassSection
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &section))

	w = perform(r, http.MethodGet, "/turmas/"+section.ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = perform(r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
