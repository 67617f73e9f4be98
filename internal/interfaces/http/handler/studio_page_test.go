package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	studioapp "github.com/pos/backend/internal/application/studio"
	"github.com/pos/backend/internal/domain/shared"
	"github.com/pos/backend/internal/domain/studio"
	"github.com/pos/backend/internal/infrastructure/cache"
	"github.com/pos/backend/internal/interfaces/http/dto"
	"github.com/pos/backend/internal/interfaces/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func newStudioRouter(t *testing.T, repo *MockPageRepository) *gin.Engine {
	t.Helper()
	svc := studioapp.NewPageService(repo, cache.NewInMemoryWelcomeCache(cache.DefaultWelcomeTTL), zaptest.NewLogger(t))
	r := gin.New()
	r.Use(middleware.RequestID())
	NewStudioPageHandler(svc).RegisterRoutes(r.Group("/api/v1"))
	return r
}

func newPage(t *testing.T, slug string, sortOrder int) *studio.Page {
	t.Helper()
	page, err := studio.NewPage(studio.PageInput{
		Slug:      slug,
		MenuLabel: strings.ToUpper(slug),
		Title:     "Judul " + slug,
		SortOrder: sortOrder,
		IsActive:  true,
	})
	require.NoError(t, err)
	return page
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStudioPageHandler_WelcomeIsCached(t *testing.T) {
	repo := new(MockPageRepository)
	repo.On("FindBySlug", mock.Anything, mock.Anything).Return(&studio.Page{}, nil)
	repo.On("FindActive", mock.Anything).Return([]studio.Page{*newPage(t, "home", 1), *newPage(t, "about", 2)}, nil).Once()
	r := newStudioRouter(t, repo)

	for range 2 {
		w := doRequest(r, http.MethodGet, "/api/v1/welcome", "")
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeResponse(t, w).Data.(map[string]any)
		sections := data["sections"].([]any)
		require.Len(t, sections, 2)
		assert.Equal(t, "home", sections[0].(map[string]any)["slug"])
	}
	repo.AssertNumberOfCalls(t, "FindActive", 1)
}

func TestStudioPageHandler_List(t *testing.T) {
	repo := new(MockPageRepository)
	repo.On("FindBySlug", mock.Anything, mock.Anything).Return(&studio.Page{}, nil)
	repo.On("FindAll", mock.Anything, mock.MatchedBy(func(f shared.Filter) bool {
		return f.Search == "kelas" && f.Page == 2 && f.PageSize == 10
	})).Return([]studio.Page{*newPage(t, "classes", 3)}, int64(11), nil)

	w := doRequest(newStudioRouter(t, repo), http.MethodGet, "/api/v1/studio-pages?search=kelas&page=2", "")

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.EqualValues(t, 11, data["total"])
	assert.EqualValues(t, 2, data["total_pages"])
	assert.Len(t, data["items"], 1)
}

func TestStudioPageHandler_ListRejectsBadPage(t *testing.T) {
	w := doRequest(newStudioRouter(t, new(MockPageRepository)), http.MethodGet, "/api/v1/studio-pages?page=-1", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	require.Len(t, resp.Error.Details, 1)
	assert.Equal(t, "page", resp.Error.Details[0].Field)
}

func TestStudioPageHandler_Get(t *testing.T) {
	page := newPage(t, "pricing", 5)
	repo := new(MockPageRepository)
	repo.On("FindByID", mock.Anything, page.ID).Return(page, nil)
	missing := uuid.New()
	repo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)
	r := newStudioRouter(t, repo)

	w := doRequest(r, http.MethodGet, "/api/v1/studio-pages/"+page.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "pricing", decodeResponse(t, w).Data.(map[string]any)["slug"])

	w = doRequest(r, http.MethodGet, "/api/v1/studio-pages/"+missing.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, dto.ErrCodeNotFound, decodeResponse(t, w).Error.Code)

	w = doRequest(r, http.MethodGet, "/api/v1/studio-pages/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, dto.ErrCodeBadRequest, decodeResponse(t, w).Error.Code)
}

func TestStudioPageHandler_Create(t *testing.T) {
	repo := new(MockPageRepository)
	repo.On("ExistsBySlugExcludingID", mock.Anything, "yoga-pagi", uuid.Nil).Return(false, nil)
	repo.On("Save", mock.Anything, mock.AnythingOfType("*studio.Page")).Return(nil)

	body := `{"slug":"yoga-pagi","menu_label":"Yoga Pagi","title":"Kelas Yoga Pagi","content":"Setiap hari","sort_order":9,"is_active":true}`
	w := doRequest(newStudioRouter(t, repo), http.MethodPost, "/api/v1/studio-pages", body)

	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "yoga-pagi", data["slug"])
	assert.EqualValues(t, 9, data["sort_order"])
	assert.Equal(t, true, data["is_active"])
	repo.AssertExpectations(t)
}

func TestStudioPageHandler_CreateDuplicateSlug(t *testing.T) {
	repo := new(MockPageRepository)
	repo.On("ExistsBySlugExcludingID", mock.Anything, "home", uuid.Nil).Return(true, nil)

	body := `{"slug":"home","menu_label":"Home","title":"Home","is_active":true}`
	w := doRequest(newStudioRouter(t, repo), http.MethodPost, "/api/v1/studio-pages", body)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, dto.ErrCodeAlreadyExists, decodeResponse(t, w).Error.Code)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestStudioPageHandler_CreateValidation(t *testing.T) {
	body := `{"slug":"bad slug!","title":"","sort_order":-1}`
	w := doRequest(newStudioRouter(t, new(MockPageRepository)), http.MethodPost, "/api/v1/studio-pages", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, dto.ErrCodeValidation, resp.Error.Code)
	assert.NotEmpty(t, resp.Error.RequestID)

	fields := make([]string, 0, len(resp.Error.Details))
	for _, d := range resp.Error.Details {
		fields = append(fields, d.Field)
	}
	assert.ElementsMatch(t, []string{"slug", "menu_label", "title", "sort_order", "is_active"}, fields)
}

func TestStudioPageHandler_Update(t *testing.T) {
	page := newPage(t, "contact", 8)
	repo := new(MockPageRepository)
	repo.On("FindByID", mock.Anything, page.ID).Return(page, nil)
	repo.On("ExistsBySlugExcludingID", mock.Anything, "kontak", page.ID).Return(false, nil)
	repo.On("Save", mock.Anything, page).Return(nil)

	body := `{"slug":"kontak","menu_label":"Kontak","title":"Hubungi Kami","is_active":false}`
	w := doRequest(newStudioRouter(t, repo), http.MethodPut, "/api/v1/studio-pages/"+page.ID.String(), body)

	require.Equal(t, http.StatusOK, w.Code)
	data := decodeResponse(t, w).Data.(map[string]any)
	assert.Equal(t, "kontak", data["slug"])
	assert.Equal(t, false, data["is_active"])
	assert.EqualValues(t, 0, data["sort_order"])
}

func TestStudioPageHandler_Delete(t *testing.T) {
	id := uuid.New()
	repo := new(MockPageRepository)
	repo.On("Delete", mock.Anything, id).Return(nil)
	r := newStudioRouter(t, repo)

	w := doRequest(r, http.MethodDelete, "/api/v1/studio-pages/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(r, http.MethodDelete, "/api/v1/studio-pages/xyz", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	repo.AssertNumberOfCalls(t, "Delete", 1)
}
