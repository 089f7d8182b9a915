package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"filmhub/internal/microservices/http-api/dto"
	"filmhub/internal/microservices/http-api/handler"
	"filmhub/internal/microservices/http-api/models"
	"filmhub/internal/microservices/http-api/service"
)

const testFilmID = "0f8d6e2a-1c3b-4e5f-8a9b-0c1d2e3f4a01"

// --- SETUP ---

func setupFilmRouter(films *MockFilmService, reports *MockReportService, policy dto.UnknownFieldPolicy) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	opts := handler.Options{RequestTimeout: time.Second, UnknownFields: policy}
	handler.NewFilmHandler(films, reports, opts).RegisterRoutes(r.Group("/api/films"))
	return r
}

func doRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		_ = json.NewEncoder(&buf).Encode(b)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

// --- TESTS ---

func TestFilmHandler_List(t *testing.T) {
	films := new(MockFilmService)
	r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

	t.Run("Descending", func(t *testing.T) {
		films.On("List", mock.Anything, "desc").Return([]models.Film{
			{ID: "b", Title: "New", ReleaseYear: 2020},
			{ID: "a", Title: "Old", ReleaseYear: 1990, Genre: stringPtr("Drama")},
		}, nil).Once()

		w := doRequest(r, http.MethodGet, "/api/films?order=desc", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		var resp []dto.FilmResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, 2020, resp[0].ReleaseYear)
		assert.Nil(t, resp[0].Genre)
		assert.Equal(t, "Drama", *resp[1].Genre)
	})

	t.Run("InvalidOrder", func(t *testing.T) {
		films.On("List", mock.Anything, "up").
			Return([]models.Film(nil), &service.Error{Kind: service.ErrValidation, Message: "invalid sort order"}).Once()

		w := doRequest(r, http.MethodGet, "/api/films?order=up", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "invalid sort order", errorBody(t, w))
	})

	t.Run("StoreFailure", func(t *testing.T) {
		films.On("List", mock.Anything, "").Return([]models.Film(nil), errors.New("pq: connection refused")).Once()

		w := doRequest(r, http.MethodGet, "/api/films", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "internal server error", errorBody(t, w))
	})
}

func TestFilmHandler_Get(t *testing.T) {
	films := new(MockFilmService)
	r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

	t.Run("Success", func(t *testing.T) {
		films.On("GetByID", mock.Anything, testFilmID).Return(&models.Film{ID: testFilmID, Title: "Heat"}, nil).Once()

		w := doRequest(r, http.MethodGet, "/api/films/"+testFilmID, nil)
		assert.Equal(t, http.StatusOK, w.Code)
		var resp dto.FilmResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Heat", resp.Title)
	})

	t.Run("NotFound", func(t *testing.T) {
		films.On("GetByID", mock.Anything, testFilmID).
			Return(nil, &service.Error{Kind: service.ErrNotFound, Message: "film not found"}).Once()

		w := doRequest(r, http.MethodGet, "/api/films/"+testFilmID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "film not found", errorBody(t, w))
	})
}

func TestFilmHandler_SearchAndReleased(t *testing.T) {
	films := new(MockFilmService)
	r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

	t.Run("Search", func(t *testing.T) {
		films.On("SearchByTitle", mock.Anything, "matrix").Return([]models.Film{{ID: testFilmID, Title: "The Matrix"}}, nil).Once()

		w := doRequest(r, http.MethodGet, "/api/films/search?title=matrix", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("SearchNoMatch", func(t *testing.T) {
		films.On("SearchByTitle", mock.Anything, "zzz").
			Return([]models.Film(nil), &service.Error{Kind: service.ErrNotFound, Message: "no films found"}).Once()

		w := doRequest(r, http.MethodGet, "/api/films/search?title=zzz", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Released", func(t *testing.T) {
		films.On("ListReleasedSince", mock.Anything, 2000).Return([]models.Film{}, nil).Once()

		w := doRequest(r, http.MethodGet, "/api/films/released?year=2000", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})

	t.Run("ReleasedNonNumericYear", func(t *testing.T) {
		fresh := new(MockFilmService)
		r := setupFilmRouter(fresh, new(MockReportService), dto.RejectUnknownFields)

		w := doRequest(r, http.MethodGet, "/api/films/released?year=abc", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		fresh.AssertNotCalled(t, "ListReleasedSince", mock.Anything, mock.Anything)
	})
}

func TestFilmHandler_Create(t *testing.T) {
	films := new(MockFilmService)
	r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

	t.Run("Success", func(t *testing.T) {
		films.On("Create", mock.Anything, mock.AnythingOfType("*models.Film")).
			Run(func(args mock.Arguments) { args.Get(1).(*models.Film).ID = testFilmID }).
			Return(nil).Once()

		w := doRequest(r, http.MethodPost, "/api/films", map[string]any{
			"title":        "Alien",
			"release_year": 1979,
			"genre":        "Horror",
		})
		assert.Equal(t, http.StatusCreated, w.Code)
		var resp dto.FilmResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, testFilmID, resp.ID)
		assert.Equal(t, "Horror", *resp.Genre)
	})

	t.Run("MissingTitle", func(t *testing.T) {
		w := doRequest(r, http.MethodPost, "/api/films", map[string]any{"release_year": 1979})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestFilmHandler_Update(t *testing.T) {
	t.Run("PartialUpdate", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)
		films.On("Update", mock.Anything, testFilmID, dto.UpdateFilmDTO{Title: stringPtr("Heat (1995)")}).
			Return(&models.Film{ID: testFilmID, Title: "Heat (1995)"}, nil).Once()

		w := doRequest(r, http.MethodPatch, "/api/films/"+testFilmID, `{"title":"Heat (1995)"}`)
		assert.Equal(t, http.StatusOK, w.Code)
		films.AssertExpectations(t)
	})

	t.Run("UnknownFieldRejected", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

		w := doRequest(r, http.MethodPut, "/api/films/"+testFilmID, `{"title":"x","rating":5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "unknown fields: rating", errorBody(t, w))
		films.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("UnknownFieldIgnored", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.IgnoreUnknownFields)
		films.On("Update", mock.Anything, testFilmID, dto.UpdateFilmDTO{Title: stringPtr("x")}).
			Return(&models.Film{ID: testFilmID, Title: "x"}, nil).Once()

		w := doRequest(r, http.MethodPut, "/api/films/"+testFilmID, `{"title":"x","rating":5}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("NullGenreClears", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)
		films.On("Update", mock.Anything, testFilmID, dto.UpdateFilmDTO{ClearGenre: true}).
			Return(&models.Film{ID: testFilmID, Title: "Heat"}, nil).Once()

		w := doRequest(r, http.MethodPatch, "/api/films/"+testFilmID, `{"genre":null}`)
		assert.Equal(t, http.StatusOK, w.Code)
		films.AssertExpectations(t)
	})

	t.Run("NullTitleRejected", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

		w := doRequest(r, http.MethodPatch, "/api/films/"+testFilmID, `{"title":null}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "fields must not be null: title", errorBody(t, w))
		films.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NegativeYear", func(t *testing.T) {
		films := new(MockFilmService)
		r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

		w := doRequest(r, http.MethodPatch, "/api/films/"+testFilmID, `{"release_year":-5}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		films.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFilmHandler_Delete(t *testing.T) {
	films := new(MockFilmService)
	r := setupFilmRouter(films, new(MockReportService), dto.RejectUnknownFields)

	films.On("Delete", mock.Anything, testFilmID).Return(nil).Once()
	w := doRequest(r, http.MethodDelete, "/api/films/"+testFilmID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestFilmHandler_Reviewers(t *testing.T) {
	reports := new(MockReportService)
	r := setupFilmRouter(new(MockFilmService), reports, dto.RejectUnknownFields)

	reports.On("FilmReviewers", mock.Anything, testFilmID).Return([]models.FilmReviewer{
		{ReviewID: "r1", UserID: "u1", Name: stringPtr("Ana"), Rating: 9, Comment: "great"},
		{ReviewID: "r2", UserID: "u2", Name: nil, Rating: 4},
	}, nil).Once()

	w := doRequest(r, http.MethodGet, "/api/films/"+testFilmID+"/reviewers", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	assert.Nil(t, resp[1]["name"])
}
