package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"deptrack-core/internal/domain/repo"
)

func seedHandlerRepository(t *testing.T, f *apiFixture, fullname string) {
	t.Helper()
	r, err := repo.NewRepository(f.user.ID(), 101, fullname, "user", nil, false, "main")
	require.NoError(t, err)
	require.NoError(t, f.repos.Save(context.Background(), r))
}

func TestImportProject_AnswersOK(t *testing.T) {
	f := newAPIFixture(t)
	seedHandlerRepository(t, f, "dev/api")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/projects",
		strings.NewReader(`{"repository": "dev/api"}`))
	req.Header.Set("Content-Type", "application/json")
	f.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ID         string `json:"id"`
		Repository string `json:"repository"`
		Branch     string `json:"branch"`
		Path       string `json:"path"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.ID)
	assert.Equal(t, "dev/api", body.Repository)
	assert.Equal(t, "master", body.Branch)
	assert.Equal(t, "Gemfile", body.Path)
}

func TestImportProject_ReimportAnswersOK(t *testing.T) {
	f := newAPIFixture(t)
	seedHandlerRepository(t, f, "dev/api")

	importOnce := func() (int, string) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/projects",
			strings.NewReader(`{"repository": "dev/api", "branch": "main"}`))
		req.Header.Set("Content-Type", "application/json")
		f.router.ServeHTTP(w, req)

		var body struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		return w.Code, body.ID
	}

	firstStatus, firstID := importOnce()
	secondStatus, secondID := importOnce()

	assert.Equal(t, http.StatusOK, firstStatus)
	assert.Equal(t, http.StatusOK, secondStatus)
	assert.Equal(t, firstID, secondID)
}
