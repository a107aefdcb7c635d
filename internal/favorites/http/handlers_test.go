package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AmitSalunkhe/jmbm-v2/internal/auth"
	"github.com/AmitSalunkhe/jmbm-v2/internal/content/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	require.NoError(t, rdb.Ping(context.Background()).Err())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(repository.NewMemStore(), rdb)
	h.Register(r.Group("/api/v1"))
	return r
}

func do(t *testing.T, r *gin.Engine, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if session != "" {
		req.Header.Set(auth.SessionHeader, session)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAnonymousFavoritesFlow(t *testing.T) {
	r := setupRouter(t)
	session := "device-1"

	w := do(t, r, http.MethodGet, "/api/v1/favorites", session, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/api/v1/favorites/toggle", session,
		map[string]any{"id": "b1", "title": "रूप पाहता लोचनी", "category": "अभंग", "lyrics": "..."})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK       bool `json:"ok"`
		Favorite bool `json:"favorite"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.True(t, resp.Favorite)

	w = do(t, r, http.MethodGet, "/api/v1/favorites/b1", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Favorite)

	// another device sees nothing
	w = do(t, r, http.MethodGet, "/api/v1/favorites/b1", "device-2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Favorite)

	// second toggle removes
	w = do(t, r, http.MethodPost, "/api/v1/favorites/toggle", session,
		map[string]any{"id": "b1", "title": "रूप पाहता लोचनी"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Favorite)
}

func TestFavoritesRequireIdentity(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodGet, "/api/v1/favorites", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestToggleRejectsBodyWithoutID(t *testing.T) {
	r := setupRouter(t)

	w := do(t, r, http.MethodPost, "/api/v1/favorites/toggle", "device-1",
		map[string]any{"title": "no id"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearFavorites(t *testing.T) {
	r := setupRouter(t)
	session := "device-1"

	for _, id := range []string{"b1", "b2"} {
		w := do(t, r, http.MethodPost, "/api/v1/favorites/toggle", session,
			map[string]any{"id": id, "title": id})
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := do(t, r, http.MethodDelete, "/api/v1/favorites", session, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		OK        bool              `json:"ok"`
		Favorites []json.RawMessage `json:"favorites"`
	}
	w = do(t, r, http.MethodGet, "/api/v1/favorites", session, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Favorites)
}
