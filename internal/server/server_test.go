package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/intentia/backend/internal/analyzer"
	"github.com/intentia/backend/internal/auth"
	"github.com/intentia/backend/internal/media"
	"github.com/intentia/backend/internal/service"
	"github.com/intentia/backend/internal/storage"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	a, err := analyzer.New(analyzer.Config{})
	require.NoError(t, err)

	store := storage.NewMemoryStorage()
	posts := service.NewPostService(a, store, media.NewMemoryStore(), zap.NewNop())

	verifier := auth.VerifierFunc(func(ctx context.Context, userID, secret string) (bool, error) {
		return secret == "correct-secret", nil
	})
	sessions := auth.NewSessionManager(verifier, auth.NewMemorySessionStore(), time.Hour, zap.NewNop())

	return New(posts, sessions, zap.NewNop())
}

func doJSON(t *testing.T, s *Server, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func loginAs(t *testing.T, s *Server, userID string) string {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"user_id": userID,
		"secret":  "correct-secret",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Token)
	return resp.Data.Token
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"user_id": "u1",
		"secret":  "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequiresSession(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/posts", "", map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/posts", "bogus-token", map[string]string{"content": "hi"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndFetchPost(t *testing.T) {
	s := newTestServer(t)
	token := loginAs(t, s, "u1")

	w := doJSON(t, s, http.MethodPost, "/api/posts", token, map[string]string{
		"content": "Loving my new #Gaming console, the games are great",
		// Client hints are ignored by design.
		"category": "Food",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data struct {
			ID       string   `json:"id"`
			Category string   `json:"category"`
			Hashtags []string `json:"hashtags"`
			Flagged  bool     `json:"flagged"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Play", created.Data.Category)
	assert.Equal(t, []string{"gaming"}, created.Data.Hashtags)
	assert.False(t, created.Data.Flagged)

	w = doJSON(t, s, http.MethodGet, "/api/posts/category/Play", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var feed struct {
		Data       []json.RawMessage `json:"data"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &feed))
	assert.Equal(t, 1, feed.Pagination.Total)
	assert.Len(t, feed.Data, 1)
}

func TestCreatePostValidation(t *testing.T) {
	s := newTestServer(t)
	token := loginAs(t, s, "u1")

	w := doJSON(t, s, http.MethodPost, "/api/posts", token, map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLikeCommentAndDelete(t *testing.T) {
	s := newTestServer(t)
	author := loginAs(t, s, "author")
	reader := loginAs(t, s, "reader")

	w := doJSON(t, s, http.MethodPost, "/api/posts", author, map[string]string{
		"content": "A post worth discussing",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	postID := created.Data.ID

	w = doJSON(t, s, http.MethodPost, "/api/posts/"+postID+"/like", reader, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/posts/"+postID+"/comments", reader, map[string]string{
		"content": "interesting",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/posts/"+postID+"/comments", reader, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Only the author can delete.
	w = doJSON(t, s, http.MethodDelete, "/api/posts/"+postID, reader, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, s, http.MethodDelete, "/api/posts/"+postID, author, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/posts/"+postID+"/like", reader, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTrendingHashtagsEndpoint(t *testing.T) {
	s := newTestServer(t)
	token := loginAs(t, s, "u1")

	for _, content := range []string{
		"Morning run done #fitness #health",
		"Evening workout at the gym #fitness",
	} {
		w := doJSON(t, s, http.MethodPost, "/api/posts", token, map[string]string{"content": content})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, s, http.MethodGet, "/api/posts/trending-hashtags?timeframe=week", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			Hashtag string `json:"hashtag"`
			Count   int    `json:"count"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data)
	assert.Equal(t, "fitness", resp.Data[0].Hashtag)
	assert.Equal(t, 2, resp.Data[0].Count)
}
