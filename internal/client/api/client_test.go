package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_LoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/login", r.URL.Path)
		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "a@b.c", req["email"])
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok-1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.Login(context.Background(), "a@b.c", "pw"))
	assert.Equal(t, "tok-1", c.Token())
}

func TestClient_TokenAttachedAfterLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-2", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true, "id": "p1"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.token = "tok-2"

	id, err := c.CreatePresentation(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
}

func TestClient_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := New(srv.URL)

	_, err := c.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = c.SetTone(context.Background(), "p1", "Casual")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_GetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"presentations": []map[string]any{
				{"id": "p1", "tone": "Casual"},
				{"id": "p2"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.token = "tok"

	list, err := c.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "p1", list[0].ID)
	require.NotNil(t, list[0].Tone)
	assert.Equal(t, "Casual", *list[0].Tone)
	assert.Nil(t, list[1].Tone)
}

func TestClient_SaveDeck(t *testing.T) {
	var gotMethod, gotPath, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath = r.Method, r.URL.Path
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		gotContent = req["generated_content"]
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.token = "tok"

	require.NoError(t, c.SaveDeck(context.Background(), "p9", `{"slides":[]}`))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/presentation/p9", gotPath)
	assert.Equal(t, `{"slides":[]}`, gotContent)
}

func TestClient_SetVerbosityRejectsOutOfRange(t *testing.T) {
	c := New("http://unused")
	// Never reaches the server: the range check runs client side.
	assert.Error(t, c.SetVerbosity(context.Background(), "p1", 9))
}

func TestClient_ServerErrorSurfacesMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false, "msg": "tone is required"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.token = "tok"

	err := c.SetTone(context.Background(), "p1", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tone is required")
}
