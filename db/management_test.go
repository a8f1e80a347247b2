package db

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagementAPIExec(t *testing.T) {
	var got struct {
		Query string `json:"query"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		assert.Equal(t, http.MethodPost, rq.Method)
		assert.Equal(t, "/v1/projects/wxyz/database/query", rq.URL.Path)
		assert.Equal(t, "Bearer sbp_secret", rq.Header.Get("Authorization"))
		assert.Equal(t, "application/json", rq.Header.Get("Content-Type"))

		require.NoError(t, json.NewDecoder(rq.Body).Decode(&got))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[]`))
	}))

	defer srv.Close()

	api := NewManagementAPI("wxyz", "sbp_secret")
	api.BaseURL = srv.URL

	err := api.Exec(context.Background(), `DROP TABLE IF EXISTS "people";`)

	require.NoError(t, err)
	assert.Equal(t, `DROP TABLE IF EXISTS "people";`, got.Query)
}

func TestManagementAPIExecSurfacesErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, rq *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"syntax error at or near \"VALUES\""}`))
	}))

	defer srv.Close()

	api := NewManagementAPI("wxyz", "sbp_secret")
	api.BaseURL = srv.URL

	err := api.Exec(context.Background(), "not sql")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
	assert.Contains(t, err.Error(), "syntax error")
}
