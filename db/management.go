package db

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const managementAPI = "https://api.supabase.com"

// ManagementAPI executes SQL against a Supabase project's database query
// endpoint. The endpoint accepts an opaque query string and returns a status
// code and error body - nothing else.
type ManagementAPI struct {
	BaseURL    string
	ProjectRef string
	Key        string
	Client     *http.Client
}

func NewManagementAPI(projectRef, key string) *ManagementAPI {
	return &ManagementAPI{
		BaseURL:    managementAPI,
		ProjectRef: projectRef,
		Key:        key,
		Client:     http.DefaultClient,
	}
}

func (m *ManagementAPI) Exec(ctx context.Context, sql string) error {
	url := fmt.Sprintf("%s/v1/projects/%s/database/query", m.BaseURL, m.ProjectRef)

	body, err := json.Marshal(map[string]string{"query": sql})
	if err != nil {
		return err
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}

	rq.Header.Set("Authorization", "Bearer "+m.Key)
	rq.Header.Set("Content-Type", "application/json")

	response, err := m.Client.Do(rq)
	if err != nil {
		return err
	}

	defer response.Body.Close()

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		b, _ := io.ReadAll(response.Body)
		return fmt.Errorf("management API returned %v: %s", response.StatusCode, string(b))
	}

	return nil
}
