package db

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"sheet2db/sheet"
)

// RESTClient upserts rows into an existing table via the project's REST
// endpoint, resolving conflicts on a designated key column with a merge
// strategy.
type RESTClient struct {
	URL    string
	Key    string
	Client *http.Client
}

func NewRESTClient(projectURL, key string) *RESTClient {
	return &RESTClient{
		URL:    projectURL,
		Key:    key,
		Client: http.DefaultClient,
	}
}

// Upsert inserts-or-updates rows in table, keyed on the pk column. Returns
// the number of affected rows.
func (c *RESTClient) Upsert(ctx context.Context, table, pk string, rows []sheet.Row) (int, error) {
	endpoint := fmt.Sprintf("%s/rest/v1/%s?on_conflict=%s", c.URL, url.PathEscape(table), url.QueryEscape(pk))

	body, err := json.Marshal(rows)
	if err != nil {
		return 0, err
	}

	rq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return 0, err
	}

	rq.Header.Set("apikey", c.Key)
	rq.Header.Set("Authorization", "Bearer "+c.Key)
	rq.Header.Set("Content-Type", "application/json")
	rq.Header.Set("Prefer", "resolution=merge-duplicates,return=representation")

	response, err := c.Client.Do(rq)
	if err != nil {
		return 0, err
	}

	defer response.Body.Close()

	b, err := io.ReadAll(response.Body)
	if err != nil {
		return 0, err
	}

	if response.StatusCode != http.StatusOK && response.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("upsert returned %v: %s", response.StatusCode, string(b))
	}

	var affected []json.RawMessage
	if err := json.Unmarshal(b, &affected); err != nil {
		return 0, fmt.Errorf("invalid upsert response (%v)", err)
	}

	return len(affected), nil
}
