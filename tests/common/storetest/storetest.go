//go:build e2e

package storetest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Admin is a minimal record store admin client for test setup: it creates
// collections, seeds records and wipes data between subtests. It talks the
// store's admin API directly so the production client stays free of admin
// concerns.
type Admin struct {
	BaseURL string
	Token   string

	httpClient *http.Client
}

// NewAdmin authenticates against the store's admin API, retrying while the
// container is still booting.
func NewAdmin(baseURL, email, password string) (*Admin, error) {
	a := &Admin{
		BaseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}

	var lastErr error
	for attempts := range 10 {
		if attempts > 0 {
			time.Sleep(500 * time.Millisecond)
		}
		token, err := a.authenticate(email, password)
		if err == nil {
			a.Token = token
			return a, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("admin auth never succeeded: %w", lastErr)
}

func (a *Admin) authenticate(email, password string) (string, error) {
	payload := map[string]string{"identity": email, "password": password}
	var result struct {
		Token string `json:"token"`
	}
	if err := a.do(http.MethodPost, "/api/admins/auth-with-password", payload, &result); err != nil {
		return "", err
	}
	if result.Token == "" {
		return "", fmt.Errorf("admin auth returned an empty token")
	}
	return result.Token, nil
}

// EnsureCollection creates a collection, tolerating the name already existing
// so suites sharing one container can all call it.
func (a *Admin) EnsureCollection(def map[string]any) error {
	err := a.do(http.MethodPost, "/api/collections", def, nil)
	if err == nil {
		return nil
	}
	var statusErr *statusError
	if asStatusError(err, &statusErr) && statusErr.status == http.StatusBadRequest {
		return nil // already created by an earlier suite
	}
	return err
}

// CreateRecord inserts a record and returns its store-assigned id.
func (a *Admin) CreateRecord(collection string, fields map[string]any) (string, error) {
	var created struct {
		ID string `json:"id"`
	}
	path := "/api/collections/" + collection + "/records"
	if err := a.do(http.MethodPost, path, fields, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// UpdateRecord patches an existing record.
func (a *Admin) UpdateRecord(collection, id string, fields map[string]any) error {
	path := "/api/collections/" + collection + "/records/" + id
	return a.do(http.MethodPatch, path, fields, nil)
}

// DeleteAll removes every record in a collection. Pages are fetched until
// empty because deletes shift pagination.
func (a *Admin) DeleteAll(collection string) error {
	recordsPath := "/api/collections/" + collection + "/records"
	for {
		var page struct {
			Items []struct {
				ID string `json:"id"`
			} `json:"items"`
		}
		if err := a.do(http.MethodGet, recordsPath+"?page=1&perPage=200", nil, &page); err != nil {
			return err
		}
		if len(page.Items) == 0 {
			return nil
		}
		for _, item := range page.Items {
			if err := a.do(http.MethodDelete, recordsPath+"/"+item.ID, nil, nil); err != nil {
				return err
			}
		}
	}
}

// ResetData wipes the given collections, typically between subtests.
func (a *Admin) ResetData(collections ...string) error {
	for _, collection := range collections {
		if err := a.DeleteAll(collection); err != nil {
			return fmt.Errorf("resetting %s: %w", collection, err)
		}
	}
	return nil
}

type statusError struct {
	status int
	body   string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("store admin API: %d %s", e.status, e.body)
}

func asStatusError(err error, target **statusError) bool {
	se, ok := err.(*statusError)
	if ok {
		*target = se
	}
	return ok
}

func (a *Admin) do(method, path string, body, out any) error {
	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, a.BaseURL+path, reqBody)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if a.Token != "" {
		req.Header.Set("Authorization", a.Token)
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		var buf bytes.Buffer
		_, _ = buf.ReadFrom(resp.Body)
		return &statusError{status: resp.StatusCode, body: buf.String()}
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
