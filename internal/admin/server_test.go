package admin

import (
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"

	_ "github.com/mattn/go-sqlite3"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/commercekit/filldb/internal/config"
	"github.com/commercekit/filldb/internal/store"
)

// Enough schema for a run that validates preconditions without inserting.
const adminTestSchema = `
CREATE TABLE stores (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE languages (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL
);
CREATE TABLE customer_roles (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	system_name TEXT NOT NULL
);
`

func newTestServer(t *testing.T, seedReference bool) *Server {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)
	viper.SetConfigFile(filepath.Join(t.TempDir(), config.DefaultConfigFile))

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(adminTestSchema)
	require.NoError(t, err)
	if seedReference {
		for _, q := range []string{
			`INSERT INTO stores (name) VALUES ('Demo Store')`,
			`INSERT INTO languages (name) VALUES ('English')`,
			`INSERT INTO customer_roles (name, system_name) VALUES ('Registered', 'Registered')`,
		} {
			_, err := db.Exec(q)
			require.NoError(t, err)
		}
	}

	cfg := &config.Config{
		Version:  "1",
		Database: config.Database{Provider: "sqlite", URLEnv: "DATABASE_URL"},
		Seed:     config.DefaultCounts(),
	}
	return NewServer(cfg, store.New(db, "sqlite"), 5588)
}

func zeroCountForm() string {
	form := url.Values{}
	for _, field := range []string{"countCategories", "countProducts", "countOrders", "countCustomers"} {
		form.Set(field, "0")
	}
	return form.Encode()
}

func TestConfigurePageShowsPersistedCounts(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	page := string(body)
	assert.Contains(t, page, "countCategories")
	assert.Contains(t, page, "countProducts")
	assert.Contains(t, page, "countOrders")
	assert.Contains(t, page, "countCustomers")
	assert.Contains(t, page, `value="10"`)
	assert.Contains(t, page, `value="50"`)
}

func TestSubmitRejectsNonNumericCounts(t *testing.T) {
	s := newTestServer(t, true)

	form := url.Values{}
	form.Set("countCategories", "ten")
	form.Set("countProducts", "5")
	form.Set("countOrders", "5")
	form.Set("countCustomers", "5")

	req := httptest.NewRequest(http.MethodPost, "/configure", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "whole numbers")
}

func TestSubmitRunsAndReportsSummary(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/configure", strings.NewReader(zeroCountForm()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Generate complete")

	// A successful run persists the submitted counts.
	assert.Equal(t, config.Counts{}, s.cfg.Seed)
}

func TestSubmitFailedRunKeepsOldCounts(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/configure", strings.NewReader(zeroCountForm()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, config.DefaultCounts(), s.cfg.Seed)
}

func TestGetSettingsReturnsCounts(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/api/settings", nil)
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope struct {
		Success bool          `json:"success"`
		Data    config.Counts `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, config.DefaultCounts(), envelope.Data)
}

func TestFillEndpointRunsSeeder(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/fill",
		strings.NewReader(`{"categories":0,"products":0,"orders":0,"customers":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var envelope Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.True(t, envelope.Success)
}

func TestFillEndpointRejectsMalformedBody(t *testing.T) {
	s := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/api/fill", strings.NewReader(`{"categories":`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFillEndpointReportsRunFailure(t *testing.T) {
	s := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/api/fill",
		strings.NewReader(`{"categories":0,"products":0,"orders":0,"customers":0}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var envelope Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	assert.False(t, envelope.Success)
	assert.Contains(t, envelope.Message, "store")
}
