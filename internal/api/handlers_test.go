// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/moviesoup/internal/config"
	"github.com/tomtom215/moviesoup/internal/database"
	movieimport "github.com/tomtom215/moviesoup/internal/import"
	"github.com/tomtom215/moviesoup/internal/models"
	"github.com/tomtom215/moviesoup/internal/recommend"
)

type fakeRecommender struct {
	mu        sync.Mutex
	recs      []recommend.Recommendation
	err       error
	gotFavs   []int64
	gotYears  recommend.YearRange
	callCount int
}

func (f *fakeRecommender) Recommend(_ context.Context, favs []int64, years recommend.YearRange) ([]recommend.Recommendation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.callCount++
	f.gotFavs = favs
	f.gotYears = years
	return f.recs, f.err
}

type fakeCatalog struct {
	mu          sync.Mutex
	movies      map[int64]models.Movie
	searchCalls int
	gotFrom     int
	gotCount    int
	pingErr     error
	searchErr   error
}

func newFakeCatalog(movies ...models.Movie) *fakeCatalog {
	c := &fakeCatalog{movies: make(map[int64]models.Movie)}
	for _, m := range movies {
		c.movies[m.ID] = m
	}
	return c
}

func (c *fakeCatalog) GetMovie(_ context.Context, id int64) (*models.Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	m, ok := c.movies[id]
	if !ok {
		return nil, &database.NotFoundError{IDs: []int64{id}}
	}
	return &m, nil
}

func (c *fakeCatalog) SearchByTitle(_ context.Context, q string, from, count int) ([]models.Movie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.searchCalls++
	c.gotFrom = from
	c.gotCount = count
	if c.searchErr != nil {
		return nil, c.searchErr
	}
	var out []models.Movie
	for _, m := range c.movies {
		if strings.Contains(strings.ToLower(m.Title), strings.ToLower(q)) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (c *fakeCatalog) CountMovies(context.Context) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return int64(len(c.movies)), nil
}

func (c *fakeCatalog) Ping(context.Context) error { return c.pingErr }

type fakeImporter struct {
	mu      sync.Mutex
	running bool
	started chan struct{}
	stats   movieimport.ImportStats
}

// Start claims the fake like the real importer: the first caller wins and
// the importer stays running until the test ends.
func (f *fakeImporter) Start(context.Context, time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.running {
		return movieimport.ErrImportRunning
	}
	f.running = true
	if f.started != nil {
		close(f.started)
	}
	return nil
}

func (f *fakeImporter) GetStats() *movieimport.ImportStats {
	s := f.stats
	return &s
}

func (f *fakeImporter) IsRunning() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.running
}

func (f *fakeImporter) Stop() error {
	if !f.IsRunning() {
		return movieimport.ErrNotRunning
	}
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		Server:    config.ServerConfig{Port: 3857, Host: "127.0.0.1", Timeout: 30 * time.Second},
		Recommend: config.RecommendConfig{CandidateBudget: 15, MaxResults: 10, Timeout: 10 * time.Second},
		Security:  config.SecurityConfig{RateLimitReqs: 100, RateLimitWindow: time.Minute, RateLimitDisabled: true},
		Cache:     config.CacheConfig{SearchTTL: time.Minute},
	}
}

func newTestHandler(t *testing.T, cfg *config.Config, engine Recommender, movies MovieCatalog, importer ImportController) *Handler {
	t.Helper()
	if cfg == nil {
		cfg = testConfig()
	}
	h := NewHandler(cfg, engine, movies, importer)
	t.Cleanup(h.Close)
	return h
}

// apiEnvelope mirrors models.APIResponse with raw data for decoding.
type apiEnvelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return env
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	engine := &fakeRecommender{recs: []recommend.Recommendation{
		{Movie: models.Movie{ID: 2, Title: "Toy Story 2"}, Score: 0.8},
		{Movie: models.Movie{ID: 3, Title: "A Bug's Life"}, Score: 0.5},
	}}
	h := newTestHandler(t, nil, engine, newFakeCatalog(), nil)

	body := `{"favourites":[862,13],"years":[1990,2000]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/recommend", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var got []models.RecommendedMovie
	if err := json.Unmarshal(env.Data, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != 2 || got[0].Score != 0.8 || got[1].ID != 3 {
		t.Errorf("recommendations = %+v", got)
	}
	if len(engine.gotFavs) != 2 || engine.gotFavs[0] != 862 || engine.gotFavs[1] != 13 {
		t.Errorf("favourites passed = %v", engine.gotFavs)
	}
	if engine.gotYears != (recommend.YearRange{Start: 1990, End: 2000}) {
		t.Errorf("years passed = %v", engine.gotYears)
	}
}

func TestRecommend_RequestErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		body       string
		engineErr  error
		wantStatus int
		wantCode   string
	}{
		{"empty body", ``, nil, http.StatusBadRequest, ErrCodeValidation},
		{"malformed json", `{"favourites":`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"unknown field", `{"favourites":[1],"years":[1990,2000],"extra":1}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"no favourites", `{"favourites":[],"years":[1990,2000]}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"negative id", `{"favourites":[-4],"years":[1990,2000]}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{"one year", `{"favourites":[1],"years":[1990]}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"three years", `{"favourites":[1],"years":[1990,2000,2010]}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"missing years", `{"favourites":[1]}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"year out of range", `{"favourites":[1],"years":[1500,2000]}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"years as string", `{"favourites":[1],"years":"1990-2000"}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"non-integer year", `{"favourites":[1],"years":[1990,"x"]}`, nil, http.StatusBadRequest, ErrCodeInvalidYearRange},
		{"bad favourites and years", `{"favourites":[],"years":[1990]}`, nil, http.StatusBadRequest, ErrCodeValidation},
		{
			"reversed years", `{"favourites":[1],"years":[2000,1990]}`,
			&recommend.ValidationError{Field: "years", Value: "2000-1990", Err: recommend.ErrInvalidYearRange},
			http.StatusBadRequest, ErrCodeInvalidYearRange,
		},
		{
			"unknown favourite", `{"favourites":[1,999],"years":[1990,2000]}`,
			&recommend.NotFoundError{IDs: []int64{999}, Err: recommend.ErrFavouriteNotFound},
			http.StatusNotFound, ErrCodeFavouriteNotFound,
		},
		{
			"store unavailable", `{"favourites":[1],"years":[1990,2000]}`,
			fmt.Errorf("find: %w", database.ErrUnavailable),
			http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
		},
		{
			"timeout", `{"favourites":[1],"years":[1990,2000]}`,
			context.DeadlineExceeded,
			http.StatusGatewayTimeout, ErrCodeTimeout,
		},
		{
			"unexpected", `{"favourites":[1],"years":[1990,2000]}`,
			fmt.Errorf("boom"),
			http.StatusInternalServerError, ErrCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			h := newTestHandler(t, nil, &fakeRecommender{err: tt.engineErr}, newFakeCatalog(), nil)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/recommend", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.Recommend(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			if env.Status != "error" || env.Error == nil || env.Error.Code != tt.wantCode {
				t.Errorf("error = %+v, want code %s", env.Error, tt.wantCode)
			}
		})
	}
}

func TestRecommend_NotFoundListsIDs(t *testing.T) {
	t.Parallel()

	engine := &fakeRecommender{err: &recommend.NotFoundError{IDs: []int64{7, 9}, Err: recommend.ErrFavouriteNotFound}}
	h := newTestHandler(t, nil, engine, newFakeCatalog(), nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/movies/recommend",
		strings.NewReader(`{"favourites":[7,9],"years":[1990,2000]}`))
	rec := httptest.NewRecorder()
	h.Recommend(rec, req)

	env := decodeEnvelope(t, rec)
	ids, ok := env.Error.Details["ids"].([]interface{})
	if !ok || len(ids) != 2 {
		t.Fatalf("details = %+v", env.Error.Details)
	}
}

func TestSearchMovies(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog(
		models.Movie{ID: 862, Title: "Toy Story"},
		models.Movie{ID: 863, Title: "Toy Story 2"},
		models.Movie{ID: 13, Title: "Forrest Gump"},
	)
	h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?q=toy", nil)
	rec := httptest.NewRecorder()
	h.SearchMovies(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	var result models.MovieSearchResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.Query != "toy" || result.Count != DefaultSearchCount || len(result.Movies) != 2 {
		t.Errorf("result = %+v", result)
	}
	if env.Metadata.Cached {
		t.Error("first search should not be cached")
	}
}

func TestSearchMovies_Cached(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog(models.Movie{ID: 862, Title: "Toy Story"})
	h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

	for i := range 2 {
		rec := httptest.NewRecorder()
		h.SearchMovies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?q=toy&count=3", nil))
		env := decodeEnvelope(t, rec)
		if env.Metadata.Cached != (i == 1) {
			t.Errorf("request %d cached = %v", i, env.Metadata.Cached)
		}
	}
	if catalog.searchCalls != 1 {
		t.Errorf("store searched %d times, want 1", catalog.searchCalls)
	}

	h.ClearCache()
	rec := httptest.NewRecorder()
	h.SearchMovies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?q=toy&count=3", nil))
	if catalog.searchCalls != 2 {
		t.Errorf("store searched %d times after clear, want 2", catalog.searchCalls)
	}
}

func TestSearchMovies_CountCapped(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

	rec := httptest.NewRecorder()
	h.SearchMovies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?q=a&from=10&count=500", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if catalog.gotCount != MaxSearchCount || catalog.gotFrom != 10 {
		t.Errorf("store got from=%d count=%d", catalog.gotFrom, catalog.gotCount)
	}

	env := decodeEnvelope(t, rec)
	var result models.MovieSearchResult
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatal(err)
	}
	if result.Movies == nil {
		t.Error("movies should be an empty list, not null")
	}
}

func TestSearchMovies_BadParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		query string
	}{
		{"missing q", ""},
		{"blank q", "q=%20%20"},
		{"non-integer count", "q=toy&count=many"},
		{"zero count", "q=toy&count=0"},
		{"negative from", "q=toy&from=-1"},
		{"non-integer from", "q=toy&from=x"},
		{"long q", "q=" + strings.Repeat("a", 201)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			catalog := newFakeCatalog()
			h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

			rec := httptest.NewRecorder()
			h.SearchMovies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?"+tt.query, nil))

			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
			if catalog.searchCalls != 0 {
				t.Error("store should not be searched")
			}
		})
	}
}

func TestSearchMovies_StoreUnavailable(t *testing.T) {
	t.Parallel()

	catalog := newFakeCatalog()
	catalog.searchErr = database.ErrUnavailable
	h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

	rec := httptest.NewRecorder()
	h.SearchMovies(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/search?q=toy", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		pingErr     error
		wantStatus  string
		readyStatus int
	}{
		{"healthy", nil, "healthy", http.StatusOK},
		{"database down", fmt.Errorf("closed"), "degraded", http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			catalog := newFakeCatalog(models.Movie{ID: 1, Title: "One"}, models.Movie{ID: 2, Title: "Two"})
			catalog.pingErr = tt.pingErr
			h := newTestHandler(t, nil, &fakeRecommender{}, catalog, nil)

			rec := httptest.NewRecorder()
			h.Health(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))
			if rec.Code != http.StatusOK {
				t.Fatalf("health status = %d, want 200", rec.Code)
			}
			var status models.HealthStatus
			if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &status); err != nil {
				t.Fatal(err)
			}
			if status.Status != tt.wantStatus {
				t.Errorf("status = %q, want %q", status.Status, tt.wantStatus)
			}
			if tt.pingErr == nil && status.MovieCount != 2 {
				t.Errorf("movie_count = %d, want 2", status.MovieCount)
			}

			rec = httptest.NewRecorder()
			h.HealthReady(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
			if rec.Code != tt.readyStatus {
				t.Errorf("ready status = %d, want %d", rec.Code, tt.readyStatus)
			}

			rec = httptest.NewRecorder()
			h.HealthLive(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/live", nil))
			if rec.Code != http.StatusOK {
				t.Errorf("live status = %d, want 200", rec.Code)
			}
		})
	}
}

func TestImportEndpoints(t *testing.T) {
	t.Parallel()

	debugCfg := testConfig()
	debugCfg.Server.Debug = true

	t.Run("forbidden without debug", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, nil, &fakeRecommender{}, newFakeCatalog(), &fakeImporter{})
		rec := httptest.NewRecorder()
		h.StartImport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies/import", nil))
		if rec.Code != http.StatusForbidden {
			t.Errorf("status = %d, want 403", rec.Code)
		}
	})

	t.Run("unconfigured importer", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, debugCfg, &fakeRecommender{}, newFakeCatalog(), nil)
		rec := httptest.NewRecorder()
		h.StartImport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies/import", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
		rec = httptest.NewRecorder()
		h.ImportStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/import/status", nil))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("status = %d, want 503", rec.Code)
		}
	})

	t.Run("already running", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, debugCfg, &fakeRecommender{}, newFakeCatalog(), &fakeImporter{running: true})
		rec := httptest.NewRecorder()
		h.StartImport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies/import", nil))
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("accepted", func(t *testing.T) {
		t.Parallel()
		imp := &fakeImporter{started: make(chan struct{})}
		h := newTestHandler(t, debugCfg, &fakeRecommender{}, newFakeCatalog(), imp)
		rec := httptest.NewRecorder()
		h.StartImport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies/import", nil))
		if rec.Code != http.StatusAccepted {
			t.Fatalf("status = %d, want 202", rec.Code)
		}
		select {
		case <-imp.started:
		default:
			t.Fatal("import was not claimed before the response")
		}
		var summary movieimport.ProgressSummary
		if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &summary); err != nil {
			t.Fatal(err)
		}
		if summary.Status != "running" {
			t.Errorf("summary status = %q, want running", summary.Status)
		}
	})

	t.Run("concurrent starts", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, debugCfg, &fakeRecommender{}, newFakeCatalog(), &fakeImporter{})

		const n = 8
		codes := make(chan int, n)
		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				rec := httptest.NewRecorder()
				h.StartImport(rec, httptest.NewRequest(http.MethodPost, "/api/v1/movies/import", nil))
				codes <- rec.Code
			}()
		}
		wg.Wait()
		close(codes)

		counts := map[int]int{}
		for code := range codes {
			counts[code]++
		}
		if counts[http.StatusAccepted] != 1 || counts[http.StatusConflict] != n-1 {
			t.Errorf("status counts = %v, want one 202 and %d 409", counts, n-1)
		}
	})

	t.Run("stop without import", func(t *testing.T) {
		t.Parallel()
		h := newTestHandler(t, debugCfg, &fakeRecommender{}, newFakeCatalog(), &fakeImporter{})
		rec := httptest.NewRecorder()
		h.StopImport(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/movies/import", nil))
		if rec.Code != http.StatusConflict {
			t.Errorf("status = %d, want 409", rec.Code)
		}
	})

	t.Run("status", func(t *testing.T) {
		t.Parallel()
		imp := &fakeImporter{stats: movieimport.ImportStats{
			Source: movieimport.SourceTMDB, TotalRecords: 10, Processed: 5, Imported: 4,
		}}
		h := newTestHandler(t, nil, &fakeRecommender{}, newFakeCatalog(), imp)
		rec := httptest.NewRecorder()
		h.ImportStatus(rec, httptest.NewRequest(http.MethodGet, "/api/v1/movies/import/status", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var summary movieimport.ProgressSummary
		if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &summary); err != nil {
			t.Fatal(err)
		}
		if summary.Progress != 50 || summary.Imported != 4 {
			t.Errorf("summary = %+v", summary)
		}
	})
}

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()
	if got := sanitizeLogValue("a\nb\x7f"); got != `a\x0ab\x7f` {
		t.Errorf("sanitizeLogValue = %q", got)
	}
}
