//go:build e2e
// +build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	"kittens-api/internal/auth"
	"kittens-api/internal/config"
	"kittens-api/internal/db"
	breedsdomain "kittens-api/internal/domain/breeds"
	kittensdomain "kittens-api/internal/domain/kittens"
	ratingsdomain "kittens-api/internal/domain/ratings"
	userdomain "kittens-api/internal/domain/user"
	breedsrepo "kittens-api/internal/repository/postgres/breeds"
	kittensrepo "kittens-api/internal/repository/postgres/kittens"
	ratingsrepo "kittens-api/internal/repository/postgres/ratings"
	userrepo "kittens-api/internal/repository/postgres/user"
	"kittens-api/internal/transport/httpserver"
	"kittens-api/internal/transport/httpserver/handler"
	"kittens-api/pkg/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type testEnv struct {
	server *httptest.Server
	db     *gorm.DB
	breeds *breedsdomain.Service
}

func setupE2E(t *testing.T) *testEnv {
	t.Helper()

	dsn := os.Getenv("E2E_DB_DSN")
	if dsn == "" {
		t.Skip("E2E_DB_DSN not set; skipping e2e tests")
	}

	log := logger.Discard()
	cfg := config.Config{
		DB: config.DBConfig{DSN: dsn, MaxOpenConns: 10},
		Auth: config.AuthConfig{
			Secret:     "e2e-secret",
			Issuer:     "kittens-api",
			AccessTTL:  5 * time.Minute,
			RefreshTTL: time.Hour,
		},
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}

	if err := db.Migrate(dbConn, log); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	if err := cleanDB(dbConn); err != nil {
		t.Fatalf("clean db: %v", err)
	}

	breeds := breedsdomain.NewService(breedsrepo.NewPostgres(dbConn))
	users := userdomain.NewService(userrepo.NewPostgres(dbConn), auth.NewBcryptHasher(bcrypt.MinCost))
	handlers := handler.New(
		breeds,
		kittensdomain.NewService(kittensrepo.NewPostgres(dbConn)),
		ratingsdomain.NewService(ratingsrepo.NewPostgres(dbConn)),
		users,
		auth.NewTokens(cfg.Auth),
		log,
	)

	router := httpserver.NewRouter(cfg, handlers, users, log)
	server := httptest.NewServer(router)

	return &testEnv{server: server, db: dbConn, breeds: breeds}
}

func (e *testEnv) Close() {
	e.server.Close()
	sqlDB, err := e.db.DB()
	if err == nil {
		_ = sqlDB.Close()
	}
}

func cleanDB(dbConn *gorm.DB) error {
	return dbConn.WithContext(context.Background()).Exec(
		"TRUNCATE TABLE ratings, kittens, breeds, users RESTART IDENTITY CASCADE",
	).Error
}

func requestJSON(t *testing.T, client *http.Client, method, url, token string, payload interface{}) (*http.Response, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequest(method, url, body)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read response: %v", err)
	}

	return resp, respBody
}

type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type tokenPairResponse struct {
	Refresh string `json:"refresh"`
	Access  string `json:"access"`
}

type kittenResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Color       string `json:"color"`
	AgeInMonths int    `json:"age_in_months"`
	Description string `json:"description"`
	Breed       int64  `json:"breed"`
	Owner       int64  `json:"owner"`
}

func register(t *testing.T, client *http.Client, baseURL, username string) string {
	t.Helper()
	resp, body := requestJSON(t, client, http.MethodPost, baseURL+"/api/register", "", map[string]string{
		"username": username,
		"password": "pw-" + username,
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("register: expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var pair tokenPairResponse
	if err := json.Unmarshal(body, &pair); err != nil {
		t.Fatalf("decode tokens: %v", err)
	}
	return pair.Access
}

// seedBreeds makes sure the named breeds exist and returns their ids by
// name. The target database may already hold breeds, so ids are not assumed.
func seedBreeds(t *testing.T, env *testEnv, names ...string) map[string]int64 {
	t.Helper()
	ctx := context.Background()
	if _, err := env.breeds.EnsureNames(ctx, names); err != nil {
		t.Fatalf("seed breeds: %v", err)
	}
	all, err := env.breeds.List(ctx)
	if err != nil {
		t.Fatalf("list breeds: %v", err)
	}
	ids := make(map[string]int64, len(all))
	for _, breed := range all {
		ids[breed.Name] = breed.ID
	}
	for _, name := range names {
		if ids[name] == 0 {
			t.Fatalf("breed %s missing after seeding", name)
		}
	}
	return ids
}

func TestE2EKittenLifecycle(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	base := env.server.URL

	resp, body := requestJSON(t, client, http.MethodGet, base+"/api/health", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	breedIDs := seedBreeds(t, env, "Siamese", "Persian")

	owner := register(t, client, base, "owner")
	other := register(t, client, base, "other")

	resp, body = requestJSON(t, client, http.MethodPost, base+"/api/kittens", owner, map[string]interface{}{
		"name":          "Kitty1",
		"color":         "cream",
		"age_in_months": 2,
		"description":   "sleepy",
		"breed":         breedIDs["Siamese"],
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var kitten kittenResponse
	if err := json.Unmarshal(body, &kitten); err != nil {
		t.Fatalf("decode kitten: %v", err)
	}

	resp, body = requestJSON(t, client, http.MethodPut, base+"/api/kittens", other, map[string]interface{}{
		"kitten_id": kitten.ID,
		"name":      "Mine now",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("foreign update: expected 404, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPut, base+"/api/kittens", owner, map[string]interface{}{
		"kitten_id": kitten.ID,
		"breed":     breedIDs["Persian"],
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("update: expected 200, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/api/kittens/by-breed", "", map[string]interface{}{"breed_id": breedIDs["Siamese"]})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("by-breed: expected 404, got %d: %s", resp.StatusCode, string(body))
	}
	var errResp errorEnvelope
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if errResp.Error.Message != "no kittens found" {
		t.Fatalf("unexpected message %q", errResp.Error.Message)
	}

	resp, body = requestJSON(t, client, http.MethodPost, base+"/api/ratings", other, map[string]interface{}{
		"kitten_id":    kitten.ID,
		"rating_value": 6,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("rating 6: expected 400, got %d: %s", resp.StatusCode, string(body))
	}

	resp, body = requestJSON(t, client, http.MethodDelete, base+"/api/kittens", owner, map[string]interface{}{"kitten_id": kitten.ID})
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d: %s", resp.StatusCode, string(body))
	}
}

func TestE2EConcurrentFirstRating(t *testing.T) {
	env := setupE2E(t)
	defer env.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	base := env.server.URL

	breedIDs := seedBreeds(t, env, "Siamese")
	owner := register(t, client, base, "owner")
	rater := register(t, client, base, "rater")

	resp, body := requestJSON(t, client, http.MethodPost, base+"/api/kittens", owner, map[string]interface{}{
		"name":          "Contested",
		"color":         "black",
		"age_in_months": 5,
		"description":   "popular",
		"breed":         breedIDs["Siamese"],
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", resp.StatusCode, string(body))
	}
	var kitten kittenResponse
	if err := json.Unmarshal(body, &kitten); err != nil {
		t.Fatalf("decode kitten: %v", err)
	}

	const racers = 8
	statuses := make([]int, racers)
	var wg sync.WaitGroup
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			data, _ := json.Marshal(map[string]interface{}{
				"kitten_id":    kitten.ID,
				"rating_value": i%5 + 1,
			})
			req, err := http.NewRequest(http.MethodPost, base+"/api/ratings", bytes.NewReader(data))
			if err != nil {
				return
			}
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+rater)
			resp, err := client.Do(req)
			if err != nil {
				return
			}
			_ = resp.Body.Close()
			statuses[i] = resp.StatusCode
		}(i)
	}
	wg.Wait()

	created := 0
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusOK, http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d in %v", status, statuses)
		}
	}
	if created != 1 {
		t.Fatalf("expected exactly one created rating, got %d (%v)", created, statuses)
	}

	var count int64
	if err := env.db.Table("ratings").Where("kitten_id = ?", kitten.ID).Count(&count).Error; err != nil {
		t.Fatalf("count ratings: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one rating row, got %d", count)
	}
}
