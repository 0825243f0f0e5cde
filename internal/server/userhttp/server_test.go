package userhttp

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	usersrepo "github.com/gameshelf/gameshelf/internal/repo/gorm/users"
	usersvc "github.com/gameshelf/gameshelf/internal/service/users"
)

func newTestServer(t *testing.T) (*Server, *usersrepo.Repo) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := usersrepo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := usersrepo.NewRepo(db)
	for _, name := range []string{"Tom", "Mark"} {
		if err := repo.CreateUser(context.Background(), &usersrepo.User{Username: name}); err != nil {
			t.Fatalf("seed %s: %v", name, err)
		}
	}
	return New(usersvc.NewService(repo)), repo
}

func toJSON(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return bytes.NewBuffer(b)
}

func do(t *testing.T, s *Server, method, path string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, body)
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Engine().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return m
}

func TestCreateUser(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users", toJSON(t, map[string]any{"username": "Alex"}))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["username"] != "Alex" {
		t.Fatalf("resp = %v", resp)
	}
	if int(resp["user_id"].(float64)) != 3 {
		t.Fatalf("user_id = %v, want 3", resp["user_id"])
	}
}

func TestCreateUserDuplicate(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users", toJSON(t, map[string]any{"username": "Tom"}))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if resp["error"] != "Username 'Tom' is already taken" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestCreateUserMissingField(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users", toJSON(t, map[string]any{}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUser(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users?user_id=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if int(resp["user_id"].(float64)) != 1 || resp["username"] != "Tom" {
		t.Fatalf("resp = %v", resp)
	}
}

func TestGetUserNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users?user_id=9999", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["error"] != "User with user_id '9999' not found" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestGetUserMissingParam(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetUserBadParam(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users?user_id=abc", nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestAddFavorite(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users/1/favorites", toJSON(t, map[string]any{"game_id": 3}))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	resp := decodeBody(t, w)
	if int(resp["user_id"].(float64)) != 1 || int(resp["game_id"].(float64)) != 3 {
		t.Fatalf("resp = %v", resp)
	}
}

func TestAddFavoriteTwice(t *testing.T) {
	s, _ := newTestServer(t)
	body := map[string]any{"game_id": 3}
	if w := do(t, s, http.MethodPost, "/users/1/favorites", toJSON(t, body)); w.Code != http.StatusOK {
		t.Fatalf("first add: %d", w.Code)
	}
	w := do(t, s, http.MethodPost, "/users/1/favorites", toJSON(t, body))
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
	resp := decodeBody(t, w)
	if resp["error"] != "User_id '1' has already favored game_id '3'" {
		t.Fatalf("error = %v", resp["error"])
	}
}

func TestAddFavoriteUserNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users/9999/favorites", toJSON(t, map[string]any{"game_id": 3}))
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestAddFavoriteMissingGameID(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodPost, "/users/1/favorites", toJSON(t, map[string]any{}))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestListFavorites(t *testing.T) {
	s, _ := newTestServer(t)
	for _, gid := range []int{4, 2} {
		if w := do(t, s, http.MethodPost, "/users/1/favorites", toJSON(t, map[string]any{"game_id": gid})); w.Code != http.StatusOK {
			t.Fatalf("add %d: %d", gid, w.Code)
		}
	}
	w := do(t, s, http.MethodGet, "/users/1/favorites", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", w.Code, w.Body.String())
	}
	var arr []struct {
		UserID int `json:"user_id"`
		GameID int `json:"game_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &arr); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(arr) != 2 || arr[0].GameID != 4 || arr[1].GameID != 2 {
		t.Fatalf("favorites = %+v", arr)
	}
}

func TestListFavoritesEmpty(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users/2/favorites", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if got := bytes.TrimSpace(w.Body.Bytes()); string(got) != "[]" {
		t.Fatalf("body = %q, want []", got)
	}
}

func TestListFavoritesUserNotFound(t *testing.T) {
	s, _ := newTestServer(t)
	w := do(t, s, http.MethodGet, "/users/9999/favorites", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}
