package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"hiretrack_backend/internal/app"
	"hiretrack_backend/internal/config"
	"hiretrack_backend/internal/logger"
)

// TestServer - приложение поверх httptest плюс заглушка identity-провайдера
type TestServer struct {
	Server   *httptest.Server
	Identity *httptest.Server
	DataDir  string
}

// Пользователи заглушки identity-провайдера. Пароль "wrong-password"
// всегда отклоняется, любой другой принимается.
var stubIdentityUsers = []map[string]interface{}{
	{"id": 1, "username": "emilys", "firstName": "Emily", "lastName": "Johnson", "email": "emilys@hiretrack.test", "phone": "+1-555-0101", "image": "https://hiretrack.test/avatars/1.png",
		"company": map[string]string{"department": "Engineering", "name": "Dooley, Kozey and Cronin", "title": "Sales Manager"}},
	{"id": 2, "username": "michaelw", "firstName": "Michael", "lastName": "Williams", "email": "michaelw@hiretrack.test", "phone": "+1-555-0102", "image": "https://hiretrack.test/avatars/2.png",
		"company": map[string]string{"department": "Support", "name": "Spinka - Dickinson", "title": "Support Specialist"}},
	{"id": 3, "username": "sophiab", "firstName": "Sophia", "lastName": "Brown", "email": "sophiab@hiretrack.test", "phone": "+1-555-0103", "image": "https://hiretrack.test/avatars/3.png",
		"company": map[string]string{"department": "Engineering", "name": "Schiller - Zieme", "title": "Accountant"}},
}

// newIdentityStub поднимает локальную замену внешнего demo-API
func newIdentityStub(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		var req struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password == "wrong-password" {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
			return
		}

		for _, u := range stubIdentityUsers {
			if u["username"] == req.Username {
				resp := map[string]interface{}{
					"id":          u["id"],
					"username":    u["username"],
					"email":       u["email"],
					"firstName":   u["firstName"],
					"lastName":    u["lastName"],
					"image":       u["image"],
					"accessToken": "remote-opaque-" + req.Username,
				}
				json.NewEncoder(w).Encode(resp)
				return
			}
		}

		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"message": "Invalid credentials"})
	})

	mux.HandleFunc("/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
		if limit <= 0 || limit > len(stubIdentityUsers) {
			limit = len(stubIdentityUsers)
		}
		if skip > len(stubIdentityUsers) {
			skip = len(stubIdentityUsers)
		}
		end := skip + limit
		if end > len(stubIdentityUsers) {
			end = len(stubIdentityUsers)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"users": stubIdentityUsers[skip:end],
			"total": len(stubIdentityUsers),
			"skip":  skip,
			"limit": limit,
		})
	})

	return httptest.NewServer(mux)
}

// NewTestServer собирает приложение с временным хранилищем и
// заглушкой identity-провайдера
func NewTestServer(t *testing.T, dataDir string) *TestServer {
	identity := newIdentityStub(t)

	config.LoadConfig()
	cfg := config.GetConfig()
	cfg.Storage.DataDir = dataDir
	cfg.Identity.BaseURL = identity.URL

	logger.Init(cfg.Server.Env)

	router := app.SetupRouter(cfg)
	server := httptest.NewServer(router)

	log.Printf("✅ Тестовый сервер запущен, хранилище: %s", dataDir)

	return &TestServer{
		Server:   server,
		Identity: identity,
		DataDir:  dataDir,
	}
}

func (ts *TestServer) Close() {
	ts.Server.Close()
	ts.Identity.Close()
}

// SendRequest отправляет JSON-запрос и возвращает ответ со строкой тела
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	url := ts.Server.URL + path

	var reqBody io.Reader = nil
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	defer res.Body.Close()

	return res, string(resBodyBytes)
}
