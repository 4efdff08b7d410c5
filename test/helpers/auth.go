package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"hiretrack_backend/internal/models"
)

// LoginAs логинит пользователя заглушки identity-провайдера под выбранной
// ролью и возвращает локальный access-токен
func LoginAs(t *testing.T, ts *TestServer, username string, role models.UserRole) string {
	t.Helper()

	loginBody := map[string]interface{}{
		"username": username,
		"password": "any-password",
		"role":     role,
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", loginBody)
	assert.Equal(t, http.StatusOK, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		AccessToken string `json:"accessToken"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON")
	assert.NotEmpty(t, loginResponse.AccessToken, "Токен не должен быть пустым")

	return loginResponse.AccessToken
}

// CreateCandidate создает кандидата через API и возвращает его id
func CreateCandidate(t *testing.T, ts *TestServer, token, firstName, lastName string) int {
	t.Helper()

	body := map[string]interface{}{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     firstName + "." + lastName + "@hiretrack.test",
	}

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/candidates", token, body)
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Создание кандидата должно быть успешным. Ответ: "+bodyStr)

	var created struct {
		ID int `json:"id"`
	}
	err := json.Unmarshal([]byte(bodyStr), &created)
	assert.NoError(t, err)
	assert.NotZero(t, created.ID)

	return created.ID
}
