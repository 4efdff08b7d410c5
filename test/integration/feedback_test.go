package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiretrack_backend/internal/models"
	"hiretrack_backend/test/helpers"
)

func TestFeedback_PanelistSubmitsAndReads(t *testing.T) {
	ts := GetTestServer(t)
	taToken := helpers.LoginAs(t, ts, "emilys", models.UserRoleTAMember)
	candidateID := helpers.CreateCandidate(t, ts, taToken, "Review", "Subject")

	panelistToken := helpers.LoginAs(t, ts, "sophiab", models.UserRolePanelist)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), panelistToken, map[string]interface{}{
		"overallScore": 4,
		"strengths":    "Deep knowledge of distributed systems",
		"improvements": "Could structure answers more clearly",
		"comments":     "Recommend for the next round",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)

	var created models.Feedback
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.Greater(t, created.ID, 2000)
	assert.Equal(t, "Score 4 / 5", created.Title)
	assert.Contains(t, created.Body, "Strengths: Deep knowledge of distributed systems")
	assert.Contains(t, created.Body, "Improvements: Could structure answers more clearly")
	assert.Contains(t, created.Body, "Comments: Recommend for the next round")
	// Автор берется из токена, а не из тела запроса (sophiab = id 3)
	assert.Equal(t, 3, created.SubmittedBy)
	assert.Equal(t, 0, created.Views)
	assert.NotEmpty(t, created.SubmittedAt)

	// Чтение списка просмотры не трогает
	res, bodyStr = ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), panelistToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var listResp struct {
		Items []models.Feedback `json:"items"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listResp))
	require.Equal(t, 1, listResp.Total)
	assert.Equal(t, 0, listResp.Items[0].Views)
	assert.Equal(t, models.Reactions{}, listResp.Items[0].Reactions)
}

func TestFeedback_OnlyPanelistSubmits(t *testing.T) {
	ts := GetTestServer(t)
	taToken := helpers.LoginAs(t, ts, "emilys", models.UserRoleTAMember)
	candidateID := helpers.CreateCandidate(t, ts, taToken, "No", "Feedback")

	body := map[string]interface{}{
		"overallScore": 5,
		"strengths":    "Excellent fundamentals overall",
		"improvements": "Nothing significant to mention",
	}

	res, _ := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), taToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	adminToken := helpers.LoginAs(t, ts, "michaelw", models.UserRoleAdmin)
	res, _ = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), adminToken, body)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestFeedback_ValidationRejectsShortSections(t *testing.T) {
	ts := GetTestServer(t)
	taToken := helpers.LoginAs(t, ts, "emilys", models.UserRoleTAMember)
	candidateID := helpers.CreateCandidate(t, ts, taToken, "Short", "Sections")

	panelistToken := helpers.LoginAs(t, ts, "sophiab", models.UserRolePanelist)

	res, bodyStr := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), panelistToken, map[string]interface{}{
		"overallScore": 3,
		"strengths":    "too short",
		"improvements": "Could structure answers more clearly",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
	assert.Contains(t, bodyStr, "VALIDATION_FAILED")

	res, bodyStr = ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), panelistToken, map[string]interface{}{
		"overallScore": 9,
		"strengths":    "Great depth in algorithms",
		"improvements": "Could slow down when explaining",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, bodyStr)
}

func TestFeedback_MarkViewedIncrementsCounters(t *testing.T) {
	ts := GetTestServer(t)
	taToken := helpers.LoginAs(t, ts, "emilys", models.UserRoleTAMember)
	candidateID := helpers.CreateCandidate(t, ts, taToken, "Viewed", "Candidate")

	panelistToken := helpers.LoginAs(t, ts, "sophiab", models.UserRolePanelist)
	for i := 0; i < 2; i++ {
		res, bodyStr := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), panelistToken, map[string]interface{}{
			"overallScore": 4,
			"strengths":    "Strong communication skills",
			"improvements": "More hands-on practice needed",
		})
		require.Equal(t, http.StatusCreated, res.StatusCode, bodyStr)
	}

	res, _ := ts.SendRequest(t, http.MethodPost, fmt.Sprintf("/api/v1/candidates/%d/feedback/views", candidateID), taToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, fmt.Sprintf("/api/v1/candidates/%d/feedback", candidateID), taToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, bodyStr)

	var listResp struct {
		Items []models.Feedback `json:"items"`
	}
	require.NoError(t, json.Unmarshal([]byte(bodyStr), &listResp))
	require.Len(t, listResp.Items, 2)
	for _, fb := range listResp.Items {
		assert.Equal(t, 1, fb.Views)
	}
}
