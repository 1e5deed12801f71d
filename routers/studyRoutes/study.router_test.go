package studyRoutes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studyplanner/config"
	"studyplanner/database"
	authRoutes "studyplanner/routers/authRoutes"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{JWTKey: "router-test-secret", SaltRound: 4}

	db, err := database.ConnectTestDb()
	require.NoError(t, err)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	authRoutes.SetupAuthRoutes(app)
	SetupStudyRoutes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func signupAndLogin(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	code, body := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"name":     "Test User",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, code, "signup response: %v", body)

	code, body = doJSON(t, app, "POST", "/auth/login", "", map[string]string{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, code)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestRoutesRequireAuth(t *testing.T) {
	app := setupApp(t)

	for _, path := range []string{"/study-plans/", "/study-materials/?studyPlanId=1", "/study-sessions/?studyPlanId=1", "/study-recommendations/?studyPlanId=1"} {
		code, _ := doJSON(t, app, "GET", path, "", nil)
		assert.Equal(t, fiber.StatusUnauthorized, code, path)
	}
}

func TestSignupNeverReturnsPassword(t *testing.T) {
	app := setupApp(t)

	code, body := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"name":     "Ada",
		"email":    "ada@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, code)

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
	assert.NotContains(t, string(raw), "secret123")
}

func TestLoginNeverReturnsPassword(t *testing.T) {
	app := setupApp(t)

	code, _ := doJSON(t, app, "POST", "/auth/signup", "", map[string]string{
		"name":     "Ada",
		"email":    "ada-login@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusCreated, code)

	code, body := doJSON(t, app, "POST", "/auth/login", "", map[string]string{
		"email":    "ada-login@example.com",
		"password": "secret123",
	})
	require.Equal(t, fiber.StatusOK, code)
	require.NotEmpty(t, body["token"])

	// The login payload embeds the user record, which must not carry the
	// password hash or the plaintext.
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(string(raw)), "password")
	assert.NotContains(t, string(raw), "secret123")
}

func TestStudyPlanCRUDOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "plans@example.com")

	code, body := doJSON(t, app, "POST", "/study-plans/", token, map[string]string{
		"title":     "Math",
		"startDate": "2026-09-01",
		"endDate":   "2026-09-30",
	})
	require.Equal(t, fiber.StatusCreated, code, "create response: %v", body)
	plan := body["studyPlan"].(map[string]interface{})
	planId := uint(plan["id"].(float64))
	assert.Equal(t, "pending", plan["status"])

	code, body = doJSON(t, app, "GET", "/study-plans/", token, nil)
	require.Equal(t, fiber.StatusOK, code)
	plans := body["studyPlans"].([]interface{})
	assert.Len(t, plans, 1)

	code, body = doJSON(t, app, "PUT", fmt.Sprintf("/study-plans/%d", planId), token, map[string]string{
		"status": "completed",
	})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "completed", body["studyPlan"].(map[string]interface{})["status"])
	assert.Equal(t, "Math", body["studyPlan"].(map[string]interface{})["title"])

	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/study-plans/%d", planId), token, nil)
	require.Equal(t, fiber.StatusOK, code)

	code, _ = doJSON(t, app, "GET", fmt.Sprintf("/study-plans/%d", planId), token, nil)
	assert.Equal(t, fiber.StatusNotFound, code)
}

func TestForeignPlanIsNotFoundOverHTTP(t *testing.T) {
	app := setupApp(t)
	ownerToken := signupAndLogin(t, app, "u@example.com")
	otherToken := signupAndLogin(t, app, "v@example.com")

	code, body := doJSON(t, app, "POST", "/study-plans/", ownerToken, map[string]string{
		"title":     "Private",
		"startDate": "2026-09-01",
		"endDate":   "2026-09-30",
	})
	require.Equal(t, fiber.StatusCreated, code)
	planId := uint(body["studyPlan"].(map[string]interface{})["id"].(float64))

	// V cannot see or delete U's plan; answers look like a missing record.
	code, _ = doJSON(t, app, "GET", fmt.Sprintf("/study-plans/%d", planId), otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	code, _ = doJSON(t, app, "DELETE", fmt.Sprintf("/study-plans/%d", planId), otherToken, nil)
	assert.Equal(t, fiber.StatusNotFound, code)

	// The plan is untouched for its owner.
	code, body = doJSON(t, app, "GET", fmt.Sprintf("/study-plans/%d", planId), ownerToken, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, "Private", body["studyPlan"].(map[string]interface{})["title"])
}

func TestStudyMaterialsOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "materials@example.com")

	code, body := doJSON(t, app, "POST", "/study-plans/", token, map[string]string{
		"title":     "Reading",
		"startDate": "2026-09-01",
		"endDate":   "2026-09-30",
	})
	require.Equal(t, fiber.StatusCreated, code)
	planId := uint(body["studyPlan"].(map[string]interface{})["id"].(float64))

	// studyPlanId is mandatory on the collection routes.
	code, _ = doJSON(t, app, "GET", "/study-materials/", token, nil)
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = doJSON(t, app, "POST", fmt.Sprintf("/study-materials/?studyPlanId=%d", planId), token, map[string]string{
		"title": "Chapter 1",
	})
	require.Equal(t, fiber.StatusCreated, code, "create response: %v", body)
	material := body["studyMaterial"].(map[string]interface{})
	assert.Equal(t, "note", material["type"])
	assert.Equal(t, "medium", material["priority"])

	code, body = doJSON(t, app, "GET", fmt.Sprintf("/study-materials/?studyPlanId=%d", planId), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["studyMaterials"].([]interface{}), 1)

	// Invalid enum -> 400 with field detail.
	code, body = doJSON(t, app, "POST", fmt.Sprintf("/study-materials/?studyPlanId=%d", planId), token, map[string]string{
		"title": "Bad",
		"type":  "podcast",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)
	assert.Contains(t, body["fields"].(map[string]interface{}), "type")
}

func TestStudyRecommendationApplyOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "recs@example.com")

	code, body := doJSON(t, app, "POST", "/study-plans/", token, map[string]string{
		"title":     "Advised",
		"startDate": "2026-09-01",
		"endDate":   "2026-09-30",
	})
	require.Equal(t, fiber.StatusCreated, code)
	planId := uint(body["studyPlan"].(map[string]interface{})["id"].(float64))

	code, body = doJSON(t, app, "POST", fmt.Sprintf("/study-recommendations/?studyPlanId=%d", planId), token, map[string]string{
		"content": "Review notes nightly",
	})
	require.Equal(t, fiber.StatusCreated, code)
	rec := body["recommendation"].(map[string]interface{})
	recId := uint(rec["id"].(float64))
	assert.Equal(t, false, rec["isApplied"])

	code, body = doJSON(t, app, "PUT", fmt.Sprintf("/study-recommendations/?studyPlanId=%d", planId), token, map[string]interface{}{
		"id":        recId,
		"isApplied": true,
	})
	require.Equal(t, fiber.StatusOK, code)
	assert.Equal(t, true, body["recommendation"].(map[string]interface{})["isApplied"])
}

func TestStudySessionsOverHTTP(t *testing.T) {
	app := setupApp(t)
	token := signupAndLogin(t, app, "sessions@example.com")

	code, body := doJSON(t, app, "POST", "/study-plans/", token, map[string]string{
		"title":     "Scheduled",
		"startDate": "2026-09-01",
		"endDate":   "2026-09-30",
	})
	require.Equal(t, fiber.StatusCreated, code)
	planId := uint(body["studyPlan"].(map[string]interface{})["id"].(float64))

	// Missing startTime -> 400.
	code, _ = doJSON(t, app, "POST", fmt.Sprintf("/study-sessions/?studyPlanId=%d", planId), token, map[string]string{
		"title": "No time",
	})
	assert.Equal(t, fiber.StatusBadRequest, code)

	code, body = doJSON(t, app, "POST", fmt.Sprintf("/study-sessions/?studyPlanId=%d", planId), token, map[string]interface{}{
		"title":     "Morning block",
		"startTime": "2026-09-02T09:00:00Z",
		"duration":  60,
	})
	require.Equal(t, fiber.StatusCreated, code, "create response: %v", body)

	code, body = doJSON(t, app, "GET", fmt.Sprintf("/study-sessions/?studyPlanId=%d", planId), token, nil)
	require.Equal(t, fiber.StatusOK, code)
	assert.Len(t, body["studySessions"].([]interface{}), 1)
}
