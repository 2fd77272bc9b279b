package handlers

import (
	"Ralph-Backend/domain"
	"Ralph-Backend/internal/utils"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type stubAnalysisService struct {
	analyzeErr  error
	gotMode     string
	gotUserID   string
	overview    domain.AnalysisOverviewResponse
	overviewErr error
}

func (stub *stubAnalysisService) Analyze(_ context.Context, req domain.AnalyzeRequest, userID string) error {
	stub.gotMode = req.Mode
	stub.gotUserID = userID
	return stub.analyzeErr
}

func (stub *stubAnalysisService) GetOverview(context.Context, string) (domain.AnalysisOverviewResponse, error) {
	if stub.overviewErr != nil {
		return domain.AnalysisOverviewResponse{}, stub.overviewErr
	}
	return stub.overview, nil
}

func analysisTestApp(service *stubAnalysisService, userID string) *fiber.App {
	utils.InitValidator()
	handler := NewAnalysisHandler(service, utils.Validate)

	app := fiber.New()
	withUser := func(c *fiber.Ctx) error {
		if userID != "" {
			c.Locals("user_id", userID)
		}
		return c.Next()
	}
	app.Post("/api/ai/analyze", withUser, handler.Analyze)
	app.Get("/api/ai/overview", withUser, handler.GetOverview)
	return app
}

func analyzeRequest(body string) *http.Request {
	request := httptest.NewRequest(http.MethodPost, "/api/ai/analyze", strings.NewReader(body))
	request.Header.Set("Content-Type", "application/json")
	return request
}

func decodeBody(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		t.Fatalf("undecodable response body: %v", err)
	}
	return body
}

func TestAnalyzeWithoutUser(t *testing.T) {
	app := analysisTestApp(&stubAnalysisService{}, "")

	response, err := app.Test(analyzeRequest(`{"mode": "full"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", response.StatusCode)
	}
}

func TestAnalyzeRejectsInvalidMode(t *testing.T) {
	service := &stubAnalysisService{}
	app := analysisTestApp(service, uuid.NewString())

	for _, body := range []string{`{"mode": "weekly"}`, `{}`, `{"mode": ""}`} {
		response, err := app.Test(analyzeRequest(body))
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if response.StatusCode != fiber.StatusBadRequest {
			t.Fatalf("body %s: expected 400, got %d", body, response.StatusCode)
		}
		decoded := decodeBody(t, response)
		if decoded["error"] != domain.MessageInvalidMode {
			t.Fatalf("body %s: expected error %q, got %v", body, domain.MessageInvalidMode, decoded["error"])
		}
	}
}

func TestAnalyzeWithEmptySelection(t *testing.T) {
	service := &stubAnalysisService{analyzeErr: domain.ErrNoEntriesToAnalyze}
	app := analysisTestApp(service, uuid.NewString())

	response, err := app.Test(analyzeRequest(`{"mode": "incremental"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", response.StatusCode)
	}
	decoded := decodeBody(t, response)
	if decoded["error"] != domain.MessageNoEntriesToAnalyze {
		t.Fatalf("expected error %q, got %v", domain.MessageNoEntriesToAnalyze, decoded["error"])
	}
}

func TestAnalyzeSuccess(t *testing.T) {
	service := &stubAnalysisService{}
	userID := uuid.NewString()
	app := analysisTestApp(service, userID)

	response, err := app.Test(analyzeRequest(`{"mode": "full"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}
	decoded := decodeBody(t, response)
	if decoded["success"] != true {
		t.Fatalf("expected success envelope, got %v", decoded)
	}
	if service.gotMode != domain.AnalysisModeFull || service.gotUserID != userID {
		t.Fatalf("service saw mode %q and user %q", service.gotMode, service.gotUserID)
	}
}

func TestAnalyzeGenerationFailure(t *testing.T) {
	service := &stubAnalysisService{analyzeErr: domain.ErrGenerationFailed}
	app := analysisTestApp(service, uuid.NewString())

	response, err := app.Test(analyzeRequest(`{"mode": "full"}`))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != fiber.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", response.StatusCode)
	}
}

func TestGetOverviewReturnsEntryCount(t *testing.T) {
	service := &stubAnalysisService{overview: domain.AnalysisOverviewResponse{EntryCount: 3}}
	app := analysisTestApp(service, uuid.NewString())

	request := httptest.NewRequest(http.MethodGet, "/api/ai/overview", nil)
	response, err := app.Test(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if response.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", response.StatusCode)
	}

	decoded := decodeBody(t, response)
	data, ok := decoded["data"].(map[string]any)
	if !ok {
		t.Fatalf("response carries no data: %v", decoded)
	}
	if data["entry_count"] != float64(3) {
		t.Fatalf("expected entry_count 3, got %v", data["entry_count"])
	}
}
