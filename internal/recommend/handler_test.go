package recommend

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/heera2507/Seasonality-Publish-Recommender/internal/store"
)

func postRecommend(t *testing.T, router http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/recommend", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

type envelope struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("decode response envelope: %v", err)
	}
	return env
}

func TestRecommendSuccess(t *testing.T) {
	st := &stubStore{subscription: []store.Row{{"category": "News"}}}
	model := &stubLLM{response: `{"description":"d","insights":["i1","i2"]}`}
	router := setupRouter(st, model)

	resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "success" {
		t.Fatalf("expected status success, got %q", env.Status)
	}
	var res Result
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if res.Description != "d" || len(res.Insights) != 2 {
		t.Fatalf("unexpected data: %s", env.Data)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard CORS header, got %q", got)
	}
	if got := resp.Header().Get("Content-Type"); !strings.HasPrefix(got, "application/json") {
		t.Fatalf("expected JSON content type, got %q", got)
	}
}

func TestRecommendDefaultsRegion(t *testing.T) {
	st := &stubStore{}
	model := &stubLLM{response: `{"description":"d","insights":[]}`}
	router := setupRouter(st, model)

	resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if !strings.Contains(model.prompts[0], "Target Region: Australia") {
		t.Fatalf("expected default region Australia in prompt")
	}
}

func TestRecommendMissingTitle(t *testing.T) {
	router := setupRouter(&stubStore{}, &stubLLM{})

	resp := postRecommend(t, router, `{"content":"c"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "error" {
		t.Fatalf("expected status error, got %q", env.Status)
	}
	if env.Message != "Title and content are required" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestRecommendMissingContent(t *testing.T) {
	router := setupRouter(&stubStore{}, &stubLLM{})

	resp := postRecommend(t, router, `{"title":"t","content":""}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if env := decodeEnvelope(t, resp); env.Status != "error" {
		t.Fatalf("expected status error, got %q", env.Status)
	}
}

func TestRecommendRejectsNonJSONBody(t *testing.T) {
	router := setupRouter(&stubStore{}, &stubLLM{})

	resp := postRecommend(t, router, `this is not json`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Message != "No JSON data provided" {
		t.Fatalf("unexpected message: %q", env.Message)
	}
}

func TestRecommendStoreFailureMapsTo500(t *testing.T) {
	st := &stubStore{subsErr: errors.New("store down")}
	router := setupRouter(st, &stubLLM{})

	resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "error" {
		t.Fatalf("expected status error, got %q", env.Status)
	}
	if !strings.Contains(env.Message, "store down") {
		t.Fatalf("expected store failure description, got %q", env.Message)
	}
}

func TestRecommendModelFailureMapsTo500(t *testing.T) {
	model := &stubLLM{err: errors.New("model unavailable")}
	router := setupRouter(&stubStore{}, model)

	resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", resp.Code)
	}
	if env := decodeEnvelope(t, resp); !strings.Contains(env.Message, "model unavailable") {
		t.Fatalf("expected model failure description, got %q", env.Message)
	}
}

func TestRecommendFallbackStillReports200(t *testing.T) {
	model := &stubLLM{response: "not json at all"}
	router := setupRouter(&stubStore{}, model)

	resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 despite fallback, got %d", resp.Code)
	}
	env := decodeEnvelope(t, resp)
	if env.Status != "success" {
		t.Fatalf("expected status success, got %q", env.Status)
	}
	var res Result
	if err := json.Unmarshal(env.Data, &res); err != nil {
		t.Fatalf("unmarshal data: %v", err)
	}
	if res.Description == "" || len(res.Insights) != 3 {
		t.Fatalf("expected fixed fallback result, got %s", env.Data)
	}
}

func TestRecommendSchemaConformanceRegardlessOfModelOutput(t *testing.T) {
	outputs := []string{
		`{"description":"ok","insights":["a"]}`,
		"```json\n{\"description\":\"fenced\",\"insights\":[]}\n```",
		"garbage",
		"",
	}
	for _, out := range outputs {
		router := setupRouter(&stubStore{}, &stubLLM{response: out})
		resp := postRecommend(t, router, `{"title":"t","content":"c"}`)
		if resp.Code != http.StatusOK {
			t.Fatalf("model output %q: expected 200, got %d", out, resp.Code)
		}
		env := decodeEnvelope(t, resp)
		if env.Status != "success" || !json.Valid(env.Data) {
			t.Fatalf("model output %q: expected valid success envelope, got %s", out, resp.Body.String())
		}
	}
}

func TestRecommendPreflight(t *testing.T) {
	router := setupRouter(&stubStore{}, &stubLLM{})

	req := httptest.NewRequest(http.MethodOptions, "/recommend", nil)
	req.Header.Set("Origin", "https://cms.example.com")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if resp.Body.Len() != 0 {
		t.Fatalf("expected empty preflight body, got %q", resp.Body.String())
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard Allow-Origin, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, "POST") {
		t.Fatalf("expected POST in Allow-Methods, got %q", got)
	}
	if got := resp.Header().Get("Access-Control-Max-Age"); got != "3600" {
		t.Fatalf("expected Max-Age 3600, got %q", got)
	}
}
