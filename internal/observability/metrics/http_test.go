package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func scrape(t *testing.T, m *HTTPServerMetrics) string {
	t.Helper()
	res := httptest.NewRecorder()
	m.Handler().ServeHTTP(res, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if res.Code != http.StatusOK {
		t.Fatalf("expected 200 from metrics handler, got %d", res.Code)
	}
	return res.Body.String()
}

func TestMiddlewareCountsRequests(t *testing.T) {
	m := NewHTTPServerMetrics("test")
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/v1/predictions", nil))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/random/path", nil))

	body := scrape(t, m)
	if !strings.Contains(body, `laptop_price_http_requests_total{method="POST",path="/v1/predictions",service="test",status="422"} 1`) {
		t.Fatalf("missing request counter:\n%s", body)
	}
	if !strings.Contains(body, `path="other"`) {
		t.Fatalf("expected unknown paths to collapse into other:\n%s", body)
	}
}

func TestRecordPrediction(t *testing.T) {
	m := NewHTTPServerMetrics("test")
	m.RecordPrediction("success", 65000, 2*time.Millisecond)
	m.RecordPrediction("schema_mismatch", 0, time.Millisecond)
	m.RecordEncodeFailure("missing_selection")

	body := scrape(t, m)
	for _, want := range []string{
		`laptop_price_predictions_total{service="test",status="success"} 1`,
		`laptop_price_predictions_total{service="test",status="schema_mismatch"} 1`,
		`laptop_price_encode_failures_total{kind="missing_selection",service="test"} 1`,
		`laptop_price_estimate_count{service="test"} 1`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("missing %q in:\n%s", want, body)
		}
	}
}
