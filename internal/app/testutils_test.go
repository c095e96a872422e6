package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pawhaven/rescue-api/api"
	"github.com/pawhaven/rescue-api/internal/mailer"
	"github.com/pawhaven/rescue-api/internal/validator"
)

const testWebhookSecret = "whsec_test_secret"

func newTestApplication(opts ...func(*application)) *application {
	app := &application{
		validator: validator.NewValidator(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailer:    mailer.NewMockMailer(),
	}

	app.config.env = "test"
	app.config.site.url = "https://pawhaven.org"
	app.config.site.skipOriginCheck = true
	app.config.stripe.webhookSecret = testWebhookSecret

	for _, opt := range opts {
		opt(app)
	}

	return app
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	t.Helper()

	jsonData, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}

	r := httptest.NewRequest(method, url, bytes.NewReader(jsonData))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, wantStatus int, wantErrMessage string) {
	t.Helper()

	if wantStatus >= 200 && wantStatus < 300 || wantErrMessage == "" {
		return
	}

	var resp struct {
		Message          string                `json:"message"`
		ValidationErrors []api.ValidationError `json:"validationErrors"`
	}

	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.Message == wantErrMessage {
		return
	}

	for _, vErr := range resp.ValidationErrors {
		if vErr.Issue == wantErrMessage {
			return
		}
	}

	t.Errorf("Expected error message %q not found in response: %+v", wantErrMessage, resp)
}

func ptr[T any](v T) *T {
	return &v
}
