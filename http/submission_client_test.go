package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"statement-wizard/domain"
	"statement-wizard/service"
)

type received struct {
	Fields    map[string]string
	Files     map[string]string // part name -> file name
	Contents  map[string]string
	RequestID string
}

// applyEndpoint mimics the submission endpoint: it parses the multipart body
// and answers with the given status and body.
func applyEndpoint(t *testing.T, status int, respBody string, got *received) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/apply" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		if err := r.ParseMultipartForm(32 << 20); err != nil {
			http.Error(w, "bad multipart", http.StatusBadRequest)
			return
		}

		got.Fields = make(map[string]string)
		for k, v := range r.MultipartForm.Value {
			got.Fields[k] = v[0]
		}
		got.Files = make(map[string]string)
		got.Contents = make(map[string]string)
		for k, headers := range r.MultipartForm.File {
			got.Files[k] = headers[0].Filename
			f, err := headers[0].Open()
			if err != nil {
				http.Error(w, "open part", http.StatusInternalServerError)
				return
			}
			data, _ := io.ReadAll(f)
			f.Close()
			got.Contents[k] = string(data)
		}
		got.RequestID = r.Header.Get("X-Request-ID")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, respBody)
	}))
}

func samplePayload() domain.SubmissionPayload {
	return domain.SubmissionPayload{
		RequestID: "req-1",
		Fields: []domain.FormField{
			{Name: "plan", Value: "both"},
			{Name: "duration", Value: "1"},
			{Name: "statementAmount", Value: "1000"},
			{Name: "serviceFeePercent", Value: "1.7"},
			{Name: "serviceFeeAmount", Value: "17"},
			{Name: "surname", Value: `O"Brien`},
		},
		Files: []domain.FilePart{
			{Slot: domain.SlotValidID, File: domain.File{Name: "id card.pdf", ContentType: "application/pdf", Data: []byte("%PDF-id")}},
			{Slot: domain.SlotPaymentProof, File: domain.File{Name: "proof.png", Data: []byte("png-bytes")}},
		},
	}
}

type clientCase struct {
	name string
	new  func(base string) service.Submitter
}

var clients = []clientCase{
	{"net/http", func(base string) service.Submitter { return NewSubmissionClient(base, DefaultSubmitPath, 0) }},
	{"fasthttp", func(base string) service.Submitter { return NewFastSubmissionClient(base, DefaultSubmitPath, 0) }},
}

func TestSend_Success(t *testing.T) {
	for _, tc := range clients {
		t.Run(tc.name, func(t *testing.T) {
			var got received
			srv := applyEndpoint(t, http.StatusOK, `{"applicationId":"A123","status":"received"}`, &got)
			defer srv.Close()

			receipt, err := tc.new(srv.URL).Send(context.Background(), samplePayload())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if receipt.ApplicationID != "A123" {
				t.Errorf("expected A123, got %s", receipt.ApplicationID)
			}

			wantFields := map[string]string{
				"plan":              "both",
				"duration":          "1",
				"statementAmount":   "1000",
				"serviceFeePercent": "1.7",
				"serviceFeeAmount":  "17",
				"surname":           `O"Brien`,
			}
			if diff := cmp.Diff(wantFields, got.Fields); diff != "" {
				t.Errorf("fields mismatch (-want +got):\n%s", diff)
			}

			wantFiles := map[string]string{"validId": "id card.pdf", "paymentProof": "proof.png"}
			if diff := cmp.Diff(wantFiles, got.Files); diff != "" {
				t.Errorf("files mismatch (-want +got):\n%s", diff)
			}
			if got.Contents["validId"] != "%PDF-id" {
				t.Errorf("file content altered: %q", got.Contents["validId"])
			}
			if got.RequestID != "req-1" {
				t.Errorf("expected request id header, got %q", got.RequestID)
			}
		})
	}
}

func TestSend_Failures(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, `{"applicationId":"A123"}`},
		{"bad request", http.StatusBadRequest, "missing fields"},
		{"invalid json", http.StatusOK, "<html>ok</html>"},
		{"missing id", http.StatusOK, `{"status":"received"}`},
	}

	for _, cl := range clients {
		for _, tc := range cases {
			t.Run(cl.name+"/"+tc.name, func(t *testing.T) {
				var got received
				srv := applyEndpoint(t, tc.status, tc.body, &got)
				defer srv.Close()

				_, err := cl.new(srv.URL).Send(context.Background(), samplePayload())

				if !errors.Is(err, domain.ErrTransportFailure) {
					t.Errorf("expected ErrTransportFailure, got %v", err)
				}
			})
		}
	}
}

func TestSend_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	for _, cl := range clients {
		_, err := cl.new(base).Send(context.Background(), samplePayload())
		if !errors.Is(err, domain.ErrTransportFailure) {
			t.Errorf("%s: expected ErrTransportFailure, got %v", cl.name, err)
		}
	}
}

func TestJoinURL(t *testing.T) {
	cases := map[[2]string]string{
		{"http://localhost:8080", "/api/apply"}: "http://localhost:8080/api/apply",
		{"http://localhost:8080/", "api/apply"}: "http://localhost:8080/api/apply",
		{"https://example.com/base/", ""}:       "https://example.com/base/api/apply",
	}

	for in, want := range cases {
		if got := joinURL(in[0], in[1]); got != want {
			t.Errorf("joinURL(%q, %q): expected %s, got %s", in[0], in[1], want, got)
		}
	}
}
