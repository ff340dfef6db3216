package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strings"

	"statement-wizard/domain"
)

// EncodeMultipart writes the payload as a multipart/form-data body and
// returns it with its content type.
func EncodeMultipart(payload domain.SubmissionPayload) (*bytes.Buffer, string, error) {
	var body bytes.Buffer
	w := multipart.NewWriter(&body)

	for _, f := range payload.Fields {
		if err := w.WriteField(f.Name, f.Value); err != nil {
			return nil, "", fmt.Errorf("write field %s: %w", f.Name, err)
		}
	}

	for _, part := range payload.Files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
			escapeQuotes(string(part.Slot)), escapeQuotes(part.File.Name)))
		ct := part.File.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h.Set("Content-Type", ct)

		pw, err := w.CreatePart(h)
		if err != nil {
			return nil, "", fmt.Errorf("create part %s: %w", part.Slot, err)
		}
		if _, err := pw.Write(part.File.Data); err != nil {
			return nil, "", fmt.Errorf("write part %s: %w", part.Slot, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &body, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
