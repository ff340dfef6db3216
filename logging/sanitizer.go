package logging

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
)

const redactedValue = "[REDACTED]"

// Keys are compared lower-cased with separators stripped, so "date_of_birth"
// and "dateOfBirth" match the same entry.
var (
	personalKeys = map[string]struct{}{
		"nin":                {},
		"bvn":                {},
		"email":              {},
		"phone":              {},
		"dateofbirth":        {},
		"mothersmaidenname":  {},
		"residentialaddress": {},
		"nokphone":           {},
		"nokemail":           {},
		"nokaddress":         {},
	}
	sensitiveKeyParts = []string{"token", "secret", "password", "authorization"}
	fingerprintKeys   = map[string]string{"applicationid": "application_ref"}
)

// SanitizingHandler redacts personal data before records reach next.
type SanitizingHandler struct {
	next slog.Handler
}

func WrapHandler(next slog.Handler) slog.Handler {
	if next == nil {
		return nil
	}
	return &SanitizingHandler{next: next}
}

func (h *SanitizingHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.next.Enabled(ctx, level)
}

func (h *SanitizingHandler) Handle(ctx context.Context, rec slog.Record) error {
	out := slog.NewRecord(rec.Time, rec.Level, rec.Message, rec.PC)
	rec.Attrs(func(attr slog.Attr) bool {
		out.AddAttrs(SanitizeAttr(attr))
		return true
	})
	return h.next.Handle(ctx, out)
}

func (h *SanitizingHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clean := make([]slog.Attr, 0, len(attrs))
	for _, a := range attrs {
		clean = append(clean, SanitizeAttr(a))
	}
	return &SanitizingHandler{next: h.next.WithAttrs(clean)}
}

func (h *SanitizingHandler) WithGroup(name string) slog.Handler {
	return &SanitizingHandler{next: h.next.WithGroup(name)}
}

func SanitizeAttr(attr slog.Attr) slog.Attr {
	if isSensitiveKey(attr.Key) {
		return slog.String(attr.Key, redactedValue)
	}
	if name, ok := fingerprintKeys[normaliseKey(attr.Key)]; ok {
		return slog.String(name, Fingerprint(attr.Value.String()))
	}
	if attr.Value.Kind() == slog.KindGroup {
		group := attr.Value.Group()
		clean := make([]any, 0, len(group))
		for _, a := range group {
			clean = append(clean, SanitizeAttr(a))
		}
		return slog.Group(attr.Key, clean...)
	}
	return attr
}

// SanitizeFields returns a copy of a form field map that is safe to log.
func SanitizeFields(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for k, v := range fields {
		if isSensitiveKey(k) {
			out[k] = redactedValue
			continue
		}
		out[k] = v
	}
	return out
}

func isSensitiveKey(key string) bool {
	k := normaliseKey(key)
	if _, ok := personalKeys[k]; ok {
		return true
	}
	for _, part := range sensitiveKeyParts {
		if strings.Contains(k, part) {
			return true
		}
	}
	return false
}

func normaliseKey(key string) string {
	r := strings.NewReplacer("_", "", "-", "", ".", "", " ", "")
	return strings.ToLower(r.Replace(strings.TrimSpace(key)))
}

// Fingerprint returns a short stable digest so the same reference can be
// followed across log lines without printing it.
func Fingerprint(v string) string {
	sum := sha256.Sum256([]byte(v))
	return hex.EncodeToString(sum[:6])
}
