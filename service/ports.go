package service

import (
	"context"

	"statement-wizard/domain"
)

// Notifier displays a transient message to the user.
type Notifier interface {
	Notify(message string, severity domain.Severity)
}

// Focuser brings a form field or upload slot to the user's attention.
type Focuser interface {
	Focus(field string)
}

// Submitter delivers an encoded application to the submission endpoint.
type Submitter interface {
	Send(ctx context.Context, payload domain.SubmissionPayload) (domain.SubmissionReceipt, error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(string, domain.Severity) {}

type nopFocuser struct{}

func (nopFocuser) Focus(string) {}
