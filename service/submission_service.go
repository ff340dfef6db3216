package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"statement-wizard/domain"
)

// SubmissionService turns a completed wizard into one request to the
// submission endpoint. It never retries.
type SubmissionService struct {
	submitter Submitter
	logger    *slog.Logger
	inFlight  atomic.Bool
}

// NewSubmissionService creates a SubmissionService sending through submitter.
func NewSubmissionService(submitter Submitter, logger *slog.Logger) *SubmissionService {
	if logger == nil {
		logger = slog.Default()
	}
	return &SubmissionService{submitter: submitter, logger: logger}
}

// Submit builds the payload and sends it. Business rules are the caller's
// job; only structural completeness is checked here. A second call while one
// is outstanding fails with ErrSubmissionInFlight.
func (s *SubmissionService) Submit(
	ctx context.Context,
	state domain.WizardState,
	files []domain.FilePart,
) (domain.SubmissionReceipt, error) {
	if !s.inFlight.CompareAndSwap(false, true) {
		return domain.SubmissionReceipt{}, domain.ErrSubmissionInFlight
	}
	defer s.inFlight.Store(false)

	payload, err := BuildPayload(state, files)
	if err != nil {
		return domain.SubmissionReceipt{}, err
	}
	payload.RequestID = uuid.NewString()

	log := s.logger.With("request_id", payload.RequestID, "plan", string(state.Plan.ID))
	log.Info("submitting application", "files", len(payload.Files))

	// once sent, a submission runs to completion or failure
	start := time.Now()
	receipt, err := s.submitter.Send(context.WithoutCancel(ctx), payload)
	if err != nil {
		log.Error("submission failed", "error", err, "elapsed", time.Since(start))
		if !errors.Is(err, domain.ErrTransportFailure) {
			err = fmt.Errorf("%w: %w", domain.ErrTransportFailure, err)
		}
		return domain.SubmissionReceipt{}, err
	}

	log.Info("application submitted", "application_id", receipt.ApplicationID, "elapsed", time.Since(start))
	return receipt, nil
}

// InFlight reports whether a submission is currently outstanding.
func (s *SubmissionService) InFlight() bool {
	return s.inFlight.Load()
}

// BuildPayload flattens the wizard into the endpoint's multipart fields. All
// declared applicant and next-of-kin names are sent, empty when unset.
func BuildPayload(state domain.WizardState, files []domain.FilePart) (domain.SubmissionPayload, error) {
	if state.Plan == nil {
		return domain.SubmissionPayload{}, fmt.Errorf("%w: no plan selected", domain.ErrIncompleteSubmission)
	}

	fee := CalculateServiceFee(state.Plan, state.StatementAmount)
	fields := []domain.FormField{
		{Name: "plan", Value: string(state.Plan.ID)},
		{Name: "duration", Value: strconv.Itoa(state.Duration)},
		{Name: "statementAmount", Value: state.StatementAmount.String()},
		{Name: "serviceFeePercent", Value: state.Plan.Percent.String()},
		{Name: "serviceFeeAmount", Value: fee.String()},
	}
	for _, f := range domain.ApplicantFields() {
		fields = append(fields, domain.FormField{Name: f.Name, Value: state.Applicant[f.Name]})
	}
	for _, f := range domain.NextOfKinFields() {
		fields = append(fields, domain.FormField{Name: f.Name, Value: state.NextOfKin[f.Name]})
	}

	parts := make([]domain.FilePart, len(files))
	copy(parts, files)

	return domain.SubmissionPayload{Fields: fields, Files: parts}, nil
}
