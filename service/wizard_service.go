package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"statement-wizard/domain"
	"statement-wizard/logging"
	"statement-wizard/repository"
)

// WizardService owns one wizard session. It is driven by one actor and is
// not safe for concurrent use.
type WizardService struct {
	state      domain.WizardState
	files      repository.AttachmentRepository
	submission *SubmissionService
	notifier   Notifier
	focuser    Focuser
	logger     *slog.Logger
}

type WizardOption func(*WizardService)

func WithNotifier(n Notifier) WizardOption {
	return func(s *WizardService) {
		if n != nil {
			s.notifier = n
		}
	}
}

func WithFocuser(f Focuser) WizardOption {
	return func(s *WizardService) {
		if f != nil {
			s.focuser = f
		}
	}
}

func WithLogger(l *slog.Logger) WizardOption {
	return func(s *WizardService) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewWizardService creates a wizard in its initial state.
func NewWizardService(
	files repository.AttachmentRepository,
	submission *SubmissionService,
	opts ...WizardOption,
) *WizardService {
	s := &WizardService{
		state:      domain.NewWizardState(),
		files:      files,
		submission: submission,
		notifier:   nopNotifier{},
		focuser:    nopFocuser{},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns a snapshot of the current wizard state.
func (s *WizardService) State() domain.WizardState {
	return s.state.Clone()
}

// View derives the presentation state for the current wizard state.
func (s *WizardService) View() domain.ViewState {
	return Present(s.state, s.files)
}

// Open shows the wizard from its first step, keeping anything already entered.
func (s *WizardService) Open() {
	s.state.Step = 1
}

func (s *WizardService) SelectPlanAndOpen(id domain.PlanID) error {
	if err := s.SelectPlan(id); err != nil {
		return err
	}
	s.Open()
	return nil
}

// Advance moves to the next step when the current one validates.
func (s *WizardService) Advance() error {
	res := ValidateStep(s.state.Step, s.state, s.files)
	if !res.OK {
		s.reject(res)
		return res.Err()
	}
	if s.state.Step < domain.TotalSteps {
		s.state.Step++
	}
	return nil
}

// Retreat moves back one step without validation.
func (s *WizardService) Retreat() {
	if s.state.Step > 1 {
		s.state.Step--
	}
}

func (s *WizardService) SelectPlan(id domain.PlanID) error {
	plan, ok := domain.LookupPlan(id)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownPlan, id)
	}
	s.state.Plan = &plan
	return nil
}

// SelectDuration accepts only the single duration currently on offer.
func (s *WizardService) SelectDuration(months int) error {
	if months != domain.AllowedDuration {
		s.notifier.Notify(MsgDurationPolicy, domain.SeverityError)
		return fmt.Errorf("%w: duration %d", domain.ErrPolicyViolation, months)
	}
	s.state.Duration = months
	return nil
}

// SetStatementAmount stores raw input using the lenient ParseAmount policy.
func (s *WizardService) SetStatementAmount(raw string) {
	s.state.StatementAmount = ParseAmount(raw)
}

func (s *WizardService) SetApplicantField(name, value string) error {
	if !domain.IsApplicantField(name) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	s.state.Applicant[name] = value
	return nil
}

func (s *WizardService) SetNextOfKinField(name, value string) error {
	if !domain.IsNextOfKinField(name) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
	}
	s.state.NextOfKin[name] = value
	return nil
}

// AttachFile assigns a file to an upload slot and reports the outcome.
func (s *WizardService) AttachFile(slot domain.SlotID, file domain.File) error {
	if err := s.files.Assign(slot, file); err != nil {
		if errors.Is(err, domain.ErrFileTooLarge) {
			s.notifier.Notify(MsgFileTooLarge, domain.SeverityError)
		}
		return err
	}
	s.notifier.Notify(MsgFileUploaded, domain.SeveritySuccess)
	return nil
}

// Reset returns the wizard to its initial state and drops every attachment.
func (s *WizardService) Reset() {
	s.state = domain.NewWizardState()
	s.files.Clear()
}

// Submit validates the final step and sends the application. The wizard is
// left untouched; the caller resets it once the receipt has been shown.
func (s *WizardService) Submit(ctx context.Context) (domain.SubmissionReceipt, error) {
	if s.state.Step != domain.TotalSteps {
		return domain.SubmissionReceipt{}, fmt.Errorf("%w: on step %d of %d",
			domain.ErrIncompleteSubmission, s.state.Step, domain.TotalSteps)
	}
	res := ValidateStep(s.state.Step, s.state, s.files)
	if !res.OK {
		s.reject(res)
		return domain.SubmissionReceipt{}, res.Err()
	}

	receipt, err := s.submission.Submit(ctx, s.state, s.files.Files())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSubmissionInFlight):
			s.notifier.Notify(MsgSubmitInFlight, domain.SeverityInfo)
		default:
			s.notifier.Notify(MsgSubmitFailed, domain.SeverityError)
		}
		return domain.SubmissionReceipt{}, err
	}

	s.notifier.Notify(fmt.Sprintf(MsgSubmittedTemplate, receipt.ApplicationID), domain.SeveritySuccess)
	return receipt, nil
}

func (s *WizardService) reject(res domain.ValidationResult) {
	attrs := []any{"step", s.state.Step, "reason", res.Reason, "field", res.Field}
	switch s.state.Step {
	case 2:
		attrs = append(attrs, "applicant", logging.SanitizeFields(s.state.Applicant))
	case 3:
		attrs = append(attrs, "next_of_kin", logging.SanitizeFields(s.state.NextOfKin))
	}
	s.logger.Debug("step validation failed", attrs...)
	s.notifier.Notify(res.Reason, domain.SeverityError)
	if res.Field != "" {
		s.focuser.Focus(res.Field)
	}
}
