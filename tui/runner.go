package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"statement-wizard/domain"
	"statement-wizard/service"
)

const (
	pathSuffix   = " (file path)"
	kinPrefix    = "Next of kin: "
	actionPrompt = "What next?"
)

var durationChoices = []int{1, 3, 6, 12}

type action int

const (
	actionBack action = iota
	actionNext
	actionSubmit
	actionClose
)

// Wizard is the part of service.WizardService the runner drives.
type Wizard interface {
	View() domain.ViewState
	State() domain.WizardState
	Advance() error
	Retreat()
	SelectPlan(id domain.PlanID) error
	SelectDuration(months int) error
	SetStatementAmount(raw string)
	SetApplicantField(name, value string) error
	SetNextOfKinField(name, value string) error
	AttachFile(slot domain.SlotID, file domain.File) error
	Submit(ctx context.Context) (domain.SubmissionReceipt, error)
	Reset()
	Open()
}

// Runner walks a user through the wizard in the terminal.
type Runner struct {
	wizard     Wizard
	driver     PromptDriver
	focus      *FocusRecorder
	viewOut    io.Writer
	resetDelay time.Duration
	readFile   func(path string) (domain.File, error)
	logger     *slog.Logger
}

type RunnerOption func(*Runner)

func WithDriver(d PromptDriver) RunnerOption {
	return func(r *Runner) {
		if d != nil {
			r.driver = d
		}
	}
}

// WithFocus shares the recorder that was handed to the wizard as its Focuser.
func WithFocus(f *FocusRecorder) RunnerOption {
	return func(r *Runner) {
		if f != nil {
			r.focus = f
		}
	}
}

// WithViewJSON writes the derived view as JSON to w before every step.
func WithViewJSON(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.viewOut = w
	}
}

func WithResetDelay(d time.Duration) RunnerOption {
	return func(r *Runner) {
		r.resetDelay = d
	}
}

func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

func NewRunner(wizard Wizard, opts ...RunnerOption) *Runner {
	r := &Runner{
		wizard:     wizard,
		driver:     newSurveyDriver(os.Stdout),
		focus:      &FocusRecorder{},
		resetDelay: service.DefaultResetDelay,
		readFile:   readAttachment,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run prompts step by step until the user closes the wizard or declines to
// start another application after a successful submission.
func (r *Runner) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		view := r.wizard.View()
		if err := r.header(ctx, view); err != nil {
			return err
		}

		var err error
		if field := r.focus.Take(); field != "" {
			err = r.promptField(ctx, field)
		} else {
			err = r.promptStep(ctx, view.Step)
		}
		if err != nil {
			return err
		}

		act, err := r.chooseAction(ctx, r.wizard.View())
		if err != nil {
			return err
		}
		switch act {
		case actionBack:
			r.wizard.Retreat()
		case actionNext:
			if err := r.wizard.Advance(); err != nil && !errors.Is(err, domain.ErrValidation) {
				return err
			}
		case actionSubmit:
			done, err := r.submit(ctx)
			if err != nil || done {
				return err
			}
		case actionClose:
			return nil
		}
	}
}

func (r *Runner) header(ctx context.Context, view domain.ViewState) error {
	if r.viewOut != nil {
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("encode view: %w", err)
		}
		if _, err := fmt.Fprintf(r.viewOut, "%s\n", data); err != nil {
			return err
		}
	}

	var marks strings.Builder
	for _, st := range view.Steps {
		switch st {
		case domain.StepCompleted:
			marks.WriteString("●")
		case domain.StepActive:
			marks.WriteString("◉")
		default:
			marks.WriteString("○")
		}
	}
	return r.driver.Info(ctx, fmt.Sprintf("\nStep %d of %d  %s  %.0f%%",
		view.Step, view.TotalSteps, marks.String(), view.ProgressPercent))
}

func (r *Runner) promptStep(ctx context.Context, step int) error {
	switch step {
	case 1:
		if err := r.promptPlan(ctx); err != nil {
			return err
		}
		if err := r.promptDuration(ctx); err != nil {
			return err
		}
		if err := r.promptAmount(ctx); err != nil {
			return err
		}
		if ps := r.wizard.View().PriceSummary; ps != nil {
			return r.driver.Info(ctx, fmt.Sprintf("%s: %s at %s, service fee %s",
				ps.PlanName, ps.StatementAmount, ps.FeePercent, ps.Total))
		}
		return nil
	case 2:
		for _, spec := range domain.ApplicantFields() {
			if err := r.promptApplicant(ctx, spec); err != nil {
				return err
			}
		}
		return nil
	case 3:
		for _, spec := range domain.NextOfKinFields() {
			if err := r.promptNextOfKin(ctx, spec); err != nil {
				return err
			}
		}
		return nil
	case 4:
		return r.promptSlots(ctx, step)
	case domain.TotalSteps:
		if err := r.showFinalSummary(ctx); err != nil {
			return err
		}
		return r.promptSlots(ctx, step)
	}
	return nil
}

// promptField asks again for the single field or slot the wizard focused.
func (r *Runner) promptField(ctx context.Context, field string) error {
	if field == service.FieldStatementAmount {
		return r.promptAmount(ctx)
	}
	if slot, ok := domain.LookupSlot(domain.SlotID(field)); ok {
		return r.promptSlot(ctx, slot)
	}
	for _, spec := range domain.ApplicantFields() {
		if spec.Name == field {
			return r.promptApplicant(ctx, spec)
		}
	}
	for _, spec := range domain.NextOfKinFields() {
		if spec.Name == field {
			return r.promptNextOfKin(ctx, spec)
		}
	}
	r.logger.Warn("focus requested for unknown field", "field", field)
	return r.promptStep(ctx, r.wizard.View().Step)
}

func (r *Runner) promptPlan(ctx context.Context) error {
	plans := domain.Plans()
	options := make([]string, len(plans))
	current := 0
	selected := r.wizard.State().Plan
	for i, p := range plans {
		options[i] = fmt.Sprintf("%s (%s)", p.Name, service.FormatPercent(p.Percent))
		if selected != nil && selected.ID == p.ID {
			current = i
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{Message: "Plan", Options: options, DefaultIndex: current})
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(plans) {
		return fmt.Errorf("%w: option %d", domain.ErrUnknownPlan, idx)
	}
	return r.wizard.SelectPlan(plans[idx].ID)
}

func (r *Runner) promptDuration(ctx context.Context) error {
	options := make([]string, len(durationChoices))
	for i, m := range durationChoices {
		options[i] = fmt.Sprintf("%d month", m)
		if m > 1 {
			options[i] += "s"
		}
	}

	for {
		idx, err := r.driver.Select(ctx, SelectConfig{Message: "Duration", Options: options})
		if err != nil {
			return err
		}
		if idx < 0 || idx >= len(durationChoices) {
			continue
		}
		err = r.wizard.SelectDuration(durationChoices[idx])
		if errors.Is(err, domain.ErrPolicyViolation) {
			continue
		}
		return err
	}
}

func (r *Runner) promptAmount(ctx context.Context) error {
	var current string
	if amount := r.wizard.State().StatementAmount; amount.IsPositive() {
		current = amount.String()
	}
	raw, err := r.driver.Input(ctx, InputConfig{Message: "Statement amount", Default: current})
	if err != nil {
		return err
	}
	r.wizard.SetStatementAmount(raw)
	return nil
}

func (r *Runner) promptApplicant(ctx context.Context, spec domain.FieldSpec) error {
	value, err := r.ask(ctx, spec, spec.Label, r.wizard.State().Applicant[spec.Name])
	if err != nil {
		return err
	}
	return r.wizard.SetApplicantField(spec.Name, value)
}

func (r *Runner) promptNextOfKin(ctx context.Context, spec domain.FieldSpec) error {
	value, err := r.ask(ctx, spec, kinPrefix+spec.Label, r.wizard.State().NextOfKin[spec.Name])
	if err != nil {
		return err
	}
	return r.wizard.SetNextOfKinField(spec.Name, value)
}

func (r *Runner) ask(ctx context.Context, spec domain.FieldSpec, label, current string) (string, error) {
	if !spec.Required {
		label += " (optional)"
	}
	if spec.Kind == domain.FieldSelect {
		def := indexOf(spec.Options, current)
		if def < 0 {
			def = 0
		}
		idx, err := r.driver.Select(ctx, SelectConfig{Message: label, Options: spec.Options, DefaultIndex: def})
		if err != nil {
			return "", err
		}
		if idx < 0 || idx >= len(spec.Options) {
			return "", nil
		}
		return spec.Options[idx], nil
	}
	return r.driver.Input(ctx, InputConfig{Message: label, Default: current})
}

func (r *Runner) promptSlots(ctx context.Context, step int) error {
	for _, slot := range domain.SlotsForStep(step) {
		if err := r.promptSlot(ctx, slot); err != nil {
			return err
		}
	}
	return nil
}

// promptSlot asks for a file path until one is attached or the user leaves
// the answer empty.
func (r *Runner) promptSlot(ctx context.Context, slot domain.AttachmentSlot) error {
	cfg := InputConfig{Message: slot.Label + pathSuffix}
	if name, ok := r.wizard.View().Uploaded[slot.ID]; ok {
		cfg.Help = "currently " + name + "; leave empty to keep it"
	}

	for {
		path, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		if strings.TrimSpace(path) == "" {
			return nil
		}

		file, err := r.readFile(path)
		if err != nil {
			if err := r.driver.Info(ctx, fmt.Sprintf("cannot read %s: %v", path, err)); err != nil {
				return err
			}
			continue
		}

		err = r.wizard.AttachFile(slot.ID, file)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, domain.ErrFileTooLarge):
			continue
		default:
			return err
		}
	}
}

func (r *Runner) showFinalSummary(ctx context.Context) error {
	fs := r.wizard.View().FinalSummary
	if fs == nil {
		return nil
	}
	lines := []string{
		"Plan:          " + fs.Plan,
		"Amount:        " + fs.Amount,
		"Service fee:   " + fs.FeePercent,
		"Total:         " + fs.Total,
		"Applicant:     " + fs.Name,
		"Email:         " + fs.Email,
		"Phone:         " + fs.Phone,
		"Amount needed: " + fs.Needed,
	}
	return r.driver.Info(ctx, strings.Join(lines, "\n"))
}

func (r *Runner) chooseAction(ctx context.Context, view domain.ViewState) (action, error) {
	var (
		options []string
		actions []action
		def     int
	)
	add := func(label string, a action) {
		options = append(options, label)
		actions = append(actions, a)
	}
	if view.ShowPrev {
		add("Back", actionBack)
	}
	if view.ShowNext {
		def = len(options)
		add("Next", actionNext)
	}
	if view.ShowSubmit {
		def = len(options)
		add("Submit application", actionSubmit)
	}
	add("Close", actionClose)

	idx, err := r.driver.Select(ctx, SelectConfig{Message: actionPrompt, Options: options, DefaultIndex: def})
	if err != nil {
		return actionClose, err
	}
	if idx < 0 || idx >= len(actions) {
		return actionClose, nil
	}
	return actions[idx], nil
}

// submit sends the application. It reports done when the user is finished
// with the wizard.
func (r *Runner) submit(ctx context.Context) (bool, error) {
	receipt, err := r.wizard.Submit(ctx)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return false, ctxErr
		}
		switch {
		case errors.Is(err, domain.ErrValidation),
			errors.Is(err, domain.ErrTransportFailure),
			errors.Is(err, domain.ErrSubmissionInFlight):
			// already reported through the notifier; stay on the final step
			return false, nil
		default:
			return false, err
		}
	}
	r.logger.Debug("application accepted", "application_id", receipt.ApplicationID)

	if r.resetDelay > 0 {
		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case <-time.After(r.resetDelay):
		}
	}
	r.wizard.Reset()

	again, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Start another application?"})
	if err != nil {
		return false, err
	}
	if !again {
		return true, nil
	}
	r.wizard.Open()
	return false, nil
}
