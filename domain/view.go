package domain

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

type StepStatus string

const (
	StepPending   StepStatus = "pending"
	StepActive    StepStatus = "active"
	StepCompleted StepStatus = "completed"
)

// ViewState is everything a front-end needs to draw the wizard. It is derived
// from WizardState and never mutated by a renderer.
type ViewState struct {
	Step            int               `json:"step"`
	TotalSteps      int               `json:"totalSteps"`
	ProgressPercent float64           `json:"progressPercent"`
	Steps           []StepStatus      `json:"steps"`
	ShowPrev        bool              `json:"showPrev"`
	ShowNext        bool              `json:"showNext"`
	ShowSubmit      bool              `json:"showSubmit"`
	SelectedPlan    PlanID            `json:"selectedPlan,omitempty"`
	Duration        int               `json:"duration"`
	PriceSummary    *PriceSummary     `json:"priceSummary,omitempty"`
	FinalSummary    *FinalSummary     `json:"finalSummary,omitempty"`
	Uploaded        map[SlotID]string `json:"uploaded"` // slot -> file name
}

type PriceSummary struct {
	PlanName        string `json:"planName"`
	StatementAmount string `json:"statementAmount"`
	FeePercent      string `json:"feePercent"`
	Total           string `json:"total"`
}

type FinalSummary struct {
	Plan       string `json:"plan"`
	Amount     string `json:"amount"`
	FeePercent string `json:"feePercent"`
	Total      string `json:"total"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Needed     string `json:"amountNeeded"`
}
