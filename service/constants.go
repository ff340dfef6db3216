package service

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	DefaultResetDelay = 2 * time.Second // confirmation stays readable before the wizard resets

	// user-facing messages
	MsgSelectPlan        = "Please select a service plan"
	MsgInvalidAmount     = "Please enter a valid statement amount"
	MsgRequiredFields    = "Please fill in all required fields"
	MsgInvalidEmail      = "Please enter a valid email address"
	MsgMissingDocuments  = "Please upload all required documents"
	MsgMissingPayment    = "Please upload your payment proof"
	MsgDurationPolicy    = "Only 1 month duration is available at this time"
	MsgFileTooLarge      = "File size must be less than 5MB"
	MsgFileUploaded      = "File uploaded successfully"
	MsgSubmitFailed      = "Failed to submit application. Please try again."
	MsgSubmitInFlight    = "Your application is already being submitted"
	MsgSubmittedTemplate = "Submitted! Ref: %s. Files are available in server uploads."

	FieldStatementAmount = "statementAmount"
)

// limits on user-entered amounts
const maxAmountExponent = 64

// MaxStatementAmount is the largest statement amount accepted (10^15).
var MaxStatementAmount = decimal.New(1, 15)
