package domain

type FormField struct {
	Name  string
	Value string
}

type FilePart struct {
	Slot SlotID
	File File
}

// SubmissionPayload is built once per submit and discarded after the call.
type SubmissionPayload struct {
	RequestID string // log correlation only, never a dedup key
	Fields    []FormField
	Files     []FilePart
}

type SubmissionReceipt struct {
	ApplicationID string `json:"applicationId"`
}
