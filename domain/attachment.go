package domain

type SlotID string

const (
	SlotValidID       SlotID = "validId"
	SlotUtilityBill   SlotID = "utilityBill"
	SlotPassportPhoto SlotID = "passportPhoto"
	SlotSignature     SlotID = "signature"
	SlotPaymentProof  SlotID = "paymentProof"
)

// MaxAttachmentSize is the per-file upload limit (5 MiB).
const MaxAttachmentSize int64 = 5 * 1024 * 1024

type AttachmentSlot struct {
	ID       SlotID
	Label    string
	Required bool
	Step     int // wizard step that gates on this slot
	MaxSize  int64
}

var slots = []AttachmentSlot{
	{ID: SlotValidID, Label: "Valid ID", Required: true, Step: 4, MaxSize: MaxAttachmentSize},
	{ID: SlotUtilityBill, Label: "Utility bill", Required: true, Step: 4, MaxSize: MaxAttachmentSize},
	{ID: SlotPassportPhoto, Label: "Passport photograph", Required: true, Step: 4, MaxSize: MaxAttachmentSize},
	{ID: SlotSignature, Label: "Signature", Required: true, Step: 4, MaxSize: MaxAttachmentSize},
	{ID: SlotPaymentProof, Label: "Payment proof", Required: true, Step: 5, MaxSize: MaxAttachmentSize},
}

// AttachmentSlots returns every slot in submission order.
func AttachmentSlots() []AttachmentSlot {
	out := make([]AttachmentSlot, len(slots))
	copy(out, slots)
	return out
}

// SlotsForStep returns the slots gated by the given step, in check order.
func SlotsForStep(step int) []AttachmentSlot {
	var out []AttachmentSlot
	for _, s := range slots {
		if s.Step == step {
			out = append(out, s)
		}
	}
	return out
}

func LookupSlot(id SlotID) (AttachmentSlot, bool) {
	for _, s := range slots {
		if s.ID == id {
			return s, true
		}
	}
	return AttachmentSlot{}, false
}

// File is an already-resident file picked by the user. Data is opaque and is
// forwarded to the endpoint untouched.
type File struct {
	Name        string
	ContentType string
	Size        int64
	Data        []byte
}
