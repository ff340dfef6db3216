package repository

import (
	"fmt"

	"statement-wizard/domain"
)

// AttachmentRepositoryMemory is an in-memory implementation of AttachmentRepository.
type AttachmentRepositoryMemory struct {
	files map[domain.SlotID]domain.File
}

// NewAttachmentRepositoryMemory creates an empty in-memory attachment registry.
func NewAttachmentRepositoryMemory() *AttachmentRepositoryMemory {
	return &AttachmentRepositoryMemory{
		files: make(map[domain.SlotID]domain.File),
	}
}

// Assign stores the file under slot, replacing any previous file. Oversized
// files are rejected and leave the slot untouched.
func (r *AttachmentRepositoryMemory) Assign(
	slot domain.SlotID,
	file domain.File,
) error {
	def, ok := domain.LookupSlot(slot)
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSlot, slot)
	}
	if file.Size > def.MaxSize {
		return fmt.Errorf("%w: %s is %d bytes, limit %d", domain.ErrFileTooLarge, slot, file.Size, def.MaxSize)
	}
	r.files[slot] = file
	return nil
}

func (r *AttachmentRepositoryMemory) IsFilled(slot domain.SlotID) bool {
	_, ok := r.files[slot]
	return ok
}

func (r *AttachmentRepositoryMemory) Get(slot domain.SlotID) (domain.File, bool) {
	f, ok := r.files[slot]
	return f, ok
}

// Files returns the assigned files in slot catalogue order.
func (r *AttachmentRepositoryMemory) Files() []domain.FilePart {
	var out []domain.FilePart
	for _, s := range domain.AttachmentSlots() {
		if f, ok := r.files[s.ID]; ok {
			out = append(out, domain.FilePart{Slot: s.ID, File: f})
		}
	}
	return out
}

func (r *AttachmentRepositoryMemory) Clear() {
	r.files = make(map[domain.SlotID]domain.File)
}
