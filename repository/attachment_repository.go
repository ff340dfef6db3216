package repository

import "statement-wizard/domain"

type AttachmentRepository interface {
	Assign(slot domain.SlotID, file domain.File) error
	IsFilled(slot domain.SlotID) bool
	Get(slot domain.SlotID) (domain.File, bool)
	Files() []domain.FilePart
	Clear()
}
