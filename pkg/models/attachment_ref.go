package models

import (
	"errors"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/hashicorp-forge/attachid/pkg/attachmentid"
)

// AttachmentRef links a document to an attachment it references.
// Only identifiers are stored here; attachment bytes live with the issuing
// domain.
type AttachmentRef struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	DocumentUUID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_attachment_refs_doc_attachment" json:"documentUuid"`
	AttachmentID attachmentid.ID `gorm:"type:varchar(1024);not null;uniqueIndex:idx_attachment_refs_doc_attachment" json:"attachmentId"`

	// Denormalized from AttachmentID so that ORDER BY domain, local_id
	// matches attachmentid.Compare.
	Domain  string `gorm:"type:varchar(255);not null;index:idx_attachment_refs_domain" json:"domain"`
	LocalID string `gorm:"type:varchar(768);not null" json:"localId"`
}

// TableName specifies the table name.
func (AttachmentRef) TableName() string {
	return "attachment_refs"
}

// BeforeSave keeps the denormalized columns in sync with AttachmentID.
func (r *AttachmentRef) BeforeSave(tx *gorm.DB) error {
	r.Domain = r.AttachmentID.Domain()
	r.LocalID = r.AttachmentID.LocalID()
	return nil
}

// Validate checks that the reference names a document and an attachment.
func (r *AttachmentRef) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.DocumentUUID, validation.By(requireUUID)),
		validation.Field(&r.AttachmentID, attachmentid.NotZero),
	)
}

// Create inserts the reference.
func (r *AttachmentRef) Create(db *gorm.DB) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	return db.Create(r).Error
}

// FirstOrCreate inserts the reference unless the document already references
// the attachment, in which case r is loaded from the existing row. Returns
// true if a row was created.
func (r *AttachmentRef) FirstOrCreate(db *gorm.DB) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, fmt.Errorf("validation error: %w", err)
	}

	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetAttachmentRef(tx, r.DocumentUUID, r.AttachmentID)
		if err == nil {
			*r = *existing
			return nil
		}
		if !IsNotFound(err) {
			return err
		}
		if err := tx.Create(r).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	return created, err
}

// GetAttachmentRef retrieves the reference from a document to an attachment.
func GetAttachmentRef(db *gorm.DB, documentUUID uuid.UUID, id attachmentid.ID) (*AttachmentRef, error) {
	var ref AttachmentRef
	err := db.Where("document_uuid = ? AND attachment_id = ?", documentUUID, id).
		First(&ref).Error
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// AttachmentRefFilter narrows ListAttachmentRefs. Zero fields match everything.
type AttachmentRefFilter struct {
	DocumentUUID uuid.UUID
	Domain       *string
}

// ListAttachmentRefs returns references in attachment ID order.
func ListAttachmentRefs(db *gorm.DB, filter AttachmentRefFilter) ([]AttachmentRef, error) {
	q := db.Model(&AttachmentRef{})
	if filter.DocumentUUID != uuid.Nil {
		q = q.Where("document_uuid = ?", filter.DocumentUUID)
	}
	if filter.Domain != nil {
		q = q.Where("domain = ?", *filter.Domain)
	}

	var refs []AttachmentRef
	err := q.Order("domain ASC").
		Order("local_id ASC").
		Order("document_uuid ASC").
		Find(&refs).Error
	return refs, err
}

// DeleteAttachmentRef removes the reference from a document to an attachment.
// Returns gorm.ErrRecordNotFound if there was nothing to delete.
func DeleteAttachmentRef(db *gorm.DB, documentUUID uuid.UUID, id attachmentid.ID) error {
	res := db.Where("document_uuid = ? AND attachment_id = ?", documentUUID, id).
		Delete(&AttachmentRef{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func requireUUID(value interface{}) error {
	if u, ok := value.(uuid.UUID); !ok || u == uuid.Nil {
		return validation.ErrRequired
	}
	return nil
}

// IsNotFound reports whether err is a missing record error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
