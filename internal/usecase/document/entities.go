package document

import (
	"time"

	docDomain "clubdocs-backend/internal/domain/document"
)

type SignatoryInput struct {
	Name     string `json:"name"`
	Position string `json:"position"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

type CreateDocumentInput struct {
	Name                  string           `json:"name"`
	Description           string           `json:"description"`
	FileURL               string           `json:"file_url"`
	FileName              string           `json:"file_name"`
	RequiresAdminApproval bool             `json:"requires_admin_approval"`
	Signatories           []SignatoryInput `json:"signatories"`
}

type DocumentDTO struct {
	DocumentID            string     `json:"document_id"`
	Name                  string     `json:"name"`
	Description           string     `json:"description,omitempty"`
	FileURL               string     `json:"file_url"`
	FileName              string     `json:"file_name"`
	CreatedBy             string     `json:"created_by"`
	RequiresAdminApproval bool       `json:"requires_admin_approval"`
	AdminApproved         *bool      `json:"admin_approved,omitempty"`
	AdminApprovedBy       *string    `json:"admin_approved_by,omitempty"`
	AdminApprovedAt       *time.Time `json:"admin_approved_at,omitempty"`
	Status                string     `json:"status"`
	CreatedAt             time.Time  `json:"created_at"`
	UpdatedAt             time.Time  `json:"updated_at"`
}

type SignatoryDTO struct {
	SignatoryID string     `json:"signatory_id"`
	Name        string     `json:"name"`
	Position    string     `json:"position,omitempty"`
	Email       string     `json:"email,omitempty"`
	Phone       string     `json:"phone,omitempty"`
	IsSigned    bool       `json:"is_signed"`
	SignedAt    *time.Time `json:"signed_at,omitempty"`
	Note        string     `json:"note,omitempty"`
	OrderIndex  int        `json:"order_index"`
}

type DocumentDetailDTO struct {
	DocumentDTO
	Signatories []SignatoryDTO `json:"signatories"`
	Progress    int            `json:"progress"`
}

func toDocumentDTO(d *docDomain.Document) *DocumentDTO {
	return &DocumentDTO{
		DocumentID:            d.DocumentID,
		Name:                  d.Name,
		Description:           d.Description,
		FileURL:               d.FileURL,
		FileName:              d.FileName,
		CreatedBy:             d.CreatedBy,
		RequiresAdminApproval: d.RequiresAdminApproval,
		AdminApproved:         d.AdminApproved,
		AdminApprovedBy:       d.AdminApprovedBy,
		AdminApprovedAt:       d.AdminApprovedAt,
		Status:                string(d.Status),
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}

func ToSignatoryDTO(s *docDomain.Signatory) SignatoryDTO {
	return SignatoryDTO{
		SignatoryID: s.SignatoryID,
		Name:        s.Name,
		Position:    s.Position,
		Email:       s.Email,
		Phone:       s.Phone,
		IsSigned:    s.IsSigned,
		SignedAt:    s.SignedAt,
		Note:        s.Note,
		OrderIndex:  s.OrderIndex,
	}
}

func toDocumentDetailDTO(d *docDomain.Document, sigs []docDomain.Signatory) *DocumentDetailDTO {
	dto := &DocumentDetailDTO{
		DocumentDTO: *toDocumentDTO(d),
		Signatories: make([]SignatoryDTO, 0, len(sigs)),
		Progress:    docDomain.Progress(sigs),
	}
	for i := range sigs {
		dto.Signatories = append(dto.Signatories, ToSignatoryDTO(&sigs[i]))
	}
	return dto
}
