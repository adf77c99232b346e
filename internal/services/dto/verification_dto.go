package dto

import (
	"time"

	"eventbridge_admin/internal/models"
)

type VerificationListQuery struct {
	Page   int    `form:"page"`
	Limit  int    `form:"limit"`
	Status string `form:"status"`
}

// VerificationResponse is one review queue entry with the vendor and owner
// flattened in for the list view.
type VerificationResponse struct {
	ID           uint                      `json:"id"`
	DocumentType string                    `json:"documentType"`
	DocumentURL  string                    `json:"documentUrl"`
	DocumentName string                    `json:"documentName"`
	FileSize     *int                      `json:"fileSize,omitempty"`
	Status       models.VerificationStatus `json:"status"`
	UploadedAt   time.Time                 `json:"uploadedAt"`

	VendorID     uint    `json:"vendorId"`
	BusinessName *string `json:"businessName,omitempty"`
	VendorEmail  string  `json:"vendorEmail,omitempty"`
	VendorName   string  `json:"vendorName,omitempty"`
}

type VerificationListResponse struct {
	Verifications []VerificationResponse `json:"verifications"`
	Total         int64                  `json:"total"`
	Page          int                    `json:"page"`
	Limit         int                    `json:"limit"`
}

type UpdateVerificationStatusRequest struct {
	Status string  `json:"status" validate:"required,oneof=pending approved rejected"`
	Notes  *string `json:"notes"`
}

func ToVerificationResponse(doc *models.VerificationDocument) VerificationResponse {
	resp := VerificationResponse{
		ID:           doc.ID,
		DocumentType: doc.DocumentType,
		DocumentURL:  doc.DocumentURL,
		DocumentName: doc.DocumentName,
		FileSize:     doc.FileSize,
		Status:       doc.Status,
		UploadedAt:   doc.UploadedAt,
		VendorID:     doc.VendorID,
	}
	if profile := doc.VendorProfile; profile != nil {
		resp.BusinessName = profile.BusinessName
		if profile.User != nil {
			resp.VendorEmail = profile.User.Email
			resp.VendorName = profile.User.FirstName + " " + profile.User.LastName
		}
	}
	return resp
}
