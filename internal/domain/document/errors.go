package document

import "errors"

var (
	ErrNotFound          = errors.New("document not found")
	ErrSignatoryNotFound = errors.New("signatory not found")
	ErrNameTooShort      = errors.New("document name must be at least 3 characters")
	ErrFileRequired      = errors.New("document requires an attached file")

	// Toggling a signatory to the state it is already in.
	ErrSignatureUnchanged = errors.New("signatory already in requested state")

	// Admin decision on a document that never asked for one.
	ErrApprovalNotRequired = errors.New("document does not require admin approval")
)
