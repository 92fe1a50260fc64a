package models

import "fmt"

// DocType is the closed set of per-booking document kinds.
type DocType string

const (
	DocTypeConsent     DocType = "consent"
	DocTypeArbitration DocType = "arbitration"
	DocTypeIntake      DocType = "intake"
)

// AllDocTypes lists every document kind, in the order they appear in the
// confirmation email.
var AllDocTypes = []DocType{DocTypeConsent, DocTypeArbitration, DocTypeIntake}

// Valid reports whether t is one of the known document kinds.
func (t DocType) Valid() bool {
	switch t {
	case DocTypeConsent, DocTypeArbitration, DocTypeIntake:
		return true
	}
	return false
}

// DocumentResult describes one provisioned document.
type DocumentResult struct {
	DocID    string  `json:"docId"`    // Drive file identifier
	DocURL   string  `json:"docUrl"`   // Sharable view link
	DocTitle string  `json:"docTitle"` // "<Label> — <ClientName> — <Date>"
	DocType  DocType `json:"docType"`
}

// BookingDocuments holds exactly one result per document kind. A partial set
// is never handed to the notifier.
type BookingDocuments struct {
	Consent     DocumentResult `json:"consent"`
	Arbitration DocumentResult `json:"arbitration"`
	Intake      DocumentResult `json:"intake"`
}

// ByType returns the result for the given kind.
func (d BookingDocuments) ByType(t DocType) (DocumentResult, error) {
	switch t {
	case DocTypeConsent:
		return d.Consent, nil
	case DocTypeArbitration:
		return d.Arbitration, nil
	case DocTypeIntake:
		return d.Intake, nil
	}
	return DocumentResult{}, fmt.Errorf("unknown document type %q", t)
}

// Set stores the result under its kind.
func (d *BookingDocuments) Set(r DocumentResult) error {
	if !r.DocType.Valid() {
		return fmt.Errorf("unknown document type %q", r.DocType)
	}
	switch r.DocType {
	case DocTypeConsent:
		d.Consent = r
	case DocTypeArbitration:
		d.Arbitration = r
	case DocTypeIntake:
		d.Intake = r
	}
	return nil
}

// Complete reports whether all three kinds have been provisioned.
func (d BookingDocuments) Complete() bool {
	return d.Consent.DocID != "" && d.Arbitration.DocID != "" && d.Intake.DocID != ""
}
