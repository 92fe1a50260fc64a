package documents

import (
	"fmt"

	"breakthrough/models"
)

// MissingTemplateError aborts provisioning before any network call when a
// template document identifier is not configured.
type MissingTemplateError struct {
	Kind models.DocType
}

func (e *MissingTemplateError) Error() string {
	return fmt.Sprintf("missing template document ID for %q", e.Kind)
}

// ProvisioningError wraps a failed Drive copy or permission call. Documents
// created before the failure are left in place; there is no rollback.
type ProvisioningError struct {
	Kind models.DocType
	Op   string
	Err  error
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("provisioning %q failed during %s: %v", e.Kind, e.Op, e.Err)
}

func (e *ProvisioningError) Unwrap() error {
	return e.Err
}
