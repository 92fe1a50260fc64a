package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocTypeValid(t *testing.T) {
	for _, docType := range AllDocTypes {
		assert.True(t, docType.Valid(), "%q", docType)
	}
	assert.False(t, DocType("").Valid())
	assert.False(t, DocType("waiver").Valid())
}

func TestBookingDocumentsSetRejectsUnknownKind(t *testing.T) {
	var docs BookingDocuments
	err := docs.Set(DocumentResult{DocID: "x", DocType: DocType("waiver")})
	require.Error(t, err)
	assert.False(t, docs.Complete())
}

func TestBookingDocumentsCompleteNeedsAllThreeKinds(t *testing.T) {
	var docs BookingDocuments
	for i, docType := range AllDocTypes {
		assert.False(t, docs.Complete())
		require.NoError(t, docs.Set(DocumentResult{DocID: "d", DocType: docType}))
		if i == len(AllDocTypes)-1 {
			assert.True(t, docs.Complete())
		}
	}
}
