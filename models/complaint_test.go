package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplaintStatus_Index(t *testing.T) {
	assert.Equal(t, 0, StatusSubmitted.Index())
	assert.Equal(t, 4, StatusResolved.Index())
	assert.Equal(t, -1, ComplaintStatus("PENDING_AUTHORITY_REVIEW").Index())
	assert.False(t, ComplaintStatus("draft").IsValid())
	assert.True(t, StatusActionTaken.IsValid())
}
