package project

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/renovation-marketplace/internal/models"
)

func TestIsParticipant(t *testing.T) {
	pro := "pro-1"
	p := &models.Project{ClientID: "client-1", ProID: &pro}

	assert.True(t, IsParticipant(p, "client-1"))
	assert.True(t, IsParticipant(p, "pro-1"))
	assert.False(t, IsParticipant(p, "someone"))
	assert.True(t, IsAssignedPro(p, "pro-1"))
	assert.False(t, IsAssignedPro(p, "client-1"))

	unassigned := &models.Project{ClientID: "client-1"}
	assert.False(t, IsAssignedPro(unassigned, "pro-1"))
}

func TestValidateProgress(t *testing.T) {
	assert.NoError(t, ValidateProgress(0))
	assert.NoError(t, ValidateProgress(100))
	assert.Error(t, ValidateProgress(-1))
	assert.Error(t, ValidateProgress(101))
}
