package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCapabilitiesFor(t *testing.T) {
	free := CapabilitiesFor(PlanFree)
	assert.Equal(t, 3, free.MaxBudgets)
	assert.Equal(t, 1, free.MaxGoals)
	assert.False(t, free.CSVImport)
	assert.False(t, free.EmailAlerts)

	plus := CapabilitiesFor(PlanPlus)
	assert.Equal(t, 15, plus.MaxBudgets)
	assert.True(t, plus.CSVImport)
	assert.True(t, plus.EmailAlerts)

	family := CapabilitiesFor(PlanFamily)
	assert.Equal(t, 50, family.MaxBudgets)
	assert.Equal(t, 20, family.MaxGoals)
}

func TestCapabilitiesFor_UnknownTierFallsBackToFree(t *testing.T) {
	assert.Equal(t, CapabilitiesFor(PlanFree), CapabilitiesFor(PlanTier("enterprise")))
	assert.Equal(t, CapabilitiesFor(PlanFree), CapabilitiesFor(PlanTier("")))
}
