package models

// PlanTier is the workspace subscription level.
type PlanTier string

const (
	PlanFree   PlanTier = "free"
	PlanPlus   PlanTier = "plus"
	PlanFamily PlanTier = "family"
)

// Capabilities is the feature set granted by a plan tier.
type Capabilities struct {
	MaxBudgets  int
	MaxGoals    int
	CSVImport   bool
	EmailAlerts bool
}

// planCapabilities is the closed tier table; lookups never consult
// anything dynamic.
var planCapabilities = map[PlanTier]Capabilities{
	PlanFree:   {MaxBudgets: 3, MaxGoals: 1, CSVImport: false, EmailAlerts: false},
	PlanPlus:   {MaxBudgets: 15, MaxGoals: 5, CSVImport: true, EmailAlerts: true},
	PlanFamily: {MaxBudgets: 50, MaxGoals: 20, CSVImport: true, EmailAlerts: true},
}

// CapabilitiesFor returns the capability set for a tier. Unknown tiers
// fall back to the free plan.
func CapabilitiesFor(tier PlanTier) Capabilities {
	if caps, ok := planCapabilities[tier]; ok {
		return caps
	}
	return planCapabilities[PlanFree]
}
