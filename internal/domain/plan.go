package domain

import "calpages/internal/domain/entities"

// FreePlanActiveEventTypes is how many personal event types a FREE user may
// keep enabled.
const FreePlanActiveEventTypes = 1

// EventTypeDisabled reports whether the personal event type at ordinal
// (0-based, in merge order) is disabled for plan.
func EventTypeDisabled(plan entities.Plan, ordinal int) bool {
	return plan.IsFree() && ordinal >= FreePlanActiveEventTypes
}

// CanAddEventTypes reports whether a user with personalCount personal event
// types may create another one.
func CanAddEventTypes(plan entities.Plan, personalCount int) bool {
	return !plan.IsFree() || personalCount < FreePlanActiveEventTypes
}

// ApplyPlanGate sets Disabled on each personal event type in place.
func ApplyPlanGate(plan entities.Plan, eventTypes []entities.EventType) {
	for i := range eventTypes {
		eventTypes[i].Disabled = EventTypeDisabled(plan, i)
	}
}
