// Package lifecycle maps a claim status to the stage-advance action an
// operator may request for it.
package lifecycle

import "github.com/warrantyguard/claim-portal/internal/model"

// Stage selects the backend endpoint an action is sent to.
type Stage string

const (
	Logistics Stage = "logistics"
	Repair    Stage = "repair"
)

type Action struct {
	Name  string
	Label string
	Stage Stage
	// Target is the status marker sent to the backend.
	Target string
}

var (
	PickupComplete = Action{
		Name:   "pickup-complete",
		Label:  "Mark Pickup Completed",
		Stage:  Logistics,
		Target: model.StageCompleted,
	}
	RepairComplete = Action{
		Name:   "repair-complete",
		Label:  "Mark Repair Completed",
		Stage:  Repair,
		Target: model.StageCompleted,
	}
	ReturnDelivered = Action{
		Name:   "return-delivered",
		Label:  "Mark Return Delivered",
		Stage:  Logistics,
		Target: model.StageCompleted,
	}
)

// table holds every status the portal knows about. A nil entry means the
// status is known to offer no action.
var table = map[model.Status]*Action{
	model.PickupScheduled: &PickupComplete,
	model.RepairInitiated: &RepairComplete,
	model.ReturnScheduled: &ReturnDelivered,

	model.Approved:  nil,
	model.Pending:   nil,
	model.Rejected:  nil,
	model.Completed: nil,
}

var byName = map[string]Action{
	PickupComplete.Name:  PickupComplete,
	RepairComplete.Name:  RepairComplete,
	ReturnDelivered.Name: ReturnDelivered,
}

// Lookup returns the action available for status, if any.
func Lookup(status model.Status) (Action, bool) {
	a := table[status]
	if a == nil {
		return Action{}, false
	}
	return *a, true
}

// ActionsFor returns the actions available for status. The result has at
// most one element and is empty for unknown statuses.
func ActionsFor(status model.Status) []Action {
	if a, ok := Lookup(status); ok {
		return []Action{a}
	}
	return nil
}

// HasNoActions reports whether status is one of the statuses explicitly
// listed as offering no operator action.
func HasNoActions(status model.Status) bool {
	a, known := table[status]
	return known && a == nil
}

func ByName(name string) (Action, bool) {
	a, ok := byName[name]
	return a, ok
}
