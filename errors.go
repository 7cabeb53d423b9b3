package rowan

// StructuralError reports a violation of the single-parent ownership
// invariant: adding a child that already has a parent, or removing a child
// parented to another object. Tree mutators panic with a *StructuralError;
// update, draw, activate, and destroy are total over well-formed trees and
// never raise one.
type StructuralError struct {
	Op  string // the mutating operation, e.g. "AddChild"
	Msg string
}

func (e *StructuralError) Error() string {
	return "rowan: " + e.Op + ": " + e.Msg
}
