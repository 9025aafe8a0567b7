package sketch

const (
	MsgTooFewPoints     = "Please draw at least 3 points"
	MsgShapeCreated     = "Shape created! Extrusion enabled"
	MsgNeedMorePoints   = "Draw at least 3 points to create shape."
	MsgRightClickToDone = "Right click to complete shape."
	MsgDrawMode         = "Draw mode enabled. Right-click to complete the path."
	MsgMoveMode         = "Move mode enabled."
	MsgEditMode         = "Edit mode enabled. Select a Object to edit."
	MsgExtruded         = "Extrusion completed."
	MsgNothingToExtrude = "Nothing to extrude."
	MsgUndone           = "Undone."
)

// PointInstruction is the hint shown after the n-th point is placed.
func PointInstruction(n int) string {
	if n < 3 {
		return MsgNeedMorePoints
	}
	return MsgRightClickToDone
}

// ModeInstruction is the hint shown when m becomes active.
func ModeInstruction(m Mode) string {
	switch m {
	case ModeMove:
		return MsgMoveMode
	case ModeEdit:
		return MsgEditMode
	default:
		return MsgDrawMode
	}
}
