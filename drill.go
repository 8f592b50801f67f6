package vizr

type SelectionKind string

const (
	SelectionPoint SelectionKind = "point"
	SelectionBrush SelectionKind = "brush"
)

type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DrillDownSelection packages resolved raw rows for the host data viewer.
// It is ephemeral: produced by the interaction controller, handed off, and
// never retained by the engine. Row metadata travels verbatim so the
// viewer can fetch related records.
type DrillDownSelection struct {
	Kind           SelectionKind `json:"kind"`
	Rows           []Row         `json:"rows"`
	AnchorPosition Position      `json:"anchorPosition"`
	Title          string        `json:"title"`
}

// Viewer is the external data-viewer collaborator; the engine knows
// nothing about its presentation.
type Viewer interface {
	ShowSelection(DrillDownSelection)
}

// BridgeTo adapts a Viewer into the OnPointClick callback slot.
func BridgeTo(v Viewer) func(DrillDownSelection) {
	if v == nil {
		return nil
	}
	return v.ShowSelection
}
