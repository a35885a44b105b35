package replay

// FormatVersion is written into every recording
const FormatVersion = "2.0"

// FrameInput records the actions held during a single tick
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
}

// ReplayData contains all data needed to replay a run.
// Seed drives procedural levels and random obstacle movement, so the same
// seed and frames reproduce the run exactly.
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     int          `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
