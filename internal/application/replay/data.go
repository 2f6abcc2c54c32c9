package replay

// FrameInput records input state for a single tick
type FrameInput struct {
	F   int  `json:"f"`             // Tick number
	L   bool `json:"l,omitempty"`   // Left
	R   bool `json:"r,omitempty"`   // Right
	U   bool `json:"u,omitempty"`   // Up
	D   bool `json:"d,omitempty"`   // Down
	JP  bool `json:"jp,omitempty"`  // JumpPressed
	JR  bool `json:"jr,omitempty"`  // JumpReleased
	Dsh bool `json:"dsh,omitempty"` // DashPressed
}

// ReplayData contains all data needed to replay a session.
// The controller is deterministic, so inputs plus stage and tick rate are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Stage     string       `json:"stage"`
	TickRate  int          `json:"tickRate"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// Version is written into every new recording
const Version = "2.0"
