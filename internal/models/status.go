package models

// IdleStatus is the snapshot synthesized when the pipeline has not written a
// status file yet. The real snapshot is opaque JSON owned by the pipeline and
// passed through verbatim; only this default is ever built here.
type IdleStatus struct {
	Status   string `json:"status"`
	File     string `json:"file"`
	Progress int    `json:"progress"`
	Stage    string `json:"stage"`
}

// NewIdleStatus returns the default "nothing is being processed" snapshot.
func NewIdleStatus() IdleStatus {
	return IdleStatus{
		Status:   "idle",
		File:     "None",
		Progress: 0,
		Stage:    "Idle",
	}
}
