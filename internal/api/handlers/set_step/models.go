package set_step

// SetStepRequest HTTP request model
type SetStepRequest struct {
	Step int `json:"step"`
}
