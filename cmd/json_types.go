package cmd

// checkForJSON is a struct used for marshaling a check to JSON for machine-readable output.
type checkForJSON struct {
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Details     []string `json:"details"`
}
