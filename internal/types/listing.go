package types

// Listing is an internship listing supplied by the listing provider for one scoring batch.
type Listing struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company,omitempty"`
	Description  string   `json:"description,omitempty"`
	Category     string   `json:"category,omitempty"`
	Location     string   `json:"location,omitempty"`
	Skills       []string `json:"skills"`
	Requirements []string `json:"requirements"`

	// Display-only fields, carried through untouched.
	Industry string `json:"industry,omitempty"`
	Stipend  string `json:"stipend,omitempty"`
	Deadline string `json:"deadline,omitempty"`
}
