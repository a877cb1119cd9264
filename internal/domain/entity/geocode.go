package entity

// GeocodeCandidate is a transient autocomplete result.
type GeocodeCandidate struct {
	DisplayName string `json:"displayName"`
	Latitude    string `json:"latitude"`
	Longitude   string `json:"longitude"`
	City        string `json:"city"`
}
