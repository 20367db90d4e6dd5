package dto

type BoardResponse struct {
	Marker      string                `json:"marker"`
	RefreshedAt string                `json:"refreshed_at"`
	DerivedAt   string                `json:"derived_at"`
	Buckets     map[string][]TaskItem `json:"buckets"`
}
