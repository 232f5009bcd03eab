package request

import "strings"

// QuoteRequest is the quote form payload.
//
// `count` is accepted as an alias of `window_count` for older form builds.
type QuoteRequest struct {
	Width        float64 `json:"width"`
	Height       float64 `json:"height"`
	WindowCount  int     `json:"window_count"`
	Count        int     `json:"count"`
	MeshType     string  `json:"mesh_type" binding:"required"`
	MaterialType string  `json:"material_type" binding:"required"`
	Location     string  `json:"location"`
	Notes        string  `json:"notes"`
}

func (r QuoteRequest) ResolveWindowCount() int {
	if r.WindowCount > 0 {
		return r.WindowCount
	}
	return r.Count
}

type QuoteStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r QuoteStatusRequest) ResolveStatus() string {
	return strings.ToLower(strings.TrimSpace(r.Status))
}
