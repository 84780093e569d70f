package line

type CreateLineRequest struct {
	LineNo           string   `json:"lineNo" binding:"required"`
	SapLocation      string   `json:"sapLocation" binding:"required"`
	Description      *string  `json:"description"`
	StandardManpower *int     `json:"standardManpower" binding:"omitempty,gt=0"`
	TargetUPPH       *float64 `json:"targetUPPH" binding:"omitempty,gt=0"`
}

// UpdateLineRequest is a partial update: only non-nil fields overwrite.
type UpdateLineRequest struct {
	LineNo           *string  `json:"lineNo"`
	SapLocation      *string  `json:"sapLocation"`
	Description      *string  `json:"description"`
	StandardManpower *int     `json:"standardManpower" binding:"omitempty,gt=0"`
	TargetUPPH       *float64 `json:"targetUPPH" binding:"omitempty,gt=0"`
	IsActive         *bool    `json:"isActive"`
}

type LineResponse struct {
	ID               string   `json:"id"`
	LineNo           string   `json:"lineNo"`
	SapLocation      string   `json:"sapLocation"`
	Description      *string  `json:"description,omitempty"`
	StandardManpower *int     `json:"standardManpower,omitempty"`
	TargetUPPH       *float64 `json:"targetUPPH,omitempty"`
	IsActive         bool     `json:"isActive"`
	CreatedAt        string   `json:"createdAt"`
	UpdatedAt        string   `json:"updatedAt"`
}
