package production

// PlanQty and ActualQty bind through pointers so zero is a valid quantity and
// a missing field is rejected rather than defaulted.
type CreateRecordRequest struct {
	LineNo           string   `json:"lineNo" binding:"required"`
	SapLocation      *string  `json:"sapLocation"`
	ModelName        string   `json:"modelName" binding:"required"`
	PlanQty          *int64   `json:"planQty" binding:"required,gte=0"`
	ActualQty        *int64   `json:"actualQty" binding:"required,gte=0"`
	TargetUPPH       *float64 `json:"targetUPPH"`
	ActualUPPH       *float64 `json:"actualUPPH"`
	StandardManpower *int     `json:"standardManpower"`
	ActualManpower   *int     `json:"actualManpower"`
	FPYPercentage    *float64 `json:"fpyPercentage"`
	RTYPercentage    *float64 `json:"rtyPercentage"`
	OSDValue         *float64 `json:"osdValue"`
	OSDPercentage    *float64 `json:"osdPercentage"`
	ShiftName        *string  `json:"shiftName" binding:"omitempty,oneof=A B C"`
	Date             *string  `json:"date"` // RFC3339 or YYYY-MM-DD, defaults to now
}

// UpdateRecordRequest is a partial update: only non-nil fields overwrite.
type UpdateRecordRequest struct {
	LineNo           *string  `json:"lineNo"`
	SapLocation      *string  `json:"sapLocation"`
	ModelName        *string  `json:"modelName"`
	PlanQty          *int64   `json:"planQty" binding:"omitempty,gte=0"`
	ActualQty        *int64   `json:"actualQty" binding:"omitempty,gte=0"`
	TargetUPPH       *float64 `json:"targetUPPH"`
	ActualUPPH       *float64 `json:"actualUPPH"`
	StandardManpower *int     `json:"standardManpower"`
	ActualManpower   *int     `json:"actualManpower"`
	FPYPercentage    *float64 `json:"fpyPercentage"`
	RTYPercentage    *float64 `json:"rtyPercentage"`
	OSDValue         *float64 `json:"osdValue"`
	OSDPercentage    *float64 `json:"osdPercentage"`
	ShiftName        *string  `json:"shiftName" binding:"omitempty,oneof=A B C"`
	Date             *string  `json:"date"`
}

type RecorderResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

type RecordResponse struct {
	ID          string  `json:"id"`
	LineNo      string  `json:"lineNo"`
	SapLocation *string `json:"sapLocation,omitempty"`
	ModelName   string  `json:"modelName"`

	PlanQty   int64 `json:"planQty"`
	ActualQty int64 `json:"actualQty"`
	// Variance is derived on every serialization, never stored.
	Variance int64 `json:"variance"`

	TargetUPPH *float64 `json:"targetUPPH,omitempty"`
	ActualUPPH *float64 `json:"actualUPPH,omitempty"`

	StandardManpower *int `json:"standardManpower,omitempty"`
	ActualManpower   *int `json:"actualManpower,omitempty"`
	// ManpowerVariance is absent when either operand is absent.
	ManpowerVariance *int `json:"manpowerVariance,omitempty"`

	FPYPercentage *float64 `json:"fpyPercentage,omitempty"`
	RTYPercentage *float64 `json:"rtyPercentage,omitempty"`

	OSDValue      *float64 `json:"osdValue,omitempty"`
	OSDPercentage *float64 `json:"osdPercentage,omitempty"`

	ShiftName *string `json:"shiftName,omitempty"`

	Date       string            `json:"date"`
	RecordedBy *RecorderResponse `json:"recordedBy,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
