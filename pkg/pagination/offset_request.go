package pagination

// OffsetRequest represents an offset-based pagination request
type OffsetRequest struct {
	Page int `json:"page" query:"page" validate:"min=1"`
	Size int `json:"limit" query:"limit" validate:"min=1,max=500"`
}

// Normalize clamps out-of-range pagination parameters to usable defaults.
// Bad values are corrected rather than rejected.
func (r *OffsetRequest) Normalize() {
	if r.Page <= 0 {
		r.Page = 1
	}
	if r.Size <= 0 {
		r.Size = PageDefaultSize
	}
	if r.Size > PageMaxSize {
		r.Size = PageMaxSize
	}
}

// Offset returns the zero-based slice offset for the current page.
func (r *OffsetRequest) Offset() int {
	return (r.Page - 1) * r.Size
}

// Slice applies the offset/limit window to an already filtered slice.
func Slice[T any](items []T, r *OffsetRequest) []T {
	offset := r.Offset()
	if offset >= len(items) {
		return []T{}
	}
	end := offset + r.Size
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end]
}
