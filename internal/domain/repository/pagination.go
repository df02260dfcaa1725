package repository

const (
	DefaultSkip  int64 = 0
	DefaultLimit int64 = 100
)

// ListOptions selects a page. Nil fields fall back to DefaultSkip and DefaultLimit.
type ListOptions struct {
	Skip  *int64
	Limit *int64
}

// Page builds ListOptions from concrete values.
func Page(skip, limit int64) ListOptions {
	return ListOptions{Skip: &skip, Limit: &limit}
}

// Window resolves the options into a concrete skip and limit. Negative skips
// become 0 and non-positive limits become DefaultLimit.
func (o ListOptions) Window() (skip, limit int64) {
	skip, limit = DefaultSkip, DefaultLimit
	if o.Skip != nil && *o.Skip > 0 {
		skip = *o.Skip
	}
	if o.Limit != nil && *o.Limit > 0 {
		limit = *o.Limit
	}
	return skip, limit
}

// Slice returns the window [skip, skip+limit) of items, clamped to the slice bounds.
func Slice[E any](items []E, skip, limit int64) []E {
	n := int64(len(items))
	if skip >= n {
		return []E{}
	}
	end := skip + limit
	if end > n || end < skip {
		end = n
	}
	return items[skip:end]
}
