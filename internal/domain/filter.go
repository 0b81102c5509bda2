package domain

// Filter selects entities through one secondary index. The zero value
// selects every entity of the kind.
type Filter struct {
	Index Index
	Key   string
}

// IsZero reports whether the filter selects everything.
func (f Filter) IsZero() bool {
	return f.Index == "" && f.Key == ""
}

// Validate checks that a non-zero filter names a known index and a key.
func (f Filter) Validate() error {
	if f.IsZero() {
		return nil
	}
	fields := make(map[string]string)
	if !f.Index.IsValid() {
		fields["index"] = "unknown index " + string(f.Index)
	}
	if f.Key == "" {
		fields["key"] = MsgRequired
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
