package domain

// Status is a lifecycle status value. Each entity kind declares its own set
// of statuses in its sub-package; the kind's Graph decides which are valid.
type Status string

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}
