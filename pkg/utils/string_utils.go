package utils

// NewNullString returns a pointer to s, or nil when s is empty. Used for
// optional form fields that should be stored as NULL when left blank.
func NewNullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
