package entity

// set overwrites dst when the patch supplied a value.
func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// setRef replaces an optional field with a fresh copy of the patch value so the
// stored record never aliases caller memory.
func setRef[T any](dst **T, src *T) {
	if src != nil {
		v := *src
		*dst = &v
	}
}

// Ref returns a pointer to v. Handy for optional fields in literals.
func Ref[T any](v T) *T {
	return &v
}
