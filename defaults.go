package jsonbridge

// coalesce returns def when v is a nil interface - otherwise v. Only the nil
// check is done, so dynamic values that are not comparable are fine.
func coalesce[T any](v, def T) T {
	if any(v) == nil {
		return def
	}
	return v
}
