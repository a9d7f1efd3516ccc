package usecase

// coalesce returns newVal unless it is empty.
func coalesce(newVal, existing string) string {
	if newVal != "" {
		return newVal
	}
	return existing
}
