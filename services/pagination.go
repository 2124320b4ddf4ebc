// services/pagination.go
package services

// PageCount is ceil(total/size). size is clamped to >= 1 at the handler
// boundary, so the division cannot fault.
func PageCount(total, size int) int {
	return (total + size - 1) / size
}
