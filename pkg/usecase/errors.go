package usecase

// Context keys for log and error values
const (
	ValidationIDKey = "validation_id"
)
