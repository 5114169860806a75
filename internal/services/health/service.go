package health

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status returns the fixed healthy acknowledgment. No dependencies are
// probed; the endpoint only proves the process is serving.
func (s *Service) Status() map[string]string {
	return map[string]string{"status": "healthy"}
}
