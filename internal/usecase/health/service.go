package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Check names.
const (
	CheckBackend = "search_backend"
	CheckIndexes = "indexes"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates readiness checks.
type Service struct {
	backend BackendPinger
	indexes IndexChecker
}

// New creates a Service. indexes can be nil.
func New(backend BackendPinger, indexes IndexChecker) *Service {
	return &Service{backend: backend, indexes: indexes}
}

// Check runs health checks against all components.
// Index checks are skipped while the backend itself is unreachable.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	backendOK := s.backend.Ping(ctx) == nil
	if backendOK {
		checks[CheckBackend] = CheckOK
	} else {
		checks[CheckBackend] = CheckError
	}

	if s.indexes != nil {
		if !backendOK {
			checks[CheckIndexes] = CheckError
		} else if _, err := s.indexes.Stats(ctx); err != nil {
			checks[CheckIndexes] = CheckError
		} else {
			checks[CheckIndexes] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
