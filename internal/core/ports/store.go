package ports

import "go.trai.ch/sharetree/internal/core/domain"

// UsageReportStore defines the interface for storing and retrieving finalized usage reports.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type UsageReportStore interface {
	// Get retrieves the last report for a share key.
	// Returns nil, nil if not found.
	Get(shareKey string) (*domain.UsageReport, error)

	// Put stores the reports of one pass.
	Put(reports ...domain.UsageReport) error
}
