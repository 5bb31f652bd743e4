package cli

import (
	"log/slog"

	"github.com/aretw0/byteflip/pkg/domain"
)

func createDebugHooks(logger *slog.Logger) domain.ScanHooks {
	return domain.ScanHooks{
		OnRegionEnter: func(e *domain.RegionEvent) {
			logger.Debug("Enter Region", "region", e.Region, "line", e.Line)
		},
		OnRegionLeave: func(e *domain.RegionEvent) {
			logger.Debug("Leave Region", "region", e.Region, "line", e.Line)
		},
	}
}
