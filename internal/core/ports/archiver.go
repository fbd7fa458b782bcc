package ports

import "go.trai.ch/ship/internal/core/domain"

// Archiver is a compression strategy for one platform family.
//
//go:generate mockgen -source=archiver.go -destination=mocks/mock_archiver.go -package=mocks
type Archiver interface {
	// Name identifies the strategy for display.
	Name() string

	// CompressStep returns the step that compresses the full contents of
	// srcDir into archivePath. Strategies that cannot run on the host
	// return domain.ErrUnsupportedPlatform.
	CompressStep(srcDir, archivePath string) (domain.Step, error)
}
