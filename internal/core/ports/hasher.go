package ports

// Hasher computes content digests for artifacts.
//
//go:generate mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashFile returns the hex digest and size of the file at path.
	HashFile(path string) (string, int64, error)
}
