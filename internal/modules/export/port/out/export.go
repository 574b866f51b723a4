package out

import (
	"context"

	"synmap/internal/modules/export/domain"
)

type ManifestStore interface {
	Load(ctx context.Context) ([]domain.Manifest, error)
}

// Host runs exporter binaries over their rpc contract.
type Host interface {
	CheckLifecycle(ctx context.Context, manifest domain.Manifest) error
	Describe(ctx context.Context, manifest domain.Manifest) (domain.Descriptor, error)
	Export(ctx context.Context, manifest domain.Manifest, doc domain.Document, format string) (domain.Rendering, error)
}
