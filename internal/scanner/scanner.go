package scanner

import (
	"context"

	"github.com/ralt/nupkgcmp/internal/models"
)

// Scanner interface for listing package archives
type Scanner interface {
	// Scan lists the package archives directly inside dir, sorted by file name
	Scan(ctx context.Context, dir string) ([]models.PackageFile, error)
}
