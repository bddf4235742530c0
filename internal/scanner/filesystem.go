package scanner

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/ralt/nupkgcmp/internal/utils"
	"github.com/sirupsen/logrus"
)

// FileSystemScanner implements Scanner interface on top of a billy filesystem
type FileSystemScanner struct {
	fs utils.Filesystem
}

var _ Scanner = (*FileSystemScanner)(nil)

// NewFileSystemScanner creates a new filesystem scanner
func NewFileSystemScanner(fs utils.Filesystem) *FileSystemScanner {
	return &FileSystemScanner{fs: fs}
}

// Scan lists the .nupkg files directly inside dir. Subdirectories and
// other files are ignored.
func (s *FileSystemScanner) Scan(ctx context.Context, dir string) ([]models.PackageFile, error) {
	infos, err := s.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory: %w", err)
	}

	var packages []models.PackageFile
	for _, info := range infos {
		// Check context cancellation
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if info.IsDir() || !strings.HasSuffix(info.Name(), models.PackageExtension) {
			continue
		}

		pkg := NewPackageFile(s.fs.Join(dir, info.Name()), info.Name(), info.Size())
		switch {
		case pkg.NameErr != nil:
			logrus.Debugf("Found package with unparsed name: %s (%d bytes)", pkg.Path, pkg.Size)
		case pkg.Version != nil:
			logrus.Debugf("Found package %s version %s: %s (%d bytes)", pkg.Identity, pkg.Version, pkg.Path, pkg.Size)
		default:
			logrus.Debugf("Found package %s: %s (%d bytes)", pkg.Identity, pkg.Path, pkg.Size)
		}

		packages = append(packages, pkg)
	}

	// Listing order is filesystem dependent
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].FileName < packages[j].FileName
	})

	logrus.Debugf("Found %d packages in %s", len(packages), dir)
	return packages, nil
}
