package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/ralt/nupkgcmp/internal/annotate"
	"github.com/ralt/nupkgcmp/internal/archive"
	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/ralt/nupkgcmp/internal/reconcile"
	"github.com/ralt/nupkgcmp/internal/scanner"
	"github.com/ralt/nupkgcmp/internal/utils"
	"github.com/sirupsen/logrus"
)

// validateConfig checks the flags and resolves the annotation format
func validateConfig(config *models.CompareConfig) (annotate.Format, error) {
	format, err := annotate.ParseFormat(config.Annotations)
	if err != nil {
		return format, &models.CompareError{
			Type: models.ErrInvalidInput,
			Err:  err,
		}
	}
	return format, nil
}

func runComparison(ctx context.Context, out io.Writer, config *models.CompareConfig, format annotate.Format) error {
	return compareArtifacts(ctx, osfs.Default, out, annotate.New(format, out, logrus.StandardLogger()), config)
}

// compareArtifacts prints the packages of NextDir whose content differs
// from PreviousDir, then checks that ReleaseDir holds the same packages as
// NextDir. Problems are annotated on a; its error is returned at the end.
func compareArtifacts(ctx context.Context, fs utils.Filesystem, out io.Writer, a *annotate.Annotator, config *models.CompareConfig) error {
	// Step 1: Validate all inputs before giving up
	inputs := []struct {
		name string
		path string
	}{
		{"Previous packages", config.PreviousDir},
		{"Next packages", config.NextDir},
		{"Release packages", config.ReleaseDir},
	}
	for _, in := range inputs {
		ok, err := utils.Exists(fs, in.path)
		if err != nil {
			a.Errorf("%s path '%s' cannot be accessed: %v", in.name, in.path, err)
			continue
		}
		if !ok {
			a.Errorf("%s path '%s' does not exist.", in.name, in.path)
		}
	}
	if err := a.Err(); err != nil {
		return err
	}

	var sc scanner.Scanner = scanner.NewFileSystemScanner(fs)

	// Step 2: Compare every next package against its previous build
	nextPackages, err := sc.Scan(ctx, config.NextDir)
	if err != nil {
		return &models.CompareError{Type: models.ErrFileOp, Package: config.NextDir, Err: err}
	}
	reportNameErrors(a, config, nextPackages)

	comparer := archive.NewComparer(fs, archive.Options{
		CheckSymbolPackages: config.CheckSymbolPackages,
	}, logrus.StandardLogger())

	var changed []string
	for _, pkg := range nextPackages {
		if err := ctx.Err(); err != nil {
			return err
		}

		result, err := comparer.Compare(pkg.Path, fs.Join(config.PreviousDir, pkg.FileName), false)
		if err != nil {
			a.Errorf("Failed to compare '%s': %v", pkg.FileName, err)
			continue
		}

		if !result.Equivalent {
			logrus.Infof("'%s' differs", pkg.FileName)
			changed = append(changed, pkg.FileName)
		}
	}

	// Step 3: Report changed packages
	fmt.Fprintln(out)
	fmt.Fprintln(out, "The following packages have changes:")
	for _, name := range changed {
		fmt.Fprintf(out, "  %s\n", name)
	}

	// Step 4: Reference and release artifacts must hold the same packages
	releasePackages, err := sc.Scan(ctx, config.ReleaseDir)
	if err != nil {
		return &models.CompareError{Type: models.ErrFileOp, Package: config.ReleaseDir, Err: err}
	}
	reportNameErrors(a, config, releasePackages)

	diff := reconcile.Diff(reconcile.NewSet(releasePackages), reconcile.NewSet(nextPackages))
	if diff.Empty() {
		return a.Err()
	}

	listMissingPeers(out, a, "The following packages exist in the release package artifact, but not in the next dummy reference artifact:", diff.OnlyInRelease)
	listMissingPeers(out, a, "The following packages exist in the next dummy reference artifact, but not in the release package artifact:", diff.OnlyInReference)

	return &models.CompareError{
		Type: models.ErrPackageSet,
		Err:  fmt.Errorf("release and reference package sets differ: %w", a.Err()),
	}
}

func reportNameErrors(a *annotate.Annotator, config *models.CompareConfig, packages []models.PackageFile) {
	for _, pkg := range packages {
		if pkg.NameErr == nil {
			continue
		}
		if config.StrictNames {
			a.Errorf("File name '%s' does not match the expected format for a NuGet package.", pkg.FileName)
		} else {
			a.Warningf("File name '%s' does not match the expected format for a NuGet package.", pkg.FileName)
		}
	}
}

func listMissingPeers(out io.Writer, a *annotate.Annotator, message string, identities []string) {
	if len(identities) == 0 {
		return
	}

	fmt.Fprintln(out)
	a.Errorf("%s", message)
	for _, id := range identities {
		a.Errorf("  %s", id)
	}
}
