package scanner

import (
	"fmt"
	"regexp"

	"github.com/Masterminds/semver/v3"
	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/sirupsen/logrus"
)

// packageFileNamePattern matches "{id}.{semver}.nupkg" where the version
// follows the SemVer 2.0 grammar. The id is matched lazily so the first
// position where a valid version suffix starts wins.
var packageFileNamePattern = regexp.MustCompile(`^(?P<id>.+?)\.` +
	`(?P<version>(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)\.(?:0|[1-9]\d*)` +
	`(?:-(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*)?` +
	`(?:\+[0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*)?)` +
	regexp.QuoteMeta(models.PackageExtension) + `$`)

var (
	idGroup      = packageFileNamePattern.SubexpIndex("id")
	versionGroup = packageFileNamePattern.SubexpIndex("version")
)

// ParsePackageName splits a package file name into its identity and version.
// The version is nil when it matches the pattern but does not fit semver's
// numeric range.
func ParsePackageName(fileName string) (string, *semver.Version, error) {
	m := packageFileNamePattern.FindStringSubmatch(fileName)
	if m == nil {
		return "", nil, &models.CompareError{
			Type:    models.ErrNameFormat,
			Package: fileName,
			Err:     fmt.Errorf("file name does not match the expected format for a NuGet package"),
		}
	}

	// The pattern already fixes the identity; the version is informational
	v, err := semver.StrictNewVersion(m[versionGroup])
	if err != nil {
		logrus.Debugf("Cannot parse version %q of %s: %v", m[versionGroup], fileName, err)
		return m[idGroup], nil, nil
	}

	return m[idGroup], v, nil
}

// NewPackageFile builds a PackageFile for the archive at path. Names that
// cannot be parsed keep the whole file name as identity and record the
// error in NameErr.
func NewPackageFile(path, fileName string, size int64) models.PackageFile {
	pkg := models.PackageFile{
		FileName: fileName,
		Path:     path,
		Identity: fileName,
		Size:     size,
	}

	id, v, err := ParsePackageName(fileName)
	if err != nil {
		pkg.NameErr = err
		return pkg
	}

	pkg.Identity = id
	pkg.Version = v
	return pkg
}
