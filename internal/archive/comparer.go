package archive

import (
	"fmt"
	"sort"

	"github.com/klauspost/compress/zip"
	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/ralt/nupkgcmp/internal/utils"
	"github.com/sirupsen/logrus"
)

// MismatchKind classifies a difference between two archives
type MismatchKind string

const (
	MismatchExistence MismatchKind = "existence"
	MismatchSymbols   MismatchKind = "symbols"
	MismatchMissing   MismatchKind = "missing"
	MismatchExtra     MismatchKind = "extra"
	MismatchCRC       MismatchKind = "crc"
	MismatchSize      MismatchKind = "size"
	MismatchDigest    MismatchKind = "digest"
)

// Mismatch is a single difference found while comparing two archives
type Mismatch struct {
	Kind  MismatchKind
	Entry string
}

// Result is the outcome of comparing two archives
type Result struct {
	Equivalent bool
	Mismatches []Mismatch
	// Symbols is the result of the companion symbol package comparison,
	// nil when it was not checked
	Symbols *Result
}

// Options controls archive comparison
type Options struct {
	// CheckSymbolPackages also compares the .snupkg companion of a package.
	// Symbol packages embed PDB ids that change whenever a dependency is
	// rebuilt, so this is off by default.
	CheckSymbolPackages bool
}

// Comparer checks package archives for content equivalence
type Comparer struct {
	fs   utils.Filesystem
	opts Options
	log  logrus.FieldLogger
}

// NewComparer creates a new archive comparer reading from fs
func NewComparer(fs utils.Filesystem, opts Options, log logrus.FieldLogger) *Comparer {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Comparer{fs: fs, opts: opts, log: log}
}

// Compare checks whether the archives at aPath and bPath hold the same
// content. symbols marks a companion symbol package comparison, for which
// both archives being absent is acceptable.
func (c *Comparer) Compare(aPath, bPath string, symbols bool) (*Result, error) {
	c.log.Infof("Comparing '%s' and '%s'", aPath, bPath)

	aExists, err := utils.Exists(c.fs, aPath)
	if err != nil {
		return nil, &models.CompareError{Type: models.ErrFileOp, Package: aPath, Err: err}
	}
	bExists, err := utils.Exists(c.fs, bPath)
	if err != nil {
		return nil, &models.CompareError{Type: models.ErrFileOp, Package: bPath, Err: err}
	}

	result := &Result{Equivalent: true}

	if aExists != bExists {
		c.log.Info("Not equivalent: Only one package actually exists")
		result.mismatch(MismatchExistence, "")
		return result, nil
	}

	if !aExists {
		if symbols {
			c.log.Info("Equivalent: Neither package exists")
			return result, nil
		}
		return nil, &models.CompareError{
			Type:    models.ErrMissingArchive,
			Package: aPath,
			Err:     fmt.Errorf("neither package exists: '%s' or '%s'", aPath, bPath),
		}
	}

	// From here on everything is checked so the log explains every difference
	if c.opts.CheckSymbolPackages && !symbols {
		symResult, err := c.Compare(models.SymbolPath(aPath), models.SymbolPath(bPath), true)
		if err != nil {
			return nil, err
		}
		result.Symbols = symResult
		if !symResult.Equivalent {
			c.log.Info("Not equivalent: Symbol packages are not equivalent")
			result.mismatch(MismatchSymbols, "")
		} else {
			c.log.Info("Symbol packages are equivalent")
		}
	}

	if err := c.compareEntries(aPath, bPath, result); err != nil {
		return nil, err
	}

	return result, nil
}

// compareEntries walks the entries of both archives. nuget pack is not
// deterministic, so archives are compared member by member rather than
// byte for byte.
func (c *Comparer) compareEntries(aPath, bPath string, result *Result) error {
	aZip, aClose, err := c.open(aPath)
	if err != nil {
		return err
	}
	defer aClose()

	bZip, bClose, err := c.open(bPath)
	if err != nil {
		return err
	}
	defer bClose()

	bEntries := make(map[string]Entry)
	for _, f := range bZip.File {
		e := newEntry(f)
		if ShouldIgnore(e) {
			continue
		}
		if _, dup := bEntries[e.Name]; dup {
			return &models.CompareError{
				Type:    models.ErrArchiveRead,
				Package: bPath,
				Err:     fmt.Errorf("duplicate entry '%s'", e.Name),
			}
		}
		bEntries[e.Name] = e
	}

	for _, f := range aZip.File {
		a := newEntry(f)
		if ShouldIgnore(a) {
			continue
		}

		b, ok := bEntries[a.Name]
		if !ok {
			c.log.Infof("Not equivalent: '%s' exists in '%s' but not in '%s'", a.Name, aPath, bPath)
			result.mismatch(MismatchMissing, a.Name)
			continue
		}
		delete(bEntries, a.Name)

		if a.CRC32 != b.CRC32 {
			c.log.Infof("Not equivalent: CRCs of '%s' do not match between '%s' and '%s'", a.Name, aPath, bPath)
			result.mismatch(MismatchCRC, a.Name)
			continue
		}

		if a.Size != b.Size {
			c.log.Infof("Not equivalent: File sizes of '%s' do not match between '%s' and '%s'", a.Name, aPath, bPath)
			result.mismatch(MismatchSize, a.Name)
			continue
		}

		aDigest, err := a.Digest()
		if err != nil {
			return &models.CompareError{Type: models.ErrArchiveRead, Package: aPath, Err: fmt.Errorf("failed to read '%s': %w", a.Name, err)}
		}
		bDigest, err := b.Digest()
		if err != nil {
			return &models.CompareError{Type: models.ErrArchiveRead, Package: bPath, Err: fmt.Errorf("failed to read '%s': %w", b.Name, err)}
		}
		if aDigest != bDigest {
			c.log.Infof("Not equivalent: SHA256 hashes of '%s' do not match between '%s' and '%s'", a.Name, aPath, bPath)
			result.mismatch(MismatchDigest, a.Name)
			continue
		}

		c.log.Debugf("'%s' matches (sha256 %s)", a.Name, aDigest)
	}

	// Anything left in B was never seen in A
	if len(bEntries) > 0 {
		extra := make([]string, 0, len(bEntries))
		for name := range bEntries {
			extra = append(extra, name)
		}
		sort.Strings(extra)

		for _, name := range extra {
			c.log.Infof("Not equivalent: '%s' exists in '%s' but not in '%s'", name, bPath, aPath)
			result.mismatch(MismatchExtra, name)
		}
	}

	return nil
}

// open reads the central directory of the archive at path. The returned
// func closes the underlying file.
func (c *Comparer) open(path string) (*zip.Reader, func(), error) {
	f, size, err := utils.OpenSized(c.fs, path)
	if err != nil {
		return nil, nil, &models.CompareError{Type: models.ErrFileOp, Package: path, Err: err}
	}

	zr, err := zip.NewReader(f, size)
	if err != nil {
		f.Close()
		return nil, nil, &models.CompareError{Type: models.ErrArchiveRead, Package: path, Err: err}
	}

	return zr, func() { f.Close() }, nil
}

func (r *Result) mismatch(kind MismatchKind, entry string) {
	r.Equivalent = false
	r.Mismatches = append(r.Mismatches, Mismatch{Kind: kind, Entry: entry})
}
