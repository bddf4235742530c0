package archive

import (
	"fmt"
	"strings"

	"github.com/klauspost/compress/zip"
	"github.com/ralt/nupkgcmp/internal/utils"
)

// Entry is a member of a package archive
type Entry struct {
	Name  string
	Size  uint64
	CRC32 uint32
	Dir   bool

	file *zip.File
}

// newEntry reads the central directory record of f. Only a trailing slash
// marks a directory; the mode bits in the external attributes are set by
// the packing tool and may be wrong for file entries.
func newEntry(f *zip.File) Entry {
	return Entry{
		Name:  f.Name,
		Size:  f.UncompressedSize64,
		CRC32: f.CRC32,
		Dir:   strings.HasSuffix(f.Name, "/"),
		file:  f,
	}
}

// Digest returns the SHA-256 digest of the decompressed entry contents
func (e Entry) Digest() (string, error) {
	if e.file == nil {
		return "", fmt.Errorf("entry %s is not backed by an archive", e.Name)
	}

	r, err := e.file.Open()
	if err != nil {
		return "", err
	}
	defer r.Close()

	return utils.DigestReader(r)
}
