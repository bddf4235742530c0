package archive

import "strings"

// Metadata written by nuget pack that changes on every pack
const (
	relationshipsEntry    = "_rels/.rels"
	corePropertiesPrefix  = "package/services/metadata/core-properties/"
	corePropertiesExtname = ".psmdcp"
)

// ShouldIgnore reports whether an entry is excluded from comparison
func ShouldIgnore(e Entry) bool {
	if e.Name == relationshipsEntry {
		return true
	}
	if strings.HasPrefix(e.Name, corePropertiesPrefix) && strings.HasSuffix(e.Name, corePropertiesExtname) {
		return true
	}

	// Explicit directories carry no content
	return e.Dir
}
