// Package reconcile checks that two artifact directories hold the same
// packages, independent of their contents.
package reconcile

import (
	"sort"

	"github.com/ralt/nupkgcmp/internal/models"
)

// Set is a set of package identities
type Set map[string]struct{}

// NewSet returns the identities of packages
func NewSet(packages []models.PackageFile) Set {
	s := make(Set, len(packages))
	for _, pkg := range packages {
		s[pkg.Identity] = struct{}{}
	}
	return s
}

// Contains reports whether identity is in the set
func (s Set) Contains(identity string) bool {
	_, ok := s[identity]
	return ok
}

// Minus returns the sorted identities of s that are not in other
func (s Set) Minus(other Set) []string {
	var out []string
	for id := range s {
		if !other.Contains(id) {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// Difference lists identities present in only one of two sets
type Difference struct {
	OnlyInRelease   []string
	OnlyInReference []string
}

// Empty reports whether both sets held the same identities
func (d Difference) Empty() bool {
	return len(d.OnlyInRelease) == 0 && len(d.OnlyInReference) == 0
}

// Diff compares the release packages against the reference packages
func Diff(release, reference Set) Difference {
	return Difference{
		OnlyInRelease:   release.Minus(reference),
		OnlyInReference: reference.Minus(release),
	}
}
