package models

import (
	"path/filepath"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Package file extensions
const (
	PackageExtension       = ".nupkg"
	SymbolPackageExtension = ".snupkg"
)

// PackageFile represents a package archive found in an artifact directory
type PackageFile struct {
	// FileName is the base name, e.g. Foo.Bar.1.2.3.nupkg
	FileName string
	// Path is the full path of the archive
	Path string
	// Identity is the package name with the version and extension stripped.
	// It falls back to FileName when the name could not be parsed.
	Identity string
	// Version is nil when the name could not be parsed
	Version *semver.Version
	Size    int64
	// NameErr is set when FileName did not match the expected format
	NameErr error
}

// SymbolPath returns the path of the companion symbol package by replacing
// the extension of path
func SymbolPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + SymbolPackageExtension
}
