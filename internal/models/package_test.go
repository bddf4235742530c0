package models

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"next/Foo.1.2.3.nupkg", "next/Foo.1.2.3.snupkg"},
		{"/abs/Bonsai.Core.2.8.0-preview1.nupkg", "/abs/Bonsai.Core.2.8.0-preview1.snupkg"},
		{"noext", "noext.snupkg"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SymbolPath(tt.path), tt.path)
	}
}

func TestCompareErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := fmt.Errorf("outer: %w", &CompareError{Type: ErrArchiveRead, Package: "Foo.1.0.0.nupkg", Err: inner})

	var cerr *CompareError
	assert.True(t, errors.As(err, &cerr))
	assert.Equal(t, ErrArchiveRead, cerr.Type)
	assert.ErrorIs(t, err, inner)
	assert.Equal(t, "[ArchiveRead] Foo.1.0.0.nupkg: boom", cerr.Error())
	assert.Equal(t, "[PackageSet] boom", (&CompareError{Type: ErrPackageSet, Err: inner}).Error())
}
