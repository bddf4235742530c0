// Package annotate reports warnings and errors for a build system. In
// GitHub Actions they are emitted as workflow commands so they show up on
// the run summary; elsewhere they go to the log.
package annotate

import (
	"fmt"
	"io"

	"github.com/ralt/nupkgcmp/internal/models"
	"github.com/sethvargo/go-githubactions"
	"github.com/sirupsen/logrus"
)

// Format selects how annotations are written
type Format int

const (
	FormatPlain Format = iota
	FormatGitHub
)

// ParseFormat resolves an annotation format name. "auto" picks GitHub when
// running inside GitHub Actions.
func ParseFormat(name string) (Format, error) {
	switch name {
	case models.AnnotationsAuto, "":
		if githubactions.New().Getenv("GITHUB_ACTIONS") == "true" {
			return FormatGitHub, nil
		}
		return FormatPlain, nil
	case models.AnnotationsGitHub:
		return FormatGitHub, nil
	case models.AnnotationsPlain:
		return FormatPlain, nil
	default:
		return FormatPlain, fmt.Errorf("unknown annotation format %q", name)
	}
}

// Annotator collects errors over a whole run so every problem is reported
// before the run fails
type Annotator struct {
	format Format
	gha    *githubactions.Action
	log    logrus.FieldLogger

	errors   int
	warnings int
}

// New creates an annotator. GitHub workflow commands are written to out,
// plain annotations go to log.
func New(format Format, out io.Writer, log logrus.FieldLogger) *Annotator {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Annotator{
		format: format,
		gha:    githubactions.New(githubactions.WithWriter(out)),
		log:    log,
	}
}

// Errorf records an error
func (a *Annotator) Errorf(format string, args ...interface{}) {
	a.errors++

	if a.format == FormatGitHub {
		a.gha.Errorf(format, args...)
		return
	}
	a.log.Errorf(format, args...)
}

// Warningf records a warning
func (a *Annotator) Warningf(format string, args ...interface{}) {
	a.warnings++

	if a.format == FormatGitHub {
		a.gha.Warningf(format, args...)
		return
	}
	a.log.Warnf(format, args...)
}

// Errors returns the number of errors recorded so far
func (a *Annotator) Errors() int {
	return a.errors
}

// Warnings returns the number of warnings recorded so far
func (a *Annotator) Warnings() int {
	return a.warnings
}

// Err returns an error when any error was recorded
func (a *Annotator) Err() error {
	if a.errors == 0 {
		return nil
	}
	return &models.CompareError{
		Type: models.ErrAnnotated,
		Err:  fmt.Errorf("%d error(s) reported", a.errors),
	}
}
