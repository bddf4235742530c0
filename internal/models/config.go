package models

// Annotation formats accepted by CompareConfig.Annotations
const (
	AnnotationsAuto   = "auto"
	AnnotationsGitHub = "github"
	AnnotationsPlain  = "plain"
)

// CompareConfig contains configuration for a package comparison run
type CompareConfig struct {
	// Inputs
	PreviousDir string // Reference packages built from the previous release
	NextDir     string // Reference packages built from the candidate commit
	ReleaseDir  string // Packages that would actually be published

	// Comparison
	CheckSymbolPackages bool // Also compare the .snupkg companion of every package

	// Reporting
	StrictNames bool   // Treat malformed package file names as errors
	Annotations string // auto, github or plain
}
