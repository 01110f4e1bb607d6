package domain

// ArtifactLocator resolves an expected filename inside an output directory.
// A missing file is reported through LocatedArtifact.Found, not an error;
// an error means the file exists but could not be read.
type ArtifactLocator interface {
	Locate(dir, name string) (LocatedArtifact, error)
}

// SizeMeasurer computes both sizes of an artifact's content.
type SizeMeasurer interface {
	Measure(content []byte) (Measurement, error)
}

// GitInfo provides repository metadata used to stamp reports.
type GitInfo interface {
	IsGitRepo(path string) bool
	CommitHash(path string) (string, error)
}
