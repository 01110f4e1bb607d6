package domain

import "errors"

// ErrBudgetExceeded is returned by the CLI when at least one artifact is over
// one of its ceilings. It carries no detail; the report already shows which.
var ErrBudgetExceeded = errors.New("size budget exceeded")

// Metric names one of the two size measurements taken per artifact.
type Metric string

const (
	MetricUncompressed Metric = "uncompressed"
	MetricCompressed   Metric = "gzipped"
)

// Verdict is the outcome of comparing one measurement against its ceiling.
type Verdict string

const (
	VerdictPass Verdict = "pass"
	VerdictFail Verdict = "fail"
)

// LocatedArtifact is the Locator's answer for one expected filename.
// Content is only set when Found is true and is read exactly once.
type LocatedArtifact struct {
	Name    string
	Path    string
	Found   bool
	Content []byte
}

// Measurement holds both sizes of one artifact, taken from the same bytes.
type Measurement struct {
	UncompressedBytes int64  `json:"uncompressed_bytes" yaml:"uncompressed_bytes"`
	CompressedBytes   int64  `json:"compressed_bytes"   yaml:"compressed_bytes"`
	Digest            string `json:"digest,omitempty"   yaml:"digest,omitempty"`
}

// Evaluation is a single metric verdict. Headroom is Ceiling minus Measured
// and goes negative when the ceiling is exceeded.
type Evaluation struct {
	Metric   Metric  `json:"metric"   yaml:"metric"`
	Measured int64   `json:"measured" yaml:"measured"`
	Ceiling  int64   `json:"ceiling"  yaml:"ceiling"`
	Headroom int64   `json:"headroom" yaml:"headroom"`
	Verdict  Verdict `json:"verdict"  yaml:"verdict"`
}

func (e Evaluation) Passed() bool { return e.Verdict == VerdictPass }

// ArtifactResult is everything known about one expected artifact after a run.
// Missing artifacts have Found=false and no measurement or checks.
type ArtifactResult struct {
	Name        string       `json:"name"                  yaml:"name"`
	Path        string       `json:"path"                  yaml:"path"`
	Found       bool         `json:"found"                 yaml:"found"`
	Measurement *Measurement `json:"measurement,omitempty" yaml:"measurement,omitempty"`
	Checks      []Evaluation `json:"checks,omitempty"      yaml:"checks,omitempty"`
}

// Passed reports whether every check on this artifact passed. A skipped
// artifact has no checks and therefore passes.
func (r ArtifactResult) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed() {
			return false
		}
	}
	return true
}

// RunResult is the outcome of one check run, in declared artifact order.
type RunResult struct {
	Title      string           `json:"title"                 yaml:"title"`
	OutputDir  string           `json:"output_dir"            yaml:"output_dir"`
	CommitHash string           `json:"commit_hash,omitempty" yaml:"commit_hash,omitempty"`
	Artifacts  []ArtifactResult `json:"artifacts"             yaml:"artifacts"`
	Passed     bool             `json:"passed"                yaml:"passed"`
}

// AllPassed folds per-artifact results with logical AND. An empty slice passes.
func AllPassed(results []ArtifactResult) bool {
	passed := true
	for _, r := range results {
		passed = passed && r.Passed()
	}
	return passed
}

// Failures returns the artifacts with at least one failing check.
func (r *RunResult) Failures() []ArtifactResult {
	var failed []ArtifactResult
	for _, a := range r.Artifacts {
		if !a.Passed() {
			failed = append(failed, a)
		}
	}
	return failed
}

// Skipped returns the names of artifacts that were not found.
func (r *RunResult) Skipped() []string {
	var names []string
	for _, a := range r.Artifacts {
		if !a.Found {
			names = append(names, a.Name)
		}
	}
	return names
}
