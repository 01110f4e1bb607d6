package application

import (
	"fmt"
	"log/slog"

	"github.com/ragicss/sizebudget/internal/domain"
)

// CheckService runs the size check pipeline:
// locate -> measure -> evaluate, once per declared artifact, then fold.
type CheckService struct {
	locator  domain.ArtifactLocator
	measurer domain.SizeMeasurer
	logger   *slog.Logger
}

func NewCheckService(
	locator domain.ArtifactLocator,
	measurer domain.SizeMeasurer,
	logger *slog.Logger,
) *CheckService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CheckService{
		locator:  locator,
		measurer: measurer,
		logger:   logger,
	}
}

// Run checks every artifact in cfg against its budget. Missing artifacts are
// recorded as skipped. An unreadable artifact aborts the run with an error
// and no partial result.
func (s *CheckService) Run(cfg domain.Config) (*domain.RunResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	results := make([]domain.ArtifactResult, 0, len(cfg.Artifacts))
	for _, spec := range cfg.Artifacts {
		r, err := s.checkArtifact(cfg, spec)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}

	return &domain.RunResult{
		Title:     cfg.Title,
		OutputDir: cfg.OutputDir,
		Artifacts: results,
		Passed:    domain.AllPassed(results),
	}, nil
}

func (s *CheckService) checkArtifact(cfg domain.Config, spec domain.ArtifactSpec) (domain.ArtifactResult, error) {
	located, err := s.locator.Locate(cfg.OutputDir, spec.Name)
	if err != nil {
		return domain.ArtifactResult{}, fmt.Errorf("locating %s: %w", spec.Name, err)
	}

	result := domain.ArtifactResult{Name: spec.Name, Path: located.Path}
	if !located.Found {
		s.logger.Debug("artifact not found", "artifact", spec.Name, "path", located.Path)
		return result, nil
	}

	m, err := s.measurer.Measure(located.Content)
	if err != nil {
		return domain.ArtifactResult{}, fmt.Errorf("measuring %s: %w", spec.Name, err)
	}

	budget := cfg.BudgetFor(spec)
	result.Found = true
	result.Measurement = &m
	result.Checks = domain.EvaluateMeasurement(m, budget)

	s.logger.Debug("artifact measured",
		"artifact", spec.Name,
		"uncompressed", m.UncompressedBytes,
		"compressed", m.CompressedBytes,
		"digest", m.Digest,
		"passed", result.Passed(),
	)
	return result, nil
}
