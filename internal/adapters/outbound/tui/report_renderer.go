package tui

import (
	"fmt"
	"strings"

	"github.com/ragicss/sizebudget/internal/domain"
)

// RenderRunResult renders a RunResult as the human-readable size report:
// a header, one block per artifact in declared order, and a summary line.
func RenderRunResult(run *domain.RunResult) string {
	var b strings.Builder

	title := run.Title
	if title == "" {
		title = "Artifacts"
	}
	b.WriteString(headerStyle.Render(fmt.Sprintf("📊 %s - Size Check", title)))
	b.WriteString("\n")
	if run.CommitHash != "" {
		b.WriteString(dimStyle.Render("commit " + shortHash(run.CommitHash)))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	for _, a := range run.Artifacts {
		renderArtifact(&b, a)
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(separatorLine))
	b.WriteString("\n")
	if run.Passed {
		b.WriteString(summaryPass.Render("✅ All size checks passed!"))
	} else {
		b.WriteString(summaryFail.Render("❌ Size budget exceeded!"))
	}
	b.WriteString("\n")

	return b.String()
}

func renderArtifact(b *strings.Builder, a domain.ArtifactResult) {
	if !a.Found || a.Measurement == nil {
		b.WriteString(warnStyle.Render("⚠️  "+a.Name) + skipStyle.Render(" - Not found (skipping)"))
		b.WriteString("\n")
		return
	}

	b.WriteString("\n")
	b.WriteString(titleStyle.Render(a.Name + ":"))
	b.WriteString("\n")
	fmt.Fprintf(b, "  Uncompressed: %s KB\n", domain.FormatKiB(a.Measurement.UncompressedBytes))
	fmt.Fprintf(b, "  Gzipped: %s KB\n", domain.FormatKiB(a.Measurement.CompressedBytes))

	for _, c := range a.Checks {
		b.WriteString("  " + renderCheck(c) + "\n")
	}
}

func renderCheck(c domain.Evaluation) string {
	if c.Passed() {
		line := fmt.Sprintf("✅ PASS: %s KB remaining", domain.FormatKiB(c.Headroom))
		if c.Metric == domain.MetricCompressed {
			line += " (gzipped)"
		}
		return passStyle.Render(line)
	}

	return failStyle.Render(fmt.Sprintf("❌ FAIL: %s size exceeds %sKB (%s KB over)",
		metricLabel(c.Metric),
		domain.FormatCeilingKiB(c.Ceiling),
		domain.FormatKiB(-c.Headroom),
	))
}

func metricLabel(m domain.Metric) string {
	switch m {
	case domain.MetricUncompressed:
		return "Uncompressed"
	case domain.MetricCompressed:
		return "Gzipped"
	default:
		return string(m)
	}
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}
