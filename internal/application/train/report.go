package train

import (
	"fmt"
	"strings"

	"github.com/pantrio/pantrio/internal/ports/inbound"
)

// FormatReport renders a training report as human-readable text for the
// CLI surface.
func FormatReport(report *inbound.TrainingReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Training report for %s\n", report.DataPath)
	fmt.Fprintf(&b, "  rows: %d, features: %d\n", report.Rows, report.FeatureCount)
	fmt.Fprintf(&b, "\nBest parameters\n")
	fmt.Fprintf(&b, "  forest size:        %d\n", report.BestForestSize)
	fmt.Fprintf(&b, "  features per split: %d\n", report.BestFeatures)
	fmt.Fprintf(&b, "\nCross-validation accuracy: %.4f (variance %.4f)\n", report.CVAccuracy, report.CVVariance)
	fmt.Fprintf(&b, "Test accuracy:             %.4f\n", report.TestAccuracy)

	if len(report.ClassMetrics) > 0 {
		fmt.Fprintf(&b, "\nPer-class metrics\n")
		fmt.Fprintf(&b, "  %-12s %10s %10s %10s\n", "class", "precision", "recall", "f1")
		for _, m := range report.ClassMetrics {
			fmt.Fprintf(&b, "  %-12s %10.4f %10.4f %10.4f\n", m.Class, m.Precision, m.Recall, m.F1)
		}
	}

	if report.Summary != "" {
		fmt.Fprintf(&b, "\n%s", report.Summary)
	}

	return b.String()
}
