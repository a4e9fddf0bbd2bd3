package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rpgo/fire-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// GenerateReport renders the report in the named format (or alias) and
// writes it to w.
func GenerateReport(report *domain.PlanReport, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("formatting %s report: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// GenerateReportFile renders the report into a timestamped file in dir and
// returns its path.
func GenerateReportFile(report *domain.PlanReport, format, dir string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, report, dir, ExtensionFor(format))
}

// SaveConfiguration writes a plan to a YAML file.
func SaveConfiguration(config *domain.Configuration, filename string) error {
	b, err := yaml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0o644)
}
