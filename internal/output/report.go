package output

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/retirmentaudit/retirement-audit-launch/internal/config"
	"github.com/retirmentaudit/retirement-audit-launch/internal/domain"
	"gopkg.in/yaml.v3"
)

// ErrUnsupportedFormat is returned for report formats with no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")

// GenerateReport writes the result in the named format (or "all") to dir and returns the files written.
func GenerateReport(result *domain.ProjectionResult, format, dir string) ([]string, error) {
	if strings.EqualFold(strings.TrimSpace(format), "all") {
		var files []string
		for _, name := range []string{"console", "csv", "accounts-csv", "json", "html"} {
			file, err := WriteFormatted(GetFormatterByName(name), result, dir, Extension(name))
			if err != nil {
				return files, fmt.Errorf("%s report: %w", name, err)
			}
			files = append(files, file)
		}
		return files, nil
	}

	f, err := Lookup(format)
	if err != nil {
		return nil, err
	}
	file, err := WriteFormatted(f, result, dir, Extension(f.Name()))
	if err != nil {
		return nil, err
	}
	return []string{file}, nil
}

// Lookup resolves a format name or alias, enriching the error with the available choices.
func Lookup(format string) (Formatter, error) {
	if f := GetFormatterByName(format); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}

// SaveConfiguration writes an input document as YAML.
func SaveConfiguration(doc *config.InputDocument, filename string) error {
	b, err := yaml.Marshal(doc)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}
