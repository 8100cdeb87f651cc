// Package coverage reads the report files emitted by external test
// runners. Two formats are understood: Cobertura-style XML (pytest-cov's
// --cov-report=xml) and coverage.py JSON (--cov-report=json).
package coverage

import (
	"encoding/xml"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

// Report is the summary extracted from a coverage report file.
type Report struct {
	// Percent is the covered-line percentage, 0-100.
	Percent float64
}

// Meets reports whether the coverage satisfies the given minimum percentage.
func (r Report) Meets(min float64) bool {
	return r.Percent >= min
}

// Read loads and parses the report at path. The format is chosen by file
// extension: .json is coverage.py JSON, anything else is Cobertura XML.
func Read(fs afero.Fs, path string) (Report, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return Report{}, fmt.Errorf("failed to read coverage report %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".json") {
		return parseJSON(data)
	}
	return parseXML(data)
}

func parseXML(data []byte) (Report, error) {
	var doc struct {
		XMLName  xml.Name `xml:"coverage"`
		LineRate float64  `xml:"line-rate,attr"`
	}
	if err := xml.Unmarshal(data, &doc); err != nil {
		return Report{}, fmt.Errorf("failed to parse coverage XML: %w", err)
	}
	if doc.LineRate < 0 || doc.LineRate > 1 {
		return Report{}, fmt.Errorf("coverage XML has invalid line-rate %g", doc.LineRate)
	}
	return Report{Percent: doc.LineRate * 100}, nil
}

func parseJSON(data []byte) (Report, error) {
	if !gjson.ValidBytes(data) {
		return Report{}, errors.New("coverage report is not valid JSON")
	}
	v := gjson.GetBytes(data, "totals.percent_covered")
	if !v.Exists() {
		return Report{}, errors.New("coverage JSON is missing totals.percent_covered")
	}
	return Report{Percent: v.Float()}, nil
}
