// Package ingest loads people into the registry from CSV input with
// partial-success semantics: malformed or duplicate lines are reported to
// an injected ErrorReporter and skipped, and the load continues.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/lmoretti/vaxweek/pkg/core/model"
	"github.com/lmoretti/vaxweek/pkg/core/registry"
)

// expectedHeader is the required first line of a people CSV file.
const expectedHeader = "SSN,LAST,FIRST,YEAR"

var ssnPattern = regexp.MustCompile(`^[A-Z0-9]+$`)

// ErrorReporter receives one callback per rejected input line. Lines are
// 1-indexed and the header counts as line 1.
type ErrorReporter interface {
	LoadError(line int, raw string)
}

// ErrorReporterFunc adapts a function to the ErrorReporter interface.
type ErrorReporterFunc func(line int, raw string)

// LoadError calls f(line, raw).
func (f ErrorReporterFunc) LoadError(line int, raw string) {
	f(line, raw)
}

// LoadPeople reads CSV records formatted as "SSN,LAST,FIRST,YEAR" and adds
// each valid person to the registry. It returns the number of people added.
// A malformed header aborts the load; any other bad line (wrong field
// count, invalid SSN or year, duplicate SSN) is reported and skipped.
func LoadPeople(r io.Reader, reg *registry.Registry, reporter ErrorReporter) (int, error) {
	scanner := bufio.NewScanner(r)
	lineNo := 0

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return 0, fmt.Errorf("failed to read people CSV: %w", err)
		}
		return 0, fmt.Errorf("%w: empty people CSV", model.ErrInvalidConfiguration)
	}
	lineNo++

	header := strings.TrimSpace(scanner.Text())
	if header != expectedHeader {
		reporter.LoadError(lineNo, scanner.Text())
		return 0, fmt.Errorf("%w: people CSV header must be %q", model.ErrInvalidConfiguration, expectedHeader)
	}

	added := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		ssn, last, first, year, ok := parseLine(line)
		if !ok {
			reporter.LoadError(lineNo, line)
			continue
		}

		if err := reg.AddPerson(first, last, ssn, year); err != nil {
			reporter.LoadError(lineNo, line)
			continue
		}
		added++
	}
	if err := scanner.Err(); err != nil {
		return added, fmt.Errorf("failed to read people CSV: %w", err)
	}

	return added, nil
}

// parseLine splits and validates a single CSV record.
func parseLine(line string) (ssn, last, first string, year int, ok bool) {
	fields := strings.Split(strings.TrimRight(line, "\r"), ",")
	if len(fields) != 4 {
		return "", "", "", 0, false
	}

	ssn, last, first = fields[0], fields[1], fields[2]
	if !ssnPattern.MatchString(ssn) || last == "" || first == "" {
		return "", "", "", 0, false
	}

	year, err := strconv.Atoi(fields[3])
	if err != nil || year < 0 {
		return "", "", "", 0, false
	}

	return ssn, last, first, year, true
}
