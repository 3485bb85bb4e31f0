package services

import (
	"fmt"
	"io"

	json "github.com/goccy/go-json"
)

// WriteReport writes a plan result as indented JSON.
func WriteReport(w io.Writer, result *PlanResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode plan report: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write plan report: %w", err)
	}
	return nil
}
