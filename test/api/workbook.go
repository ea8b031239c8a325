/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package api

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/onsi/ginkgo/v2/types"
	"github.com/xuri/excelize/v2"
)

const (
	workbookSheet = "Sheet1"

	patternType  = "pattern"
	patternValue = 1
	errorBgColor = "FF5900"

	defaultColumnWidth = 24
	contentColumnWidth = 100
)

//nolint:gochecknoglobals
var workbookHeaders = []string{"Spec", "State", "Entry", "Content"}

// WriteWorkbook writes one row per request attachment recorded during the
// suite, failed specs highlighted, followed by a summary.
func WriteWorkbook(path string, report types.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	errorStyle, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    patternType,
			Pattern: patternValue,
			Color:   []string{errorBgColor},
		},
	})
	if err != nil {
		return fmt.Errorf("creating style: %w", err)
	}

	if err := f.SetColWidth(workbookSheet, "A", "C", defaultColumnWidth); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	if err := f.SetColWidth(workbookSheet, "D", "D", contentColumnWidth); err != nil {
		return fmt.Errorf("setting column width: %w", err)
	}

	for i, header := range workbookHeaders {
		if err := f.SetCellValue(workbookSheet, fmt.Sprintf("%c1", 'A'+i), header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	row := 2

	for _, spec := range specs(report) {
		for _, entry := range spec.ReportEntries {
			cells := []string{spec.FullText(), spec.State.String(), entry.Name, entry.Value.String()}

			for i, cell := range cells {
				name := fmt.Sprintf("%c%d", 'A'+i, row)

				if err := f.SetCellValue(workbookSheet, name, cell); err != nil {
					return fmt.Errorf("writing cell %s: %w", name, err)
				}

				if spec.State.Is(types.SpecStateFailureStates) {
					if err := f.SetCellStyle(workbookSheet, name, name, errorStyle); err != nil {
						return fmt.Errorf("styling cell %s: %w", name, err)
					}
				}
			}

			row++
		}
	}

	passed, failed := tally(report)

	summary := []string{
		"Summary",
		fmt.Sprintf("Duration: %s", report.RunTime),
		fmt.Sprintf("Specs: %d", passed+failed),
		fmt.Sprintf("Failed: %d", failed),
	}

	for i, line := range summary {
		name := fmt.Sprintf("A%d", row+1+i)

		if err := f.SetCellValue(workbookSheet, name, line); err != nil {
			return fmt.Errorf("writing summary: %w", err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}

	return nil
}

// PrintSummary prints a short pass/fail tally.
func PrintSummary(w io.Writer, report types.Report) {
	passed, failed := tally(report)

	fmt.Fprintf(w, "\nReqRes API summary\n")
	fmt.Fprintf(w, "Duration: %s\n", report.RunTime)
	fmt.Fprintf(w, "Specs: %d\n", passed+failed)

	if failed > 0 {
		color.New(color.FgRed).Fprintf(w, "Failed: %d\n", failed)
	} else {
		color.New(color.FgGreen).Fprintf(w, "Failed: %d\n", failed)
	}
}

// specs returns the reports of It nodes that actually ran.
func specs(report types.Report) types.SpecReports {
	return report.SpecReports.WithLeafNodeType(types.NodeTypeIt).WithState(types.SpecStatePassed | types.SpecStateFailureStates)
}

func tally(report types.Report) (int, int) {
	ran := specs(report)

	failed := ran.CountWithState(types.SpecStateFailureStates)

	return len(ran) - failed, failed
}
