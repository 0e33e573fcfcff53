package history

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
)

// WriteReport renders the most recent runs as a PDF in the current
// directory and returns the absolute path of the file.
func WriteReport(s *Store, limit int) (string, error) {
	runs, err := s.Recent(limit)
	if err != nil {
		return "", err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Countdown Run History")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	if len(runs) == 0 {
		pdf.Cell(0, 8, "No recorded runs.")
		pdf.Ln(8)
	}

	expired := 0
	for _, r := range runs {
		mark := "[x]"
		if r.Outcome == OutcomeExpired {
			expired++
		} else {
			mark = "[ ]"
		}
		line := fmt.Sprintf("%s  %s   set %s   ran %s   (%s)",
			mark,
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			formatSeconds(r.ConfiguredSeconds),
			formatSeconds(int(r.FinishedAt.Sub(r.StartedAt).Seconds())),
			r.Outcome,
		)
		pdf.Cell(0, 8, line)
		pdf.Ln(6)
	}

	pdf.Ln(10)
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Runs completed to expiry: %d of %d", expired, len(runs)))

	filename := fmt.Sprintf("countdown_report_%s.pdf", time.Now().Format("2006-01-02"))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", err
	}
	return filepath.Abs(filename)
}

func formatSeconds(total int) string {
	if total < 0 {
		total = 0
	}
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
