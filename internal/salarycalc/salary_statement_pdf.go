package salarycalc

import (
	"bytes"
	"fmt"
	"strings"
	"time"
)

const statementMaxLines = 52

func statementLines(calc *SalaryCalculation, teacherName string) []string {
	if teacherName == "" {
		teacherName = calc.TeacherID.String()
	}

	lines := []string{
		"Teacher Salary Statement",
		fmt.Sprintf("Reference: %s", calc.ReferenceNumber),
		fmt.Sprintf("Teacher: %s", teacherName),
		fmt.Sprintf("Academic period: %s", calc.AcademicPeriod),
		fmt.Sprintf("Period: %s - %s", calc.PeriodStart.Format(dateLayout), calc.PeriodEnd.Format(dateLayout)),
		fmt.Sprintf("Status: %s", calc.Status),
		"",
		"Classes",
	}

	for _, item := range calc.Items {
		lines = append(lines, fmt.Sprintf("  %s: %d lesson(s) x %s = %s",
			item.ClassName, item.LessonsCount, item.RateApplied.StringFixed(2), item.Amount.StringFixed(2)))
	}
	if len(calc.Items) == 0 {
		lines = append(lines, "  (none)")
	}

	if len(calc.Adjustments) > 0 {
		lines = append(lines, "", "Adjustments")
		for _, adj := range calc.Adjustments {
			lines = append(lines, fmt.Sprintf("  %s %s: %s", adj.AdjustmentType, adj.Description, adj.SignedAmount().StringFixed(2)))
		}
	}

	lines = append(lines,
		"",
		fmt.Sprintf("Base salary: %s", calc.BaseSalaryAmount.StringFixed(2)),
		fmt.Sprintf("Calculated amount: %s", calc.CalculatedAmount.StringFixed(2)),
	)
	if calc.ApprovedAmount != nil {
		lines = append(lines, fmt.Sprintf("Approved amount: %s", calc.ApprovedAmount.StringFixed(2)))
	}
	if calc.ApprovedAt != nil {
		lines = append(lines, fmt.Sprintf("Approved at: %s", calc.ApprovedAt.Format(time.RFC3339)))
	}

	if len(lines) > statementMaxLines {
		lines = append(lines[:statementMaxLines-1], "...")
	}
	return lines
}

func buildStatementPDF(lines []string) []byte {
	if len(lines) == 0 {
		lines = []string{"Salary Statement"}
	}

	var content strings.Builder
	content.WriteString("BT\n/F1 11 Tf\n14 TL\n50 800 Td\n")
	for i, line := range lines {
		escaped := pdfEscape(line)
		if i == 0 {
			content.WriteString(fmt.Sprintf("(%s) Tj\n", escaped))
			continue
		}
		content.WriteString(fmt.Sprintf("T* (%s) Tj\n", escaped))
	}
	content.WriteString("ET")

	stream := content.String()
	objects := []string{
		"1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n",
		"2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n",
		"3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 595 842] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>\nendobj\n",
		"4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n",
		fmt.Sprintf("5 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(stream), stream),
	}

	var out bytes.Buffer
	out.WriteString("%PDF-1.4\n")
	offsets := make([]int, 0, len(objects)+1)
	offsets = append(offsets, 0)

	for _, obj := range objects {
		offsets = append(offsets, out.Len())
		out.WriteString(obj)
	}

	xrefStart := out.Len()
	out.WriteString(fmt.Sprintf("xref\n0 %d\n", len(offsets)))
	out.WriteString("0000000000 65535 f \n")
	for i := 1; i < len(offsets); i++ {
		out.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	out.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", len(offsets), xrefStart))

	return out.Bytes()
}

// Helvetica in a Type1 dictionary only covers Latin-1; anything else is replaced.
func pdfEscape(v string) string {
	var b strings.Builder
	for _, r := range v {
		switch {
		case r == '\\' || r == '(' || r == ')':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r < 0x20 || r > 0x7e:
			b.WriteRune('?')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func statementFilename(calc *SalaryCalculation) string {
	return fmt.Sprintf("salary-statement-%s.pdf", calc.ReferenceNumber)
}
