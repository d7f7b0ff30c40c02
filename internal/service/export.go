// File: internal/service/export.go
package service

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"wellness-journal/internal/model"
)

const (
	exportTitle      = "Mental Wellness Journal"
	exportDateLayout = "2006-01-02 15:04:05"
)

// RenderJournalPDF 將 entries（新到舊）輸出為單一 PDF 文件
// 每筆依序列出 Date、Mood、Gratitude、Entry，超出頁面由 fpdf 自動換頁
func RenderJournalPDF(entries []model.Entry) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(200, 10, exportTitle, "", 1, "C", false, 0, "")

	for _, e := range entries {
		block := fmt.Sprintf("Date: %s\nMood: %s\nGratitude: %s\nEntry: %s\n\n",
			e.Date.Format(exportDateLayout), e.Mood, e.Gratitude, e.Content)
		pdf.MultiCell(0, 10, block, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
