package cli

import (
	"fmt"
	"strings"

	"github.com/Veraticus/oud-emporium/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// RenderProductTable lays products out one per row.
func RenderProductTable(products []model.Product) string {
	if len(products) == 0 {
		return SubtleStyle.Render("No products.")
	}

	header := []string{"ID", "NAME", "CATEGORY", "PRICE", "SCENT PROFILE"}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Name,
			string(p.Category),
			fmt.Sprintf("$%.2f", p.Price),
			strings.Join(p.ScentProfile, ", "),
		})
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	var b strings.Builder
	b.WriteString(renderRow(header, widths, TableHeaderStyle))
	b.WriteString("\n")
	for _, row := range rows {
		b.WriteString(renderRow(row, widths, TableCellStyle))
		b.WriteString("\n")
	}
	return b.String()
}

func renderRow(cells []string, widths []int, style lipgloss.Style) string {
	rendered := make([]string, len(cells))
	for i, cell := range cells {
		rendered[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
	}
	return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}

// RenderRecommendation formats a recommendation for the terminal.
func RenderRecommendation(product model.Product, rec model.Recommendation, note string) string {
	content := strings.Join([]string{
		BoldStyle.Render(product.Name) + "  " + SubtleStyle.Render(fmt.Sprintf("$%.2f", product.Price)),
		"",
		rec.Reasoning,
		"",
		InfoStyle.Render("Suggested occasion: ") + rec.OccasionSuggestion,
	}, "\n")
	if note != "" {
		content += "\n\n" + SubtleStyle.Render(note)
	}
	return RenderBox(OudIcon+" Your recommendation", content)
}
