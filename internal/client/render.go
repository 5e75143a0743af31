// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-book-lending/models"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

func renderBooks(w io.Writer, books []models.Book) {
	if len(books) == 0 {
		fmt.Fprintln(w, helpStyle.Render("no books"))
		return
	}

	t := newTable("ID", "Title", "Author", "Category", "Rating", "Quantity")
	for _, b := range books {
		t.Row(b.ID, b.Title, b.AuthorName, b.Category, formatRating(b.Rating), formatQuantity(b.Quantity))
	}
	fmt.Fprintln(w, t.Render())
}

func renderBook(w io.Writer, b models.Book) {
	fmt.Fprintln(w, titleStyle.Render(b.Title))

	t := newTable("Field", "Value")
	t.Row("id", b.ID)
	t.Row("author", b.AuthorName)
	t.Row("category", b.Category)
	t.Row("rating", formatRating(b.Rating))
	t.Row("quantity", formatQuantity(b.Quantity))
	t.Row("cover", b.CoverImage)
	for _, key := range slices.Sorted(maps.Keys(b.Attributes)) {
		t.Row(key, string(b.Attributes[key]))
	}
	fmt.Fprintln(w, t.Render())
}

func renderBorrows(w io.Writer, records []models.BorrowRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, helpStyle.Render("no borrowed books"))
		return
	}

	t := newTable("Record", "Book", "Email")
	for _, r := range records {
		t.Row(r.ID, r.BookID, r.Email)
	}
	fmt.Fprintln(w, t.Render())
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// formatQuantity renders a missing quantity as "-".
func formatQuantity(q *int64) string {
	if q == nil {
		return "-"
	}
	return strconv.FormatInt(*q, 10)
}
