package bookstall

import (
	"html"
	"strings"
)

// Column pairs a header label with the accessor that renders an item's cell.
type Column struct {
	Name  string
	Value func(Item) string
}

// ItemColumns is the declared column order used for both header and data rows.
var ItemColumns = []Column{
	{Name: "Name", Value: func(i Item) string { return i.Name }},
	{Name: "Category", Value: func(i Item) string { return i.Category }},
	{Name: "Price", Value: func(i Item) string { return FormatPrice(i.Price) }},
}

// ActionColumn is the trailing header cell appended after ItemColumns.
const ActionColumn = "Action"

// RenderTable renders items as an HTML table. The header row is always
// present, even when items is empty.
func RenderTable(items []Item) string {
	var b strings.Builder

	b.WriteString(`<table class="table">`)
	b.WriteString("<thead><tr>")
	for _, col := range ItemColumns {
		b.WriteString("<th>")
		b.WriteString(html.EscapeString(col.Name))
		b.WriteString("</th>")
	}
	b.WriteString("<th>" + ActionColumn + "</th>")
	b.WriteString("</tr></thead>")

	b.WriteString("<tbody>")
	for _, item := range items {
		b.WriteString("<tr>")
		for _, col := range ItemColumns {
			b.WriteString("<td>")
			b.WriteString(html.EscapeString(col.Value(item)))
			b.WriteString("</td>")
		}
		b.WriteString("</tr>")
	}
	b.WriteString("</tbody>")
	b.WriteString("</table>")

	return b.String()
}

const (
	bootstrapCSS = `<link href="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0-alpha3/dist/css/bootstrap.min.css" rel="stylesheet"
    integrity="sha384-KK94CHFLLe+nY2dmCWGMq91rCGa5gtU4mk92HdvYe+M/SXH301p5ILy+dN9+nJOZ" crossorigin="anonymous">`
	bootstrapJS = `<script src="https://cdn.jsdelivr.net/npm/bootstrap@5.3.0-alpha3/dist/js/bootstrap.bundle.min.js"
    integrity="sha384-ENjdO4Dr2bkBIFxQpeoTz1HIcje39Wm4jDKdf19U8gI4ddQ3GYNS7NTKfAdVQSZe" crossorigin="anonymous"></script>`
)

// RenderPage wraps an HTML body fragment in a full document. The title is
// escaped and used both as the document title and as the page heading; body
// is inserted verbatim.
func RenderPage(body, title string) string {
	t := html.EscapeString(title)

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	b.WriteString("    <meta charset=\"utf-8\" />\n")
	b.WriteString("    " + bootstrapCSS + "\n")
	b.WriteString("    <title>" + t + "</title>\n")
	b.WriteString("</head>\n<body>\n<div class=\"container\">\n")
	b.WriteString("<h2 class=\"d-flex justify-content-center\">" + t + "</h2>\n")
	b.WriteString("<div class=\"mt-5\">\n")
	b.WriteString("<a href=\"/Html/addUsers.html\" class=\"btn btn-primary\">Add User</a>\n")
	b.WriteString("</div>\n")
	b.WriteString(body)
	b.WriteString("\n    " + bootstrapJS + "\n")
	b.WriteString("</div>\n</body>\n</html>\n")

	return b.String()
}
