package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"time"

	"menuflow/internal/domain"
)

// UTF-8 BOM bytes for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row (14 columns).
var columns = []string{
	"Name",
	"Category",
	"Item Type",
	"Price",
	"Description",
	"Ingredients",
	"Allergens",
	"Dietary Flags",
	"Spirit Type",
	"ABV",
	"Vintage",
	"Grapes",
	"Region",
	"Created At",
}

// Writer wraps csv.Writer for exporting menu items as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the 14-column header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteItems converts a batch of menu items to CSV rows and writes them.
func (w *Writer) WriteItems(items []domain.ExistingMenuItem) error {
	for i := range items {
		row := itemToRow(&items[i])
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}

// itemToRow converts a single item to a 14-element string slice. Facet
// columns are filled only for the item's own type; the rest stay empty.
func itemToRow(item *domain.ExistingMenuItem) []string {
	row := make([]string, len(columns))

	row[0] = item.Name
	row[1] = item.Category
	row[2] = string(item.ItemType)
	row[3] = formatPrice(item.Price)
	row[4] = item.Description
	row[13] = item.CreatedAt.Format(time.RFC3339)

	switch {
	case item.Food != nil:
		row[5] = strings.Join(item.Food.Ingredients, "; ")
		row[6] = strings.Join(item.Food.Allergens, "; ")
		row[7] = strings.Join(item.Food.DietaryFlags, "; ")
	case item.Beverage != nil:
		row[5] = strings.Join(item.Beverage.Ingredients, "; ")
		row[8] = item.Beverage.SpiritType
		row[9] = formatABV(item.Beverage.ABV)
	case item.Wine != nil:
		row[10] = formatVintage(item.Wine.Vintage)
		row[11] = strings.Join(item.Wine.Grapes, "; ")
		row[12] = item.Wine.Region
	}

	return row
}

func formatPrice(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 2, 64)
}

func formatABV(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', 1, 64) + "%"
}

func formatVintage(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

// nonAlphanumeric matches characters that are not alphanumeric, hyphen, or underscore.
var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9_-]+`)

// multiUnderscore matches consecutive underscores.
var multiUnderscore = regexp.MustCompile(`_{2,}`)

// SanitizeFilename cleans a menu name for use in Content-Disposition.
// Replaces non-alphanumeric chars (except - _) with _, collapses consecutive
// underscores, and truncates to 100 chars.
func SanitizeFilename(name string) string {
	s := nonAlphanumeric.ReplaceAllString(name, "_")
	s = multiUnderscore.ReplaceAllString(s, "_")
	s = strings.Trim(s, "_")
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// BuildFilename returns a sanitized filename for Content-Disposition header.
// Format: {sanitized_menu_name}_{YYYY-MM-DD}.csv
func BuildFilename(menuName string) string {
	sanitized := SanitizeFilename(menuName)
	date := time.Now().Format("2006-01-02")
	return fmt.Sprintf("%s_%s.csv", sanitized, date)
}
