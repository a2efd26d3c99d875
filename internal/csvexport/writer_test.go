package csvexport_test

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"menuflow/internal/csvexport"
	"menuflow/internal/domain"
)

func writeRows(t *testing.T, items []domain.ExistingMenuItem) [][]string {
	t.Helper()
	var buf bytes.Buffer
	w := csvexport.NewWriter(&buf)
	require.NoError(t, w.WriteHeader())
	require.NoError(t, w.WriteItems(items))
	w.Flush()
	require.NoError(t, w.Error())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	return records
}

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }

func TestWriter_Header(t *testing.T) {
	records := writeRows(t, nil)
	require.Len(t, records, 1)
	assert.Equal(t, []string{
		"Name", "Category", "Item Type", "Price", "Description",
		"Ingredients", "Allergens", "Dietary Flags",
		"Spirit Type", "ABV",
		"Vintage", "Grapes", "Region",
		"Created At",
	}, records[0])
}

func TestWriter_FoodRow(t *testing.T) {
	records := writeRows(t, []domain.ExistingMenuItem{{
		Name:        "Pad Thai",
		Category:    "Mains",
		ItemType:    domain.ItemTypeFood,
		Price:       fptr(12.5),
		Description: "rice noodles, peanuts, tofu",
		Food: &domain.FoodFacets{
			Ingredients:  []string{"rice noodles", "peanuts", "tofu"},
			Allergens:    []string{"peanuts", "soy"},
			DietaryFlags: []string{"vegetarian"},
		},
		CreatedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}})

	require.Len(t, records, 2)
	row := records[1]
	assert.Equal(t, "Pad Thai", row[0])
	assert.Equal(t, "Mains", row[1])
	assert.Equal(t, "food", row[2])
	assert.Equal(t, "12.50", row[3])
	assert.Equal(t, "rice noodles; peanuts; tofu", row[5])
	assert.Equal(t, "peanuts; soy", row[6])
	assert.Equal(t, "vegetarian", row[7])
	// beverage and wine columns stay empty for a food item
	assert.Empty(t, row[8])
	assert.Empty(t, row[10])
	assert.Equal(t, "2026-08-01T12:00:00Z", row[13])
}

func TestWriter_BeverageRow(t *testing.T) {
	records := writeRows(t, []domain.ExistingMenuItem{{
		Name:     "Punk IPA",
		ItemType: domain.ItemTypeBeverage,
		Beverage: &domain.BeverageFacets{
			SpiritType: "ipa",
			ABV:        fptr(5.6),
		},
	}})

	row := records[1]
	assert.Equal(t, "ipa", row[8])
	assert.Equal(t, "5.6%", row[9])
	assert.Empty(t, row[6])
	assert.Empty(t, row[11])
}

func TestWriter_WineRow(t *testing.T) {
	records := writeRows(t, []domain.ExistingMenuItem{{
		Name:     "Cloudy Bay",
		ItemType: domain.ItemTypeWine,
		Wine: &domain.WineFacets{
			Vintage: iptr(2021),
			Grapes:  []string{"sauvignon blanc"},
			Region:  "Marlborough",
		},
	}})

	row := records[1]
	assert.Equal(t, "2021", row[10])
	assert.Equal(t, "sauvignon blanc", row[11])
	assert.Equal(t, "Marlborough", row[12])
	assert.Empty(t, row[8])
}

func TestWriter_NilOptionalsStayEmpty(t *testing.T) {
	records := writeRows(t, []domain.ExistingMenuItem{{
		Name:     "Mystery Dish",
		ItemType: domain.ItemTypeFood,
	}})

	row := records[1]
	assert.Empty(t, row[3])
	assert.Empty(t, row[5])
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Summer Menu", "Summer_Menu"},
		{"Café / Bar (2026)", "Caf_Bar_2026"},
		{"already_clean-name", "already_clean-name"},
		{"___wrapped___", "wrapped"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, csvexport.SanitizeFilename(tc.in), "input %q", tc.in)
	}
}

func TestBuildFilename(t *testing.T) {
	name := csvexport.BuildFilename("Summer Menu")
	assert.Regexp(t, `^Summer_Menu_\d{4}-\d{2}-\d{2}\.csv$`, name)
}
