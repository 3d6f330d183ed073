package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fadhlanhapp/trekshare-backend/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExcelService_ExportTrekQuotes(t *testing.T) {
	service := NewExcelService(seededStore())

	f, filename, err := service.ExportTrekQuotes(context.Background(), "ebc", 2, 6)
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, strings.HasPrefix(filename, "Everest_Base_Camp_Quotes_"))
	assert.Equal(t, []string{"Quotes", "Cost Sheet", "Itinerary"}, f.GetSheetList())

	header, err := f.GetCellValue("Quotes", "E1")
	require.NoError(t, err)
	assert.Equal(t, "Guide", header)

	size, err := f.GetCellValue("Quotes", "A3")
	require.NoError(t, err)
	assert.Equal(t, "3", size)

	total, err := f.GetCellValue("Quotes", "B3")
	require.NoError(t, err)
	assert.Equal(t, "614.09", total)

	rows, err := f.GetRows("Quotes")
	require.NoError(t, err)
	assert.Len(t, rows, 6)

	title, err := f.GetCellValue("Itinerary", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Fly to Lukla", title)

	allocation, err := f.GetCellValue("Cost Sheet", "B2")
	require.NoError(t, err)
	assert.Equal(t, "Shared by group", allocation)
}

func TestExcelService_UnknownTrek(t *testing.T) {
	service := NewExcelService(seededStore())

	_, _, err := service.ExportTrekQuotes(context.Background(), "k2", 0, 0)

	assert.True(t, errors.Is(err, utils.ErrNotFound))
}
