package seed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/ssantos/wordkids/internal/catalog"
)

// Expected column order in a vocabulary spreadsheet. Row 1 is a header.
//
//	A category | B english | C portuguese | D image_url | E pronunciation | F audio_text | G order
const excelColumns = 7

// ParseExcel reads vocabulary rows from a spreadsheet. Malformed rows
// are reported, not fatal; valid rows around them still import.
func ParseExcel(path, sheet string) ([]catalog.LearningItem, []string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("seed excel: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("seed excel: sheet %q: %w", sheet, err)
	}

	var (
		items    []catalog.LearningItem
		problems []string
	)
	for i, row := range rows {
		if i == 0 {
			continue // header
		}
		item, err := parseExcelRow(row)
		if err != nil {
			problems = append(problems, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		if item.OrderIndex == 0 {
			item.OrderIndex = len(items) + 1
		}
		items = append(items, item)
	}
	return items, problems, nil
}

func parseExcelRow(row []string) (catalog.LearningItem, error) {
	cell := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	key := catalog.CategoryKey(strings.ToLower(cell(0)))
	if catalog.CategoryByKey(key) == nil {
		return catalog.LearningItem{}, fmt.Errorf("unknown category %q", cell(0))
	}
	english := cell(1)
	portuguese := cell(2)
	if english == "" || portuguese == "" {
		return catalog.LearningItem{}, fmt.Errorf("missing word pair")
	}

	item := catalog.LearningItem{
		Category:       key,
		EnglishWord:    english,
		PortugueseWord: portuguese,
		ImageURL:       cell(3),
		Pronunciation:  cell(4),
		AudioText:      cell(5),
	}
	if raw := cell(6); raw != "" {
		order, err := strconv.Atoi(raw)
		if err != nil || order < 0 {
			return catalog.LearningItem{}, fmt.Errorf("bad order %q", raw)
		}
		item.OrderIndex = order
	}
	return item, nil
}
