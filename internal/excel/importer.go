package excel

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/example/kanastudy/internal/kana"
	"github.com/example/kanastudy/pkg/models"
)

// ImportConfig defines how a custom word list is read from a file.
type ImportConfig struct {
	FilePath       string // Path to the Excel or CSV file
	KanaColumn     string // Column with the kana text
	RomajiColumn   string // Column with the romanization
	MeaningColumn  string // Column with the English meaning
	CategoryColumn string // Column with the category
	ScriptColumn   string // Column with the script ("hiragana"/"katakana"), optional
	SheetName      string // Name of the sheet to import
	StartRow       int    // The row to start importing from (1-based index)
}

// DefaultImportConfig returns the default import configuration.
func DefaultImportConfig(path string) ImportConfig {
	return ImportConfig{
		FilePath:       path,
		KanaColumn:     "A",
		RomajiColumn:   "B",
		MeaningColumn:  "C",
		CategoryColumn: "D",
		ScriptColumn:   "E",
		SheetName:      "Sheet1",
		StartRow:       2, // By default, start from the second row (skip header)
	}
}

// ImportResult holds the outcome of an import operation.
type ImportResult struct {
	TotalProcessed int
	Imported       int
	Skipped        int
	Errors         []string
	Words          []models.Word
}

// ImportWords reads a custom word list from an Excel or CSV file. Character
// decomposition is derived from the kana text against the built-in
// character set; rows containing unknown glyphs are reported in Errors and
// skipped.
func ImportWords(config ImportConfig) (*ImportResult, error) {
	ext := strings.ToLower(filepath.Ext(config.FilePath))
	if ext == ".csv" {
		return importFromCSV(config)
	}
	return importFromExcel(config)
}

// importFromExcel reads rows from an Excel sheet.
func importFromExcel(config ImportConfig) (*ImportResult, error) {
	f, err := excelize.OpenFile(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows(config.SheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows: %v", err)
	}

	result := &ImportResult{Errors: make([]string, 0)}
	for i, row := range rows {
		if i < config.StartRow-1 {
			continue
		}
		result.TotalProcessed++
		if err := processRow(rowCells(row, config), result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", i+1, err))
			result.Skipped++
		}
	}
	return result, nil
}

// importFromCSV reads rows from a CSV file with the same column order as
// the Excel layout.
func importFromCSV(config ImportConfig) (*ImportResult, error) {
	file, err := os.Open(config.FilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // Allow variable number of fields
	reader.LazyQuotes = true

	result := &ImportResult{Errors: make([]string, 0)}
	rowNum := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading CSV: %v", err)
		}
		rowNum++
		if rowNum < config.StartRow {
			continue
		}
		result.TotalProcessed++
		if err := processRow(rowCells(row, config), result); err != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			result.Skipped++
		}
	}
	return result, nil
}

type cells struct {
	kana     string
	romaji   string
	meaning  string
	category string
	script   string
}

func rowCells(row []string, config ImportConfig) cells {
	get := func(column string) string {
		if column == "" {
			return ""
		}
		if idx := columnToIndex(column); idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}
	return cells{
		kana:     get(config.KanaColumn),
		romaji:   get(config.RomajiColumn),
		meaning:  get(config.MeaningColumn),
		category: get(config.CategoryColumn),
		script:   strings.ToLower(get(config.ScriptColumn)),
	}
}

// processRow validates one row and appends the resulting word.
func processRow(c cells, result *ImportResult) error {
	if c.kana == "" {
		return fmt.Errorf("missing kana text")
	}
	if c.romaji == "" {
		return fmt.Errorf("missing romanization")
	}

	script := models.ScriptHiragana
	switch c.script {
	case "", string(models.ScriptHiragana):
	case string(models.ScriptKatakana):
		script = models.ScriptKatakana
	default:
		return fmt.Errorf("unknown script %q", c.script)
	}

	characterIDs, err := kana.Decompose(c.kana, script)
	if err != nil {
		return err
	}

	result.Words = append(result.Words, models.Word{
		ID:         strings.ToLower(c.romaji),
		Kana:       c.kana,
		Romaji:     c.romaji,
		Meaning:    c.meaning,
		Category:   c.category,
		Script:     script,
		Characters: characterIDs,
	})
	result.Imported++
	return nil
}

// columnToIndex converts an Excel column letter ("A", "B", ...) to a
// zero-based index.
func columnToIndex(column string) int {
	column = strings.ToUpper(strings.TrimSpace(column))
	index := 0
	for _, r := range column {
		if r < 'A' || r > 'Z' {
			return -1
		}
		index = index*26 + int(r-'A') + 1
	}
	return index - 1
}
