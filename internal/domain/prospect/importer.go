package prospect

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

type column int

const (
	colCompany column = iota
	colWebsite
	colDescription
	colContactName
	colContactEmail
	colContactPhone
	colLinkedIn
)

var headerAliases = map[string]column{
	"company":       colCompany,
	"company name":  colCompany,
	"organization":  colCompany,
	"organisation":  colCompany,
	"website":       colWebsite,
	"url":           colWebsite,
	"web":           colWebsite,
	"description":   colDescription,
	"notes":         colDescription,
	"contact":       colContactName,
	"contact name":  colContactName,
	"name":          colContactName,
	"email":         colContactEmail,
	"e-mail":        colContactEmail,
	"contact email": colContactEmail,
	"phone":         colContactPhone,
	"telephone":     colContactPhone,
	"contact phone": colContactPhone,
	"linkedin":      colLinkedIn,
	"linkedin url":  colLinkedIn,
}

// Importer loads prospects in bulk from CSV or XLSX files. The first row is
// the header; unknown columns are ignored.
type Importer struct {
	repo    *Repository
	maxRows int
	log     *zap.Logger
}

func NewImporter(repo *Repository, maxRows int, log *zap.Logger) *Importer {
	return &Importer{repo: repo, maxRows: maxRows, log: log}
}

// Import parses the file and inserts every row that has a company name.
// Rows without one are reported in ImportResult.Errors.
func (i *Importer) Import(ctx context.Context, r io.Reader, filename, createdBy string) (*ImportResult, error) {
	rows, err := readRows(r, filename)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyImport
	}

	cols := mapHeader(rows[0])
	if _, ok := cols[colCompany]; !ok {
		return nil, ErrMissingCompanyCol
	}

	res := &ImportResult{}
	batch := make([]*Prospect, 0, len(rows)-1)
	processed := 0

	for idx, row := range rows[1:] {
		line := idx + 2
		if blankRow(row) {
			res.Skipped++
			continue
		}
		if i.maxRows > 0 && processed >= i.maxRows {
			res.Truncated = true
			break
		}
		processed++

		company := strings.TrimSpace(cell(row, cols, colCompany))
		if company == "" {
			res.Skipped++
			res.Errors = append(res.Errors, ImportRowError{Row: line, Message: "company name is empty"})
			continue
		}

		batch = append(batch, &Prospect{
			CompanyName:  company,
			Website:      optional(cell(row, cols, colWebsite)),
			Description:  optional(cell(row, cols, colDescription)),
			ContactName:  optional(cell(row, cols, colContactName)),
			ContactEmail: optional(cell(row, cols, colContactEmail)),
			ContactPhone: optional(cell(row, cols, colContactPhone)),
			LinkedInURL:  optional(cell(row, cols, colLinkedIn)),
			Status:       StatusPending,
			Source:       SourceImport,
			CreatedBy:    optional(createdBy),
		})
	}

	if err := i.repo.CreateBatch(ctx, batch); err != nil {
		return nil, fmt.Errorf("insert imported prospects: %w", err)
	}
	res.Imported = len(batch)

	i.log.Info("prospects imported",
		zap.String("file", filename),
		zap.Int("imported", res.Imported),
		zap.Int("skipped", res.Skipped),
		zap.Bool("truncated", res.Truncated),
	)
	return res, nil
}

func readRows(r io.Reader, filename string) ([][]string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		cr := csv.NewReader(r)
		cr.FieldsPerRecord = -1
		cr.TrimLeadingSpace = true
		rows, err := cr.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		return rows, nil
	case ".xlsx":
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to open Excel file: %w", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrEmptyImport
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("failed to read Excel rows: %w", err)
		}
		return rows, nil
	default:
		return nil, ErrUnsupportedFile
	}
}

func mapHeader(header []string) map[column]int {
	cols := make(map[column]int)
	for idx, h := range header {
		key := strings.ToLower(strings.TrimSpace(h))
		key = strings.ReplaceAll(key, "_", " ")
		if c, ok := headerAliases[key]; ok {
			if _, seen := cols[c]; !seen {
				cols[c] = idx
			}
		}
	}
	return cols
}

func cell(row []string, cols map[column]int, c column) string {
	idx, ok := cols[c]
	if !ok || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func blankRow(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
