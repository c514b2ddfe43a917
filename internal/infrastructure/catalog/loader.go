package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/Irina-Na/ai-stylist/internal/domain"
)

// Column names of the enriched catalog CSV.
const (
	colStoreID    = "store_id"
	colGoodID     = "good_id"
	colCategoryID = "category_id"
	colName       = "name"
	colColor      = "color"
	colFabric     = "fabric"
	colPattern    = "pattern"
	colDetail     = "detailes"
	colGender     = "gender"
	colImageURL   = "image_external_url"
	colPrice      = "price"
	colBrand      = "brand"
	colLookLabel  = "look_label"
)

// Load reads and cleans the catalog CSV at path.
//
// Cleaning mirrors what the matcher assumes: missing cells become empty
// strings, matching fields are lowercased, the category_id cell (a literal
// list like "['dress', 'midi dress']") becomes a token path, and rows are
// de-duplicated by image URL and by (good id, store id) so the matcher never
// sees exact duplicates.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}
	defer f.Close()

	rows, err := parse(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogLoad, err)
	}

	deduped := dedupRows(rows)
	log.Info().
		Str("path", path).
		Int("rows", len(deduped)).
		Int("dropped", len(rows)-len(deduped)).
		Msg("catalog loaded")

	return NewStore(deduped), nil
}

// parse decodes CSV records into catalog rows.
func parse(r io.Reader) ([]domain.CatalogRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // ragged rows are padded with empty cells

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index[colCategoryID]; !ok {
		return nil, fmt.Errorf("missing required column %q", colCategoryID)
	}

	cell := func(record []string, column string) string {
		i, ok := index[column]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []domain.CatalogRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read record: %w", err)
		}

		price, _ := strconv.ParseFloat(cell(record, colPrice), 64)

		rows = append(rows, domain.CatalogRow{
			StoreID:      cell(record, colStoreID),
			GoodID:       cell(record, colGoodID),
			CategoryPath: parseLiteralList(cell(record, colCategoryID)),
			Name:         strings.ToLower(cell(record, colName)),
			Color:        strings.ToLower(cell(record, colColor)),
			Fabric:       strings.ToLower(cell(record, colFabric)),
			Pattern:      strings.ToLower(cell(record, colPattern)),
			Detail:       strings.ToLower(cell(record, colDetail)),
			Gender:       strings.ToLower(cell(record, colGender)),
			ImageURL:     cell(record, colImageURL),
			Price:        price,
			Brand:        cell(record, colBrand),
			LookLabel:    cell(record, colLookLabel),
		})
	}

	return rows, nil
}

// parseLiteralList parses a python-style literal list cell such as
// "['dress', 'midi dress']" into lowercase tokens. A bare token without
// brackets becomes a one-element path.
func parseLiteralList(cell string) []string {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return nil
	}

	if strings.HasPrefix(cell, "[") && strings.HasSuffix(cell, "]") {
		cell = cell[1 : len(cell)-1]
	}

	var tokens []string
	for _, part := range strings.Split(cell, ",") {
		token := strings.Trim(strings.TrimSpace(part), `'"`)
		token = strings.ToLower(strings.TrimSpace(token))
		if token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}

// dedupRows drops exact duplicates by image URL, then by (good id, store id),
// keeping the first occurrence each time.
func dedupRows(rows []domain.CatalogRow) []domain.CatalogRow {
	seenImage := make(map[string]bool, len(rows))
	seenGood := make(map[string]bool, len(rows))

	out := make([]domain.CatalogRow, 0, len(rows))
	for _, row := range rows {
		if row.ImageURL != "" {
			if seenImage[row.ImageURL] {
				continue
			}
			seenImage[row.ImageURL] = true
		}

		if row.GoodID != "" || row.StoreID != "" {
			key := row.GoodID + "\x00" + row.StoreID
			if seenGood[key] {
				continue
			}
			seenGood[key] = true
		}

		out = append(out, row)
	}
	return out
}
