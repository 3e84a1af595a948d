// internal/output/common.go
package output

import "strings"

// Output formats.
const (
	FormatCSV   = "csv"
	FormatTSV   = "tsv"
	FormatJSONL = "jsonl"
)

// Columns is the fixed result header. Keep this as the single source of
// truth; every delimited writer uses it.
var Columns = []string{
	"aso_id",
	"aso_sequence",
	"transcript_id",
	"gene_symbol",
	"transcript_type",
	"match_start",
	"match_end",
	"matched_sequence",
	"edit_distance",
}

// CSVHeader is Columns joined for display and snapshot tests.
var CSVHeader = strings.Join(Columns, ",")

// Formats lists the accepted format names.
func Formats() []string { return []string{FormatCSV, FormatTSV, FormatJSONL} }
