package sheets

import (
	"encoding/json"
	"fmt"
	"strings"
)

// The gviz endpoint answers with a JSONP-style body:
//
//	/*O_o*/
//	google.visualization.Query.setResponse({"table":{"rows":[...]}});
//
// The JSON payload sits between the first "(" and the last ")". Rows carry a
// "c" array of cells; both a cell and its "v" value may be null.
const responseMarker = "google.visualization.Query.setResponse"

// Cell is one spreadsheet cell. Value is nil for blank cells.
type Cell struct {
	Value any `json:"v"`
}

// Row is one spreadsheet row as a sparse ordered list of cells.
type Row struct {
	Cells []*Cell `json:"c"`
}

type gvizTable struct {
	Rows []Row `json:"rows"`
}

type gvizResponse struct {
	Table *gvizTable `json:"table"`
}

// decodeEnvelope extracts and decodes the JSON payload from a gviz response
// body. A well-formed payload without table.rows is a legitimate empty
// result, not an error.
func decodeEnvelope(source, body string) ([]Row, error) {
	if !strings.Contains(body, responseMarker) {
		return nil, &FormatError{Source: source, Reason: "response is missing the gviz wrapper; check that the sheet exists and is public"}
	}

	start := strings.Index(body, "(")
	end := strings.LastIndex(body, ")")
	if start < 0 || end <= start {
		return nil, &FormatError{Source: source, Reason: "response has no JSON payload"}
	}

	var resp gvizResponse
	if err := json.Unmarshal([]byte(body[start+1:end]), &resp); err != nil {
		return nil, &FormatError{Source: source, Reason: fmt.Sprintf("payload decode failed: %v", err)}
	}

	if resp.Table == nil || resp.Table.Rows == nil {
		// Empty sheet.
		return []Row{}, nil
	}

	return resp.Table.Rows, nil
}
