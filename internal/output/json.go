package output

import (
	"encoding/json"
	"io"

	"github.com/jeduden/textsmith"
)

// JSONFormatter renders reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	Source string `json:"source"`
	textsmith.Result
}

// Format writes reports as a pretty-printed JSON array. An empty slice
// of reports produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, rep := range reports {
		items = append(items, jsonReport{
			Source: rep.Source,
			Result: rep.Result,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}
