package bisection

import (
	"fmt"
	"io"

	"github.com/bitly/go-simplejson"
	"github.com/pterm/pterm"
)

type report struct {
	command string
	header  []string
	rows    [][]string
}

func newReport(command string, header ...string) *report {
	return &report{command: command, header: header}
}

func (r *report) add(cells ...string) {
	r.rows = append(r.rows, cells)
}

func (r *report) writeTable(w io.Writer) error {
	data := append(pterm.TableData{r.header}, r.rows...)
	s, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, s)
	return err
}

func (r *report) writeJSON(w io.Writer) error {
	results := make([]interface{}, 0, len(r.rows))
	for _, row := range r.rows {
		m := make(map[string]interface{}, len(r.header))
		for i, h := range r.header {
			m[h] = row[i]
		}
		results = append(results, m)
	}

	js := simplejson.New()
	js.Set("command", r.command)
	js.Set("results", results)
	payload, err := js.EncodePretty()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(payload))
	return err
}
