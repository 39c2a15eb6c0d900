package format

import (
	"encoding/json"
	"io"
	"sort"
	"strconv"
	"strings"
)

// WriteEDN writes v as EDN.
//
// Values go through encoding/json first so struct tags decide field names; the
// result is limited to maps (keyword keys), vectors, strings, numbers, booleans and nil.
func WriteEDN(w io.Writer, v any, pretty bool) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var x any
	if err := json.Unmarshal(b, &x); err != nil {
		return err
	}

	var sb strings.Builder
	e := ednWriter{sb: &sb, pretty: pretty}
	e.value(x, 0)
	sb.WriteByte('\n')
	_, err = io.WriteString(w, sb.String())
	return err
}

type ednWriter struct {
	sb     *strings.Builder
	pretty bool
}

func (e ednWriter) value(v any, level int) {
	switch t := v.(type) {
	case nil:
		e.sb.WriteString("nil")
	case bool:
		e.sb.WriteString(strconv.FormatBool(t))
	case string:
		e.sb.WriteString(strconv.Quote(t))
	case float64:
		// Frames and indices are integers; keep them that way.
		if t == float64(int64(t)) {
			e.sb.WriteString(strconv.FormatInt(int64(t), 10))
			return
		}
		e.sb.WriteString(strconv.FormatFloat(t, 'f', -1, 64))
	case []any:
		e.sb.WriteByte('[')
		for i, it := range t {
			e.sep(i, level)
			e.value(it, level+1)
		}
		e.close(']', len(t) == 0, level)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		e.sb.WriteByte('{')
		for i, k := range keys {
			e.sep(i, level)
			e.sb.WriteString(keyword(k))
			e.sb.WriteByte(' ')
			e.value(t[k], level+1)
		}
		e.close('}', len(keys) == 0, level)
	}
}

func (e ednWriter) sep(i, level int) {
	switch {
	case e.pretty:
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", level+1))
	case i > 0:
		e.sb.WriteByte(' ')
	}
}

func (e ednWriter) close(c byte, empty bool, level int) {
	if e.pretty && !empty {
		e.sb.WriteByte('\n')
		e.sb.WriteString(strings.Repeat("  ", level))
	}
	e.sb.WriteByte(c)
}

// keyword renders a JSON key as an EDN keyword.
func keyword(k string) string {
	k = strings.TrimSpace(k)
	k = strings.ReplaceAll(k, " ", "-")
	return ":" + k
}
