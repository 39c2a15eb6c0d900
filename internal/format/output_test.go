package format

import (
	"bytes"
	"testing"
)

type frame struct {
	X     int    `json:"x"`
	Title string `json:"title"`
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, map[string]any{"data": frame{X: 108, Title: "Кино & Еда"}}, "", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{"data":{"x":108,"title":"Кино & Еда"}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got %q want %q", got, want)
	}
}

func TestWrite_EDN(t *testing.T) {
	v := map[string]any{
		"data": []frame{{X: 0, Title: "Юмор"}, {X: 8, Title: "Еда"}},
		"meta": map[string]any{"ok": true, "ratio": 0.5, "none": nil, "empty": []any{}},
	}

	var buf bytes.Buffer
	if err := Write(&buf, v, "edn", false); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := `{:data [{:title "Юмор" :x 0} {:title "Еда" :x 8}] :meta {:empty [] :none nil :ok true :ratio 0.5}}` + "\n"
	if got := buf.String(); got != want {
		t.Fatalf("got  %s\nwant %s", got, want)
	}

	buf.Reset()
	if err := Write(&buf, map[string]any{"xs": []int{1, 2}}, "edn", true); err != nil {
		t.Fatalf("Write pretty: %v", err)
	}
	wantPretty := "{\n  :xs [\n    1\n    2\n  ]\n}\n"
	if got := buf.String(); got != wantPretty {
		t.Fatalf("pretty mismatch:\n got=%q\nwant=%q", got, wantPretty)
	}
}

func TestWrite_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, 1, "xml", false); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestValidate(t *testing.T) {
	for _, f := range []string{"", "json", "EDN", " edn "} {
		if err := Validate(f); err != nil {
			t.Fatalf("Validate(%q): %v", f, err)
		}
	}
	if err := Validate("yaml"); err == nil {
		t.Fatalf("expected yaml to be rejected")
	}
}
