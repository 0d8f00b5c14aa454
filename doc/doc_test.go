package doc

import (
	"bytes"
	"strings"
	"testing"
)

func TestWrapHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := WrapHTML(&buf, "groovy song", "||---||\n|| • ||"); err != nil {
		t.Fatalf("WrapHTML: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "<title>Groovy Song staff</title>") {
		t.Errorf("title missing or not title-cased:\n%v", out)
	}
	if !strings.Contains(out, "<pre>\n||---||\n|| • ||</pre>") {
		t.Errorf("staff text not embedded verbatim:\n%v", out)
	}
	if !strings.Contains(out, "charset=\"utf-8\"") {
		t.Errorf("charset declaration missing:\n%v", out)
	}
}
