package clipboard

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteEmitsOSC52Sequence(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []byte("hello")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "52;c;") {
		t.Errorf("output %q missing OSC-52 clipboard selector", out)
	}
	if !strings.HasPrefix(out, "\x1b]") && !strings.HasPrefix(out, "\x1bP") {
		t.Errorf("output %q does not start with an OSC or DCS escape", out)
	}
}

func TestWriteEncodesBase64Payload(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []byte("tabiew")); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	// base64("tabiew") == "dGFiaWV3"
	if !strings.Contains(buf.String(), "dGFiaWV3") {
		t.Errorf("output %q missing expected base64 payload", buf.String())
	}
}

func TestWriteEmptyPayload(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected an escape sequence even for an empty payload")
	}
}
