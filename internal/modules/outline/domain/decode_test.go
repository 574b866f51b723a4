package domain_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"synmap/internal/modules/outline/domain"
)

const sampleJSON = `{"name":"Root","children":[{"name":"A"},{"name":"B","children":[{"name":"B1"}]}]}`

func TestDecodeOutlineFencedMatchesBare(t *testing.T) {
	t.Parallel()
	bare, err := domain.DecodeOutline(sampleJSON)
	if err != nil {
		t.Fatalf("decode bare: %v", err)
	}
	fenced, err := domain.DecodeOutline("```json\n" + sampleJSON + "\n```")
	if err != nil {
		t.Fatalf("decode fenced: %v", err)
	}
	if !reflect.DeepEqual(bare, fenced) {
		t.Fatalf("fenced decode differs: %+v vs %+v", bare, fenced)
	}
	plainFence, err := domain.DecodeOutline("```\n" + sampleJSON + "\n```")
	if err != nil {
		t.Fatalf("decode plain fence: %v", err)
	}
	if !reflect.DeepEqual(bare, plainFence) {
		t.Fatalf("plain fence decode differs")
	}
}

func TestDecodeOutlineInvalidJSONKeepsRaw(t *testing.T) {
	t.Parallel()
	raw := "here is your mind map: {name: Root"
	_, err := domain.DecodeOutline(raw)
	formatErr := &domain.FormatError{}
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Raw != raw {
		t.Fatalf("raw text not preserved: %q", formatErr.Raw)
	}
}

func TestDiagnosticShowsRawResponse(t *testing.T) {
	t.Parallel()
	raw := "here is your mind map: {name: Root"
	_, err := domain.DecodeOutline(raw)
	if err == nil {
		t.Fatal("expected decode error")
	}
	text := domain.Diagnostic(err)
	if !strings.Contains(text, err.Error()) {
		t.Fatalf("diagnostic omits the message: %q", text)
	}
	if !strings.Contains(text, raw) {
		t.Fatalf("diagnostic omits the raw response: %q", text)
	}
}

func TestDiagnosticPassesThroughOtherErrors(t *testing.T) {
	t.Parallel()
	err := errors.New("plain failure")
	if got := domain.Diagnostic(err); got != "plain failure" {
		t.Fatalf("got %q", got)
	}
}

func TestDecodeOutlineNullAndEmptyObject(t *testing.T) {
	t.Parallel()
	for _, raw := range []string{"null", "{}", `{"name":"  "}`} {
		if _, err := domain.DecodeOutline(raw); !errors.Is(err, domain.ErrEmptyOutline) {
			t.Fatalf("input %q: expected ErrEmptyOutline, got %v", raw, err)
		}
	}
}

func TestStripFenceUnfencedPassthrough(t *testing.T) {
	t.Parallel()
	if got := domain.StripFence("  " + sampleJSON + "\n"); got != sampleJSON {
		t.Fatalf("unexpected passthrough: %q", got)
	}
	got := domain.StripFence("```json" + sampleJSON + "```")
	if !strings.HasPrefix(got, `{"name"`) {
		t.Fatalf("inline fence not stripped: %q", got)
	}
}
