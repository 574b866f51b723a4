package usecase_test

import (
	"context"
	"errors"
	"testing"

	"synmap/internal/modules/outline/domain"
	"synmap/internal/modules/outline/dto"
	"synmap/internal/modules/outline/service"
	"synmap/internal/modules/outline/usecase"
	apperrors "synmap/internal/platform/errors"
)

type fakeProvider struct {
	response string
	err      error
	prompt   string
}

func (f *fakeProvider) Complete(_ context.Context, prompt string) (string, error) {
	f.prompt = prompt
	return f.response, f.err
}

func newUC(p *fakeProvider) (outlineUC interface {
	Generate(ctx context.Context, input dto.GenerateInput) (dto.OutlineOutput, error)
}) {
	return usecase.NewInteractor(service.NewOutlineService(p))
}

func TestGenerateBuildsGraphFromFencedResponse(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{response: "```json\n{\"name\":\"Go\",\"children\":[{\"name\":\"Slices\"},{\"name\":\"Maps\"}]}\n```"}
	uc := newUC(provider)

	out, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "Introduction to Go\nSlices and Maps\n"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if out.RootTopic != "Go" {
		t.Fatalf("unexpected root topic %q", out.RootTopic)
	}
	if len(out.Nodes) != 3 || len(out.Edges) != 2 {
		t.Fatalf("unexpected graph size: %d nodes %d edges", len(out.Nodes), len(out.Edges))
	}
	if provider.prompt == "" {
		t.Fatalf("provider was not called")
	}
}

func TestGenerateRejectsAllNoiseInput(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{response: `{"name":"x"}`}
	uc := newUC(provider)

	_, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "1\n22\nab\n"})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if provider.prompt != "" {
		t.Fatalf("provider must not be called for empty cleaned text")
	}
}

func TestGenerateProviderFailurePassesThrough(t *testing.T) {
	t.Parallel()
	uc := newUC(&fakeProvider{err: apperrors.ErrProvider})
	_, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "Databases and Indexing"})
	if !errors.Is(err, apperrors.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestGenerateBlankResponseIsProviderError(t *testing.T) {
	t.Parallel()
	uc := newUC(&fakeProvider{response: "  \n"})
	_, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "Databases and Indexing"})
	if !errors.Is(err, apperrors.ErrProvider) {
		t.Fatalf("expected ErrProvider for blank response, got %v", err)
	}
}

func TestGenerateBadJSONSurfacesFormatError(t *testing.T) {
	t.Parallel()
	uc := newUC(&fakeProvider{response: "Sure! Here is the outline you asked for."})
	_, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "Databases and Indexing"})
	formatErr := &domain.FormatError{}
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
	if formatErr.Raw == "" {
		t.Fatalf("format error must keep raw response for diagnosis")
	}
}

func TestGenerateEmptyOutlineDistinctSignal(t *testing.T) {
	t.Parallel()
	uc := newUC(&fakeProvider{response: "null"})
	_, err := uc.Generate(context.Background(), dto.GenerateInput{Text: "Databases and Indexing"})
	if !errors.Is(err, domain.ErrEmptyOutline) {
		t.Fatalf("expected ErrEmptyOutline, got %v", err)
	}
}
