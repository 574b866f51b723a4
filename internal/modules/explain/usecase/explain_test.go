package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"synmap/internal/modules/explain/domain"
	"synmap/internal/modules/explain/dto"
	"synmap/internal/modules/explain/service"
	"synmap/internal/modules/explain/usecase"
	apperrors "synmap/internal/platform/errors"
)

type fixedClock struct{ at time.Time }

func (c fixedClock) Now() time.Time { return c.at }

type fakeProvider struct {
	response string
	err      error
}

func (f fakeProvider) Complete(context.Context, string) (string, error) {
	return f.response, f.err
}

type fakeNoteStore struct {
	saved *domain.Explanation
	err   error
}

func (f *fakeNoteStore) Save(_ context.Context, explanation domain.Explanation) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = &explanation
	return "/ws/notes/" + explanation.Topic + ".md", nil
}

func TestExplainReturnsBodyAndWritesNote(t *testing.T) {
	t.Parallel()
	at := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	notes := &fakeNoteStore{}
	uc := usecase.NewInteractor(
		service.NewExplainService(fixedClock{at: at}, fakeProvider{response: "**Summary**: loops repeat work.\n"}),
		notes,
	)

	out, err := uc.Explain(context.Background(), dto.ExplainInput{Topic: "Loops"})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if out.Topic != "Loops" || out.Body == "" {
		t.Fatalf("unexpected output: %+v", out)
	}
	if !out.GeneratedAt.Equal(at) {
		t.Fatalf("expected clock time, got %v", out.GeneratedAt)
	}
	if notes.saved == nil || notes.saved.Topic != "Loops" {
		t.Fatalf("note was not persisted: %+v", notes.saved)
	}
	if out.NotePath == "" {
		t.Fatalf("note path missing from output")
	}
}

func TestExplainBlankTopicRejectedBeforeProviderCall(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewExplainService(fixedClock{}, fakeProvider{response: "ignored"}),
		nil,
	)
	_, err := uc.Explain(context.Background(), dto.ExplainInput{Topic: "   "})
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestExplainEmptyProviderResponse(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewExplainService(fixedClock{}, fakeProvider{response: "\n\t"}),
		nil,
	)
	_, err := uc.Explain(context.Background(), dto.ExplainInput{Topic: "Loops"})
	if !errors.Is(err, apperrors.ErrProvider) {
		t.Fatalf("expected ErrProvider, got %v", err)
	}
}

func TestExplainWorksWithoutNoteStore(t *testing.T) {
	t.Parallel()
	uc := usecase.NewInteractor(
		service.NewExplainService(fixedClock{}, fakeProvider{response: "body"}),
		nil,
	)
	out, err := uc.Explain(context.Background(), dto.ExplainInput{Topic: "Loops"})
	if err != nil {
		t.Fatalf("explain: %v", err)
	}
	if out.NotePath != "" {
		t.Fatalf("expected empty note path, got %q", out.NotePath)
	}
}
