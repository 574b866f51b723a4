package domain_test

import (
	"testing"

	"synmap/internal/modules/outline/domain"
)

func TestNormalizeDropsNoiseLines(t *testing.T) {
	t.Parallel()
	got := domain.Normalize("12\nAB\nIntroduction to Loops\n\n")
	if got != "Introduction to Loops" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}

func TestNormalizePreservesOrderAndTrims(t *testing.T) {
	t.Parallel()
	input := "  Course Overview  \n347\n- \nData Structures\n\t\nAlgorithms"
	want := "Course Overview\nData Structures\nAlgorithms"
	if got := domain.Normalize(input); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeCountsRunesNotBytes(t *testing.T) {
	t.Parallel()
	got := domain.Normalize("続き\n離散数学の基礎\nグラフ理論")
	if got != "離散数学の基礎\nグラフ理論" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}

func TestNormalizeAllNoiseYieldsEmpty(t *testing.T) {
	t.Parallel()
	if got := domain.Normalize("1\n22\n333\n\n  \nab"); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
