package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"house-price/internal/domain"
	"house-price/internal/features"
)

func TestPrintCoverage(t *testing.T) {
	var out bytes.Buffer
	printCoverage(&out, features.Coverage(features.MustSchema("beds", "year_built")))
	s := out.String()
	if !strings.Contains(s, "1: beds") {
		t.Fatalf("expected populated beds, got %q", s)
	}
	if !strings.Contains(s, "1: year_built") {
		t.Fatalf("expected imputed year_built, got %q", s)
	}
	if !strings.Contains(s, "nearest_park") {
		t.Fatalf("expected dropped form columns listed, got %q", s)
	}
}

func TestJoinOrDash(t *testing.T) {
	if got := joinOrDash(nil); got != "-" {
		t.Fatalf("expected dash, got %q", got)
	}
	if got := joinOrDash([]string{"a", "b"}); got != "a, b" {
		t.Fatalf("unexpected join %q", got)
	}
}

type mockPublisher struct {
	records []domain.ArtifactRecord
	err     error
}

func (m *mockPublisher) Create(_ context.Context, rec domain.ArtifactRecord) error {
	if m.err != nil {
		return m.err
	}
	m.records = append(m.records, rec)
	return nil
}

func TestPublishChecked(t *testing.T) {
	const bundled = "../../artifacts/house_price_pipeline.yaml"
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	store := &mockPublisher{}
	var out bytes.Buffer
	if err := publishChecked(context.Background(), &out, store, bundled, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(store.records) != 1 || store.records[0].Name != "house_price_linear_pipeline" || store.records[0].Version != "2" {
		t.Fatalf("unexpected records %+v", store.records)
	}
	if !strings.Contains(out.String(), "house_price_linear_pipeline v2 id="+store.records[0].ID) {
		t.Fatalf("unexpected output %q", out.String())
	}

	storeErr := errors.New("db down")
	out.Reset()
	err := publishChecked(context.Background(), &out, &mockPublisher{err: storeErr}, bundled, now)
	if !errors.Is(err, storeErr) || out.Len() != 0 {
		t.Fatalf("expected store error and no output, got %v %q", err, out.String())
	}
}
