package decision

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/kailas-cloud/docsgate/internal/domain"
	"github.com/kailas-cloud/docsgate/internal/domain/search/request"
	"github.com/kailas-cloud/docsgate/internal/domain/search/result"
)

type mockSearcher struct {
	hits    []result.Hit
	err     error
	calls   int
	lastReq request.DocumentSearch
}

func (m *mockSearcher) SearchDocuments(
	_ context.Context, req request.DocumentSearch,
) (result.SearchResult[result.Hit], error) {
	m.calls++
	m.lastReq = req
	return result.SearchResult[result.Hit]{EstimatedTotal: len(m.hits), Hits: m.hits}, m.err
}

func question(t *testing.T, q string) request.DecisionLookup {
	t.Helper()
	r, err := request.NewDecisionLookup(q)
	if err != nil {
		t.Fatalf("NewDecisionLookup: %v", err)
	}
	return r
}

func TestLookup_NotFound(t *testing.T) {
	svc := New(&mockSearcher{})

	d, err := svc.Lookup(context.Background(), question(t, "Why Kafka?"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Found {
		t.Fatal("expected not found")
	}
	if d.Message != NotFoundMessage || d.Suggestion != NotFoundSuggestion {
		t.Errorf("decision = %+v", d)
	}
	if d.Evidence != nil {
		t.Error("not found must carry no evidence")
	}
}

func TestLookup_Found(t *testing.T) {
	hits := []result.Hit{
		{Title: "ADR-1", Path: "adr/1.md", Snippet: "we chose **Postgres**"},
		{Title: "ADR-7", Path: "adr/7.md"},
	}
	ms := &mockSearcher{hits: hits}
	svc := New(ms)

	d, err := svc.Lookup(context.Background(), question(t, "Why Postgres?"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !d.Found || d.Question != "Why Postgres?" || d.Note != SynthesisNote {
		t.Errorf("decision = %+v", d)
	}
	if len(d.Evidence) != 2 || d.Evidence[0].Title != "ADR-1" || d.Evidence[1].Title != "ADR-7" {
		t.Errorf("evidence = %+v", d.Evidence)
	}
	if ms.calls != 1 {
		t.Errorf("search calls = %d, want 1", ms.calls)
	}
	if ms.lastReq.Limit() != request.DecisionLimit || ms.lastReq.Query() != "Why Postgres?" {
		t.Errorf("search = %q limit %d", ms.lastReq.Query(), ms.lastReq.Limit())
	}
	if !ms.lastReq.Filters().IsEmpty() {
		t.Error("decision search must not filter")
	}
}

func TestLookup_CapsEvidence(t *testing.T) {
	hits := make([]result.Hit, 8)
	for i := range hits {
		hits[i] = result.Hit{Title: fmt.Sprintf("doc-%d", i)}
	}
	svc := New(&mockSearcher{hits: hits})

	d, err := svc.Lookup(context.Background(), question(t, "q"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(d.Evidence) != request.DecisionLimit {
		t.Errorf("evidence = %d, want %d", len(d.Evidence), request.DecisionLimit)
	}
	if d.Evidence[4].Title != "doc-4" {
		t.Errorf("order not preserved: %+v", d.Evidence)
	}
}

func TestLookup_Error(t *testing.T) {
	svc := New(&mockSearcher{err: domain.ErrBackendUnavailable})

	_, err := svc.Lookup(context.Background(), question(t, "q"))
	if !errors.Is(err, domain.ErrBackendUnavailable) {
		t.Fatalf("expected ErrBackendUnavailable, got %v", err)
	}
}
