package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/courtstat/internal/ports/primary"
)

type mockQueryService struct {
	summary []*primary.FTSCSummaryRow
	spc     []*primary.SPCDataRow
	err     error
}

func (m *mockQueryService) FTSCSummary(_ context.Context, _ primary.FTSCSummaryFilters) ([]*primary.FTSCSummaryRow, error) {
	return m.summary, m.err
}

func (m *mockQueryService) SPCData(_ context.Context, _ primary.SPCDataFilters) ([]*primary.SPCDataRow, error) {
	return m.spc, m.err
}

func TestViewAdapterFTSCSummary(t *testing.T) {
	mock := &mockQueryService{
		summary: []*primary.FTSCSummaryRow{
			{
				DistrictName: "Thiruvananthapuram", Month: 1, Year: 2025,
				BalanceTotal: 160, NewTotal: 16, DisposedTotal: 12, PendingTotal: 164,
				PendingOver5YTotal: 20,
			},
		},
	}
	var buf bytes.Buffer
	adapter := NewViewAdapter(mock, &buf)

	if err := adapter.FTSCSummary(context.Background(), primary.FTSCSummaryFilters{}); err != nil {
		t.Fatalf("FTSCSummary() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Thiruvananthapuram") {
		t.Errorf("output missing district: %q", out)
	}
	if !strings.Contains(out, "164") || !strings.Contains(out, "01/2025") {
		t.Errorf("output missing figures: %q", out)
	}
}

func TestViewAdapterFTSCSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewViewAdapter(&mockQueryService{}, &buf)

	if err := adapter.FTSCSummary(context.Background(), primary.FTSCSummaryFilters{}); err != nil {
		t.Fatalf("FTSCSummary() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No FTSC data found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestViewAdapterSPCData(t *testing.T) {
	mock := &mockQueryService{
		spc: []*primary.SPCDataRow{
			{
				CourtName: "SPC TVM", DistrictName: "Thiruvananthapuram", Month: 1, Year: 2025,
				BalanceTotal: 80, NewTotal: 8, DisposedTotal: 6, PendingTotal: 82,
			},
		},
	}
	var buf bytes.Buffer
	adapter := NewViewAdapter(mock, &buf)

	if err := adapter.SPCData(context.Background(), primary.SPCDataFilters{}); err != nil {
		t.Fatalf("SPCData() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "SPC TVM") || !strings.Contains(out, "82") {
		t.Errorf("output = %q", out)
	}
}

func TestViewAdapterSPCDataEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewViewAdapter(&mockQueryService{}, &buf)

	if err := adapter.SPCData(context.Background(), primary.SPCDataFilters{}); err != nil {
		t.Fatalf("SPCData() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No SPC data found") {
		t.Errorf("output = %q", buf.String())
	}
}
