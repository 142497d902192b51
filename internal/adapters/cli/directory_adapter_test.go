package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/example/courtstat/internal/ports/primary"
)

type mockDirectoryService struct {
	districts []*primary.District
	courts    []*primary.Court
	court     *primary.Court
	err       error
}

func (m *mockDirectoryService) ListDistricts(_ context.Context) ([]*primary.District, error) {
	return m.districts, m.err
}

func (m *mockDirectoryService) ListCourts(_ context.Context, _ string) ([]*primary.Court, error) {
	return m.courts, m.err
}

func (m *mockDirectoryService) GetCourtInfo(_ context.Context, _ string) (*primary.Court, error) {
	return m.court, m.err
}

func TestDirectoryAdapterDistricts(t *testing.T) {
	mock := &mockDirectoryService{
		districts: []*primary.District{
			{ID: 1, Name: "Thiruvananthapuram", DisplayOrder: 1},
			{ID: 2, Name: "Kollam", DisplayOrder: 2},
		},
	}
	var buf bytes.Buffer
	adapter := NewDirectoryAdapter(mock, &buf)

	if err := adapter.Districts(context.Background()); err != nil {
		t.Fatalf("Districts() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Thiruvananthapuram") || !strings.Contains(out, "Kollam") {
		t.Errorf("output = %q", out)
	}
}

func TestDirectoryAdapterCourts(t *testing.T) {
	mock := &mockDirectoryService{
		courts: []*primary.Court{
			{ID: 1, Name: "FTSC Attingal", Type: "FTSC", DistrictName: "Thiruvananthapuram"},
		},
	}
	var buf bytes.Buffer
	adapter := NewDirectoryAdapter(mock, &buf)

	if err := adapter.Courts(context.Background(), "FTSC"); err != nil {
		t.Fatalf("Courts() error = %v", err)
	}
	if !strings.Contains(buf.String(), "FTSC Attingal") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDirectoryAdapterCourtsEmpty(t *testing.T) {
	var buf bytes.Buffer
	adapter := NewDirectoryAdapter(&mockDirectoryService{}, &buf)

	if err := adapter.Courts(context.Background(), "SPC"); err != nil {
		t.Fatalf("Courts() error = %v", err)
	}
	if !strings.Contains(buf.String(), "No SPC courts found") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestDirectoryAdapterInfo(t *testing.T) {
	mock := &mockDirectoryService{
		court: &primary.Court{ID: 1, Name: "SPC TVM", Type: "SPC", DistrictName: "Thiruvananthapuram"},
	}
	var buf bytes.Buffer
	adapter := NewDirectoryAdapter(mock, &buf)

	if err := adapter.Info(context.Background(), "SPC TVM"); err != nil {
		t.Fatalf("Info() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Court:    SPC TVM") || !strings.Contains(out, "Type:     SPC") {
		t.Errorf("output = %q", out)
	}
}
