package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifySection(t *testing.T) {
	tests := []struct {
		name  string
		label string
		want  SectionKind
	}{
		{
			name:  "pipe detail summary",
			label: "Pipe Detail Summary",
			want:  KindPipeDetail,
		},
		{
			name:  "pipe elevations",
			label: "Pipe Elevations",
			want:  KindElevation,
		},
		{
			name:  "transient data table",
			label: "Transient Data Table",
			want:  KindTransient,
		},
		{
			name:  "branch table",
			label: "Branch Table",
			want:  KindBranch,
		},
		{
			name:  "pump table",
			label: "Pump Table",
			want:  KindPump,
		},
		{
			name:  "valve table",
			label: "Valve Table",
			want:  KindValve,
		},
		{
			name:  "control valve wins over valve",
			label: "Control Valve Table",
			want:  KindControlValve,
		},
		{
			name:  "assigned pressure table",
			label: "Assigned Pressure Table",
			want:  KindAssignedPressure,
		},
		{
			name:  "check valve is a generic component table",
			label: "Check Valve Table",
			want:  KindGenericTable,
		},
		{
			name:  "reservoir table",
			label: "Reservoir Table",
			want:  KindGenericTable,
		},
		{
			name:  "case and whitespace tolerant",
			label: "  PIPE   detail   SUMMARY  ",
			want:  KindPipeDetail,
		},
		{
			name:  "trailing punctuation tolerant",
			label: "Pump Table:",
			want:  KindPump,
		},
		{
			name:  "unknown label",
			label: "Scenario Notes",
			want:  KindUnrecognized,
		},
		{
			name:  "empty label",
			label: "",
			want:  KindUnrecognized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifySection(tt.label))
		})
	}
}

func TestClassifySection_Deterministic(t *testing.T) {
	// Same label, same kind, every time.
	for i := 0; i < 3; i++ {
		assert.Equal(t, KindPump, ClassifySection("Pump Table"))
	}
}

func TestCanonicalName(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Pipe Detail Summary", "Pipe_Detail_Summary"},
		{"  Branch   Table ", "Branch_Table"},
		{"*** Pump Table ***", "Pump_Table"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CanonicalName(tt.label))
	}
}

func TestSectionKind_String(t *testing.T) {
	assert.Equal(t, "PipeDetail", KindPipeDetail.String())
	assert.Equal(t, "Unrecognized", KindUnrecognized.String())
	assert.Equal(t, "Unrecognized", SectionKind(99).String())
}
