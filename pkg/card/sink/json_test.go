package sink

import (
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/cardfold/pkg/card/layout"
)

func TestRenderJSON_RoundTrip(t *testing.T) {
	plan := testPlan(t, layout.MessageSpec{Text: "round and round", Tier: layout.TierMedium})

	data, err := RenderJSON(plan)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}

	got, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("ParseJSON error: %v", err)
	}
	if !reflect.DeepEqual(got, plan) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, plan)
	}
}

func TestRenderJSON_Fields(t *testing.T) {
	plan := testPlan(t, layout.MessageSpec{Tier: layout.TierMedium})

	data, err := RenderJSON(plan)
	if err != nil {
		t.Fatalf("RenderJSON error: %v", err)
	}
	out := string(data)

	for _, field := range []string{`"version"`, `"front_art"`, `"fold_x"`, `"flourishes"`, `"inside_right"`, `"guides"`} {
		if !strings.Contains(out, field) {
			t.Errorf("export missing field %s", field)
		}
	}
}

func TestParseJSON_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", "{{{"},
		{"wrong version", `{"version": 99, "plan": {}}`},
		{"missing plan", `{"version": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON([]byte(tt.data)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}
