package logging

import (
	"context"
	"testing"
)

func TestWithBrief(t *testing.T) {
	ctx := WithBrief(context.Background(), "briefs/opposition.yaml")

	if got := GetBrief(ctx); got != "briefs/opposition.yaml" {
		t.Errorf("GetBrief() = %q, want %q", got, "briefs/opposition.yaml")
	}
}

func TestWithCitationID(t *testing.T) {
	ctx := WithCitationID(context.Background(), "c2")

	if got := GetCitationID(ctx); got != "c2" {
		t.Errorf("GetCitationID() = %q, want %q", got, "c2")
	}
}

func TestGetters_NotPresent(t *testing.T) {
	ctx := context.Background()

	if got := GetBrief(ctx); got != "" {
		t.Errorf("GetBrief() = %q, want empty string", got)
	}
	if got := GetCitationID(ctx); got != "" {
		t.Errorf("GetCitationID() = %q, want empty string", got)
	}
}
