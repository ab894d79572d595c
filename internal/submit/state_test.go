package submit

import (
	"testing"

	"napt/internal/napkin"
)

func TestRequestState_Variants(t *testing.T) {
	var zero RequestState
	if zero.Phase() != PhaseIdle {
		t.Fatalf("zero value phase = %v, want idle", zero.Phase())
	}

	if Loading().Phase() != PhaseLoading {
		t.Fatalf("Loading phase = %v, want loading", Loading().Phase())
	}

	success := Succeeded(napkin.ThoughtResponse{ThoughtID: "abc"})
	resp, ok := success.Response()
	if !ok || resp.ThoughtID != "abc" {
		t.Fatalf("Response = %#v ok=%v, want thoughtId=abc", resp, ok)
	}
	if success.Message() != "" {
		t.Fatalf("success Message = %q, want empty", success.Message())
	}

	failed := Failed("boom")
	if failed.Phase() != PhaseError || failed.Message() != "boom" {
		t.Fatalf("Failed = %v %q, want error boom", failed.Phase(), failed.Message())
	}
	if _, ok := failed.Response(); ok {
		t.Fatalf("failed Response ok = true, want false")
	}

	// The error message is never empty.
	if Failed("").Message() == "" {
		t.Fatalf("Failed(\"\") produced empty message")
	}
}

func TestPhase_String(t *testing.T) {
	names := map[Phase]string{
		PhaseIdle:    "idle",
		PhaseLoading: "loading",
		PhaseSuccess: "success",
		PhaseError:   "error",
	}
	for phase, want := range names {
		if got := phase.String(); got != want {
			t.Fatalf("Phase(%d).String() = %q, want %q", phase, got, want)
		}
	}
}
