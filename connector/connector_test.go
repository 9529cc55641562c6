package connector

import "testing"

func TestInputPullsCurrentOutputValue(t *testing.T) {
	var out Output[int]
	out.Set(5)

	var in Input[int]
	in.ConnectAndConsumeDataFrom(&out)

	v, err := in.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}

	out.Set(9)
	v, err = in.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 9 {
		t.Fatalf("expected pull-based re-read to return 9, got %d", v)
	}
}

func TestInputGetFailsWhenUnconnected(t *testing.T) {
	var in Input[int]
	if _, err := in.Get(); err == nil {
		t.Fatal("expected error reading an unconnected input")
	}
}

func TestStateStringer(t *testing.T) {
	cases := map[State]string{
		Uninitialized: "UNINITIALIZED",
		Ready:         "READY",
		LastRunValid:  "LAST_RUN_VALID",
	}
	for state, want := range cases {
		if got := state.String(); got != want {
			t.Fatalf("State(%d).String() = %q, want %q", state, got, want)
		}
	}
}
