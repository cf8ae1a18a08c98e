package sat

import "testing"

func TestLBool_Opposite(t *testing.T) {
	cases := []struct {
		in   LBool
		want LBool
	}{
		{True, False},
		{False, True},
		{Unknown, Unknown},
	}
	for _, c := range cases {
		if got := c.in.Opposite(); got != c.want {
			t.Errorf("%s.Opposite() = %s, want %s", c.in, got, c.want)
		}
	}
}

func TestLift(t *testing.T) {
	if Lift(true) != True {
		t.Errorf("Lift(true) = %s, want true", Lift(true))
	}
	if Lift(false) != False {
		t.Errorf("Lift(false) = %s, want false", Lift(false))
	}
}

func TestLBool_String(t *testing.T) {
	cases := map[LBool]string{True: "true", False: "false", Unknown: "unknown"}
	for l, want := range cases {
		if got := l.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", l, got, want)
		}
	}
}
