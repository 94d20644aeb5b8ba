package blockpool

import "testing"

func TestErrStrPositional(t *testing.T) {
	cases := []struct {
		code ErrCode
		want string
	}{
		{OK, "OK"},
		{NOMEM, "No available memory for last allocation"},
		{TOOBIG, "Requested memory allocation to big for memory spaces"},
		{UNKNOWNPOINTER, "Referenced memory not in mblib space"},
		{MAPCORRUPT, "Map space is corrupted"},
	}
	for _, c := range cases {
		got, ok := ErrStr(c.code)
		if !ok || got != c.want {
			t.Errorf("ErrStr(%d) = %q, %v; want %q, true", c.code, got, ok, c.want)
		}
	}
}

func TestErrStrOutOfRange(t *testing.T) {
	if _, ok := ErrStr(errLast); ok {
		t.Errorf("expected errLast to be out of range")
	}
	if _, ok := ErrStr(ErrCode(-1)); ok {
		t.Errorf("expected negative code to be out of range")
	}
}

func TestErrCodeImplementsError(t *testing.T) {
	var err error = MAPCORRUPT
	if err.Error() != "Map space is corrupted" {
		t.Errorf("unexpected Error() text: %q", err.Error())
	}
}
