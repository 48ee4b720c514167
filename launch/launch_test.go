package launch

import (
	"reflect"
	"testing"
)

func TestBuildArgs(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"myterm", []string{"myterm"}},
		{"myterm %U", []string{"myterm"}},
		{"browser %u --new-tab", []string{"browser", "--new-tab"}},
		{"editor --file=%f", []string{"editor"}},
		{"viewer %F %i", []string{"viewer"}},
		{"tool --scale=100%%", []string{"tool", "--scale=100%"}},
		{"tool 100%", []string{"tool", "100%"}},
	}
	for _, tt := range tests {
		got, err := BuildArgs(tt.in)
		if err != nil {
			t.Errorf("BuildArgs(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("BuildArgs(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildArgsEmpty(t *testing.T) {
	for _, in := range []string{"", "  ", "%U"} {
		if _, err := BuildArgs(in); err == nil {
			t.Errorf("BuildArgs(%q): want error for an effectively empty line", in)
		}
	}
}

func TestLaunchBadCommand(t *testing.T) {
	s := NewService()
	if _, err := s.Launch("/nonexistent/binary-for-test"); err == nil {
		t.Error("launching a missing binary should fail")
	}
	if _, err := s.Launch(""); err == nil {
		t.Error("launching an empty exec line should fail")
	}
}

func TestLaunchTracksStartupID(t *testing.T) {
	s := NewService()
	id, err := s.Launch("/bin/true")
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("launch returned an empty startup id")
	}
	if !s.Pending(id) {
		t.Error("fresh startup id should be pending")
	}

	s.CancelStartupNotification(id)
	if s.Pending(id) {
		t.Error("cancelled startup id still pending")
	}
	// cancelling again, or cancelling garbage, must not panic or block
	s.CancelStartupNotification(id)
	s.CancelStartupNotification("")
	s.CancelStartupNotification("never-issued")
}
