package netx

import "testing"

func TestIsLoopbackHost(t *testing.T) {
	cases := []struct {
		host string
		want bool
	}{
		{"localhost", true},
		{"LOCALHOST", true},
		{"127.0.0.1", true},
		{"127.0.0.1:3000", true},
		{"::1", true},
		{"app.villagesamaj.org", false},
		{"192.168.1.20", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsLoopbackHost(tc.host); got != tc.want {
			t.Errorf("IsLoopbackHost(%q) = %v, want %v", tc.host, got, tc.want)
		}
	}
}

func TestResolveOrigin(t *testing.T) {
	if got := ResolveOrigin("localhost:5173"); got != LocalOrigin {
		t.Errorf("expected local origin for loopback host, got %q", got)
	}
	if got := ResolveOrigin("app.villagesamaj.org"); got != DeployedOrigin {
		t.Errorf("expected deployed origin, got %q", got)
	}
}
