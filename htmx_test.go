package navshell

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func Test_requestMode(t *testing.T) {
	tests := []struct {
		name         string // description of this test case
		headers      map[string]string
		wantMode     Mode
		wantRetarget bool
	}{
		{
			name:     "Plain request",
			wantMode: ModeFull,
		},
		{
			name:     "htmx request for the content slot",
			headers:  map[string]string{"HX-Request": "true", "HX-Target": "content"},
			wantMode: ModePartial,
		},
		{
			name: "History restore",
			headers: map[string]string{
				"HX-Request":                 "true",
				"HX-Target":                  "content",
				"HX-History-Restore-Request": "true",
			},
			wantMode: ModeFull,
		},
		{
			name:         "htmx request for another element",
			headers:      map[string]string{"HX-Request": "true", "HX-Target": "sidebar"},
			wantMode:     ModeFull,
			wantRetarget: true,
		},
		{
			name:         "htmx request without target",
			headers:      map[string]string{"HX-Request": "true"},
			wantMode:     ModeFull,
			wantRetarget: true,
		},
		{
			name:     "Target header without htmx",
			headers:  map[string]string{"HX-Target": "content"},
			wantMode: ModeFull,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			mode, retarget := requestMode(req, "content")
			if mode != tt.wantMode {
				t.Errorf("requestMode() mode = %v, want %v", mode, tt.wantMode)
			}
			if retarget != tt.wantRetarget {
				t.Errorf("requestMode() retarget = %v, want %v", retarget, tt.wantRetarget)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	for mode, want := range map[Mode]string{ModeFull: "full", ModePartial: "partial", Mode(7): "unknown"} {
		if got := mode.String(); got != want {
			t.Errorf("Mode(%d).String() = %q, want %q", mode, got, want)
		}
	}
}
