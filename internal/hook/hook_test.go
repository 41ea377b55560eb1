package hook

import (
	"os"
	"os/exec"
	"testing"
)

func TestRunEmptyCommandIsNoop(t *testing.T) {
	r := NewRunner("", true)
	r.Run(Bypass{URL: "http://x/admin"})
	// no panic, no external process — success is simply not crashing.
}

func TestRunSendsPayloadOnStdin(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	tmp, err := os.CreateTemp("", "hook-out-*.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmp.Name())
	tmp.Close()

	r := NewRunner("cat > "+tmp.Name(), true)
	r.Run(Bypass{URL: "http://x/admin", Variation: "/admin/", Status: 200, Size: 5000, Reason: "status_change"})

	data, err := os.ReadFile(tmp.Name())
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("hook command received no stdin payload")
	}
}
