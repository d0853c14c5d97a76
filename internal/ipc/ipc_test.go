package ipc

import (
	"testing"
)

type fakeController struct {
	status  StatusData
	renames int
	cleans  int
}

func (f *fakeController) Status() StatusData { return f.status }
func (f *fakeController) RenameNow() error   { f.renames++; return nil }
func (f *fakeController) Clean() error       { f.cleans++; return nil }

func startServer(t *testing.T) *fakeController {
	t.Helper()
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	ctrl := &fakeController{
		status: StatusData{
			DaemonRunning:  true,
			Passes:         3,
			RenamesIssued:  7,
			IconListFormat: "mathematician",
			Renumbering:    true,
		},
	}
	server, err := NewServer(ctrl)
	if err != nil {
		t.Fatalf("NewServer error: %v", err)
	}
	if err := server.Start(); err != nil {
		t.Fatalf("Start error: %v", err)
	}
	t.Cleanup(server.Stop)
	return ctrl
}

func TestClientServer_GetStatus(t *testing.T) {
	startServer(t)

	status, err := NewClient().GetStatus()
	if err != nil {
		t.Fatalf("GetStatus error: %v", err)
	}
	if !status.DaemonRunning || status.Passes != 3 || status.RenamesIssued != 7 {
		t.Fatalf("unexpected status: %+v", status)
	}
	if status.IconListFormat != "mathematician" || !status.Renumbering {
		t.Fatalf("unexpected settings in status: %+v", status)
	}
}

func TestClientServer_RenameNowAndClean(t *testing.T) {
	ctrl := startServer(t)

	client := NewClient()
	if err := client.RenameNow(); err != nil {
		t.Fatalf("RenameNow error: %v", err)
	}
	if err := client.Clean(); err != nil {
		t.Fatalf("Clean error: %v", err)
	}
	if ctrl.renames != 1 || ctrl.cleans != 1 {
		t.Fatalf("expected one rename and one clean, got %d and %d", ctrl.renames, ctrl.cleans)
	}
}

func TestClient_ErrorWhenDaemonNotRunning(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	if _, err := NewClient().GetStatus(); err == nil {
		t.Fatal("expected connection error without a daemon")
	}
}
