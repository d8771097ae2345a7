package ui

import (
	"bytes"
	"os"
	"testing"
)

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a bytes.Buffer is never a TTY")
	}
}

func TestIsTTY_DevNull(t *testing.T) {
	f, err := os.Open(os.DevNull)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if IsTTY(f) {
		t.Error(os.DevNull, "is never a TTY")
	}
}

func TestDetectNoColor(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	if !DetectNoColor() {
		t.Error("NO_COLOR set (even empty) should disable color per no-color.org")
	}
	os.Unsetenv("NO_COLOR")
	if DetectNoColor() {
		t.Error("unset NO_COLOR should not disable color")
	}
}
