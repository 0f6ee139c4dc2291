package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/neko-neko-nyan/regpath/pkg/memreg"
	"github.com/neko-neko-nyan/regpath/pkg/regpath"
)

// resetFlags restores every global flag to its default between test cases
func resetFlags(t *testing.T) {
	t.Helper()
	storeFile = ""
	remoteHost = ""
	verbose = false
	quiet = false
	jsonOut = false
	setType = ""
	mkdirParents = true
	mkdirExistOK = true
	deleteRecursive = false
}

// seedStore writes a store image with a small known tree and returns its path
func seedStore(t *testing.T) string {
	t.Helper()

	store := memreg.New()
	reg := regpath.New(store)

	p, err := reg.Resolve(`HKLM\Software\App`)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := p.Mkdir(nil); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := p.SetValue("Version", "1.2.3"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if err := p.SetValue("Port", 8080); err != nil {
		t.Fatalf("set value: %v", err)
	}
	sub, err := reg.Resolve(`HKLM\Software\App\Settings`)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if err := sub.Mkdir(nil); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	file := filepath.Join(t.TempDir(), "store.img")
	if err := store.SaveImage(file); err != nil {
		t.Fatalf("save image: %v", err)
	}
	return file
}

// captureOutput captures stdout while running a function
func captureOutput(t *testing.T, fn func() error) (string, error) {
	t.Helper()

	origStdout := os.Stdout

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fnErr := fn()

	w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	return buf.String(), fnErr
}

// assertJSON checks that output is valid JSON
func assertJSON(t *testing.T, output string) {
	t.Helper()
	var result interface{}
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Errorf("invalid JSON output: %v\nOutput: %s", err, output)
	}
}

// assertContains checks that output contains all expected strings
func assertContains(t *testing.T, output string, expected []string) {
	t.Helper()
	for _, want := range expected {
		if !strings.Contains(output, want) {
			t.Errorf("output missing expected string %q\nGot: %s", want, output)
		}
	}
}

// assertNotContains checks that output doesn't contain unwanted strings
func assertNotContains(t *testing.T, output string, unwanted []string) {
	t.Helper()
	for _, dont := range unwanted {
		if strings.Contains(output, dont) {
			t.Errorf("output contains unwanted string %q\nGot: %s", dont, output)
		}
	}
}
