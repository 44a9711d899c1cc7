package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"
)

const renderTestSpec = `kind = "line"
title = "Build Times"
seed = 42
labels = ["v1", "v2", "v3"]

[[series]]
name = "ci"
values = [118, 104, 96]
`

func writeTestSpec(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

func TestRenderCommand(t *testing.T) {
	spec := writeTestSpec(t, "build.toml", renderTestSpec)
	out := filepath.Join(t.TempDir(), "build.svg")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", spec, "-o", out, "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("<svg")) {
		t.Errorf("output should be an SVG document, got %q", data[:min(len(data), 20)])
	}
}

func TestRenderCommandMultipleFormats(t *testing.T) {
	spec := writeTestSpec(t, "build.toml", renderTestSpec)
	base := filepath.Join(t.TempDir(), "build")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", spec, "-o", base, "-f", "svg,json", "--no-cache"})

	if err := root.Execute(); err != nil {
		t.Fatalf("render command failed: %v", err)
	}

	for _, ext := range []string{".svg", ".json"} {
		if _, err := os.Stat(base + ext); err != nil {
			t.Errorf("expected %s%s to exist: %v", base, ext, err)
		}
	}
}

func TestRenderCommandInvalidFormat(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", "whatever.toml", "-f", "bmp"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("render with an unknown format should fail")
	}
}

func TestRenderCommandMissingSpec(t *testing.T) {
	out := filepath.Join(t.TempDir(), "x.svg")

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetArgs([]string{"render", filepath.Join(t.TempDir(), "missing.toml"), "-o", out, "--no-cache"})
	root.SetErr(io.Discard)
	root.SetOut(io.Discard)

	if err := root.Execute(); err == nil {
		t.Error("render with a missing spec file should fail")
	}
}

func TestWriteArtifacts(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "traffic.toml")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{
			"svg":  []byte("<svg/>"),
			"json": []byte("{}"),
		},
		formats:  []string{"svg", "json"},
		input:    input,
		datasets: 2,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	for _, ext := range []string{".svg", ".json"} {
		path := filepath.Join(dir, "traffic"+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("expected %s to exist: %v", path, err)
		}
	}
}

func TestWriteArtifactsSingleOutput(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "custom-name.svg")

	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{"svg": []byte("<svg/>")},
		formats:   []string{"svg"},
		input:     "ignored.toml",
		output:    out,
	})
	if err != nil {
		t.Fatalf("writeArtifacts: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Errorf("single-format output should land exactly at -o: %v", err)
	}
}

func TestWriteArtifactsMissingFormat(t *testing.T) {
	err := writeArtifacts(artifactWriteParams{
		artifacts: map[string][]byte{},
		formats:   []string{"svg"},
		input:     "traffic.toml",
	})
	if err == nil {
		t.Error("writeArtifacts should fail when an artifact is missing")
	}
}
