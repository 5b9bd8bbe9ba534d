package output

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/firefly-engineering/rizzo/internal/document"
	"github.com/firefly-engineering/rizzo/internal/system"
)

func sampleDoc(t *testing.T) document.Document {
	t.Helper()
	doc, err := document.Parse([]byte(`{
		"control_repos": ["/repoB", "/repoA"],
		"defaults": {"memory": 2048, "box": "centos/7"},
		"nodes": [{"name": "web", "forwarded_ports": [{"host": 8080, "guest": 80}]}]
	}`))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	return doc
}

func TestParseFormat(t *testing.T) {
	for _, name := range []string{"json", "yaml", "toml"} {
		if f, err := ParseFormat(name); err != nil || string(f) != name {
			t.Errorf("ParseFormat(%q) = (%q, %v)", name, f, err)
		}
	}

	for _, name := range []string{"", "JSON", "xml"} {
		if _, err := ParseFormat(name); err == nil {
			t.Errorf("ParseFormat(%q) should fail", name)
		}
	}
}

func TestEncode_JSON(t *testing.T) {
	data, err := Encode(sampleDoc(t), FormatJSON)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out := string(data)
	if !strings.HasPrefix(out, "{\n  \"control_repos\": [\n    \"/repoB\",") {
		t.Errorf("unexpected JSON layout:\n%s", out)
	}
	if !strings.Contains(out, `"host": 8080`) {
		t.Errorf("numbers should be written unquoted:\n%s", out)
	}
	if !strings.HasSuffix(out, "}\n") {
		t.Errorf("JSON output should end with a newline:\n%q", out)
	}
}

func TestEncode_YAML(t *testing.T) {
	data, err := Encode(sampleDoc(t), FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out := string(data)
	for _, want := range []string{"control_repos:\n", "- /repoB\n", "memory: 2048\n", "host: 8080\n"} {
		if !strings.Contains(out, want) {
			t.Errorf("YAML output missing %q:\n%s", want, out)
		}
	}
}

func TestEncode_TOML(t *testing.T) {
	data, err := Encode(sampleDoc(t), FormatTOML)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	out := string(data)
	for _, want := range []string{"control_repos = [", "[defaults]", "memory = 2048", "host = 8080"} {
		if !strings.Contains(out, want) {
			t.Errorf("TOML output missing %q:\n%s", want, out)
		}
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	if _, err := Encode(document.Document{}, Format("xml")); err == nil {
		t.Error("Encode() should reject an unknown format")
	}
}

func TestSink_Write(t *testing.T) {
	var stdout, stderr bytes.Buffer
	fsys := system.NewMockFS()
	sink := &Sink{Stdout: &stdout, Stderr: &stderr, FS: fsys}

	if err := sink.Write(Stdout, []byte("out")); err != nil {
		t.Fatalf("Write(STDOUT) error: %v", err)
	}
	if err := sink.Write(Stderr, []byte("err")); err != nil {
		t.Fatalf("Write(STDERR) error: %v", err)
	}
	if err := sink.Write("/tmp/merged.json", []byte("file")); err != nil {
		t.Fatalf("Write(file) error: %v", err)
	}

	if stdout.String() != "out" {
		t.Errorf("stdout = %q, want %q", stdout.String(), "out")
	}
	if stderr.String() != "err" {
		t.Errorf("stderr = %q, want %q", stderr.String(), "err")
	}
	if data, ok := fsys.GetFile("/tmp/merged.json"); !ok || string(data) != "file" {
		t.Errorf("file contents = %q, %v", data, ok)
	}
}

func TestSink_WriteError(t *testing.T) {
	fsys := system.NewMockFS()
	fsys.WriteFileErr = errors.New("read-only filesystem")
	sink := &Sink{FS: fsys}

	err := sink.Write("/ro/merged.json", []byte("x"))
	if err == nil || !strings.Contains(err.Error(), "/ro/merged.json") {
		t.Errorf("Write() error = %v, want it to name the file", err)
	}
}
