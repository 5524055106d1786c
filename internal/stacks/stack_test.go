package stacks

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/stack-select/internal/selection"
)

const sampleCatalog = `name: custom
version: "2.1"
services:
  - name: HDFS
    selected: false
    selectable: true
  - name: HCFS
    display-name: GlusterFS
    selected: true
    selectable: true
  - name: PIG
    selected: true
    installed: true
    selectable: true
    disabled: true
`

func TestRegistry_BuiltInStacksAreValid(t *testing.T) {
	r := NewRegistry()

	names := r.List()
	if len(names) != 2 || names[0] != "HDP-1.3" || names[1] != "HDP-2.0" {
		t.Fatalf("List() = %v", names)
	}

	for _, name := range names {
		s, err := r.Get(name)
		if err != nil {
			t.Fatalf("Get(%q) error: %v", name, err)
		}
		if err := s.Validate(); err != nil {
			t.Errorf("stack %s invalid: %v", name, err)
		}
		if s.Records().Find(selection.HDFS) == nil {
			t.Errorf("stack %s has no HDFS record", name)
		}
	}

	if !r.Has(DefaultStack) {
		t.Errorf("default stack %s not registered", DefaultStack)
	}
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get("HDP-9"); err == nil {
		t.Fatalf("expected error for unknown stack")
	}
	if r.Has("HDP-9") {
		t.Fatalf("Has() = true for unknown stack")
	}
}

func TestStack_RecordsAreFreshPerSession(t *testing.T) {
	s := HDP20Stack()

	first := s.Records()
	first.Find(selection.HDFS).Selected = false

	second := s.Records()
	if !second.Find(selection.HDFS).Selected {
		t.Fatalf("mutating one session's records leaked into the stack definition")
	}
}

func TestStack_RecordsMapFlags(t *testing.T) {
	s, err := Parse([]byte(sampleCatalog))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}

	records := s.Records()
	if got := records.Names(); strings.Join(got, ",") != "HDFS,HCFS,PIG" {
		t.Fatalf("Names() = %v", got)
	}

	hcfs := records.Find(selection.HCFS)
	if hcfs.DisplayName != "GlusterFS" || !hcfs.Selected || !hcfs.CanBeSelected {
		t.Errorf("HCFS record = %+v", *hcfs)
	}
	hdfs := records.Find(selection.HDFS)
	if hdfs.DisplayName != "HDFS" {
		t.Errorf("DisplayName should default to name, got %q", hdfs.DisplayName)
	}
	pig := records.Find(selection.Pig)
	if !pig.Installed || !pig.Disabled {
		t.Errorf("PIG record = %+v", *pig)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "invalid yaml", data: "name: [unterminated"},
		{name: "missing name", data: "version: \"2.0\"\nservices: []\n"},
		{name: "missing version", data: "name: x\nservices: []\n"},
		{name: "bad version", data: "name: x\nversion: trunk\n"},
		{name: "empty service name", data: "name: x\nversion: \"2.0\"\nservices:\n  - selected: true\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse([]byte(tt.data)); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestParse_DuplicateService(t *testing.T) {
	data := "name: x\nversion: \"2.0\"\nservices:\n  - name: HDFS\n  - name: HDFS\n"
	_, err := Parse([]byte(data))
	if !errors.Is(err, selection.ErrDuplicateService) {
		t.Fatalf("expected ErrDuplicateService, got %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(path, []byte(sampleCatalog), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	s, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error: %v", err)
	}
	if s.Name != "custom" || s.Version != "2.1" || len(s.Services) != 3 {
		t.Fatalf("LoadFile() = %+v", *s)
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestStack_EncodeRoundTripsSelection(t *testing.T) {
	s := HDP13Stack()
	records := s.Records()
	records.Find(selection.Pig).Selected = false

	buf := &bytes.Buffer{}
	if err := s.WithRecords(records).Encode(buf); err != nil {
		t.Fatalf("Encode() error: %v", err)
	}

	decoded, err := Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("Parse() error: %v\n%s", err, buf.String())
	}
	if decoded.Records().Find(selection.Pig).Selected {
		t.Errorf("PIG should be unselected after encode:\n%s", buf.String())
	}
	if !s.Records().Find(selection.Pig).Selected {
		t.Errorf("WithRecords must not modify the original stack")
	}
}
