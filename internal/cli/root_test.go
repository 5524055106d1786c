package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/danieljhkim/stack-select/internal/config"
)

func TestRootCmd_ExposesSubcommands(t *testing.T) {
	paths := config.NewPaths(t.TempDir())
	cmd := NewRootCmd(func() *config.Paths { return paths })

	want := map[string]bool{"services": false, "stack": false, "setting": false}
	for _, sub := range cmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestRootCmd_EndToEnd(t *testing.T) {
	paths := config.NewPaths(t.TempDir())

	run := func(args ...string) string {
		t.Helper()
		cmd := NewRootCmd(func() *config.Paths { return paths })
		buf := &bytes.Buffer{}
		cmd.SetOut(buf)
		cmd.SetErr(buf)
		cmd.SetArgs(args)
		if err := cmd.Execute(); err != nil {
			t.Fatalf("%v returned error: %v\n%s", args, err, buf.String())
		}
		return buf.String()
	}

	run("setting", "set", "stack", "HDP-1.3")

	out := run("services", "check", "--select", "hbase", "--deselect", "hive")
	if !strings.Contains(out, "pending=confirm-monitoring") {
		t.Fatalf("unexpected check output:\n%s", out)
	}

	out = run("services", "list", "--deselect", "hbase,hive")
	if !strings.Contains(out, "==> HDP-1.3") {
		t.Fatalf("settings stack not used:\n%s", out)
	}
	if !strings.Contains(out, "[ ] ZOOKEEPER") {
		t.Fatalf("pre-2.0 ZooKeeper should drop with HBase and Hive:\n%s", out)
	}
}
