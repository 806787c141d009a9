package command

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestListCommand(t *testing.T) {
	res := runCLI(t, "", "list")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	lines := strings.Split(strings.TrimSpace(res.stdout), "\n")
	if len(lines) != 8 || lines[0] != "caesar" {
		t.Errorf("stdout = %q", res.stdout)
	}

	res = runCLI(t, "", "-o", "json", "list")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	var infos []cipherInfo
	if err := json.Unmarshal([]byte(res.stdout), &infos); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, info := range infos {
		if info.Description == "" {
			t.Errorf("%s has no description", info.Type)
		}
	}

	res = runCLI(t, "", "-o", "table", "list")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "TYPE") {
		t.Errorf("table output = %q", res.stdout)
	}
}

func TestVersionCommand(t *testing.T) {
	res := runCLI(t, "", "-o", "json", "version")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}

	var got map[string]string
	if err := json.Unmarshal([]byte(res.stdout), &got); err != nil {
		t.Fatalf("json.Unmarshal() error = %v", err)
	}
	for _, key := range []string{"version", "commit", "go_version", "platform"} {
		if got[key] == "" {
			t.Errorf("%s missing from %v", key, got)
		}
	}

	res = runCLI(t, "", "version")
	if res.err != nil {
		t.Fatalf("Run() error = %v", res.err)
	}
	if !strings.HasPrefix(res.stdout, "cipherkit ") {
		t.Errorf("stdout = %q", res.stdout)
	}
}
