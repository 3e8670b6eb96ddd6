package scenario

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
)

func TestBundledScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("testdata", "*.lua"))
	if err != nil {
		t.Fatalf("glob: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no bundled scenarios")
	}
	for _, path := range paths {
		t.Run(filepath.Base(path), func(t *testing.T) {
			runner := newTestRunner(t, AssertionStrict, &bytes.Buffer{})
			scenario, err := LoadScenarioFromFile(path)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if err := runner.RunScenario(context.Background(), scenario); err != nil {
				t.Fatalf("run: %v", err)
			}
		})
	}
}
