package config_test

import (
	"testing"

	"github.com/go-test/deep"
	"gopkg.in/yaml.v3"

	"github.com/funvibe/rscript/internal/config"
)

// strictFixtureYAML mirrors the table-driven CompilerOptions
// combinations a checker/emitter conformance suite would load per
// test case, the same way the teacher decodes its own funxy.yaml
// extension config via yaml.v3 rather than constructing structs by
// hand in test code.
const strictFixtureYAML = `
strict: true
target: 4
module: 2
`

func TestCompilerOptions_DecodesFromYAMLFixture(t *testing.T) {
	var opts config.CompilerOptions
	if err := yaml.Unmarshal([]byte(strictFixtureYAML), &opts); err != nil {
		t.Fatalf("decoding fixture: %s", err)
	}

	want := config.CompilerOptions{
		Strict: true,
		Target: config.ESNext,
		Module: config.ModuleESNext,
	}
	if diff := deep.Equal(opts, want); diff != nil {
		t.Fatalf("decoded options differ from expected: %v", diff)
	}
}

func TestDefaultOptionsEnableStrict(t *testing.T) {
	opts := config.Default()
	if !opts.Strict {
		t.Fatalf("expected Default() to enable Strict")
	}
	if !opts.StrictNullChecksEnabled() {
		t.Fatalf("expected Strict to imply strict null checks")
	}
	if !opts.NoImplicitAnyEnabled() {
		t.Fatalf("expected Strict to imply noImplicitAny")
	}
}

func TestStrictSubFlagsCanBeEnabledIndependently(t *testing.T) {
	opts := config.CompilerOptions{StrictNullChecks: true}
	if !opts.StrictNullChecksEnabled() {
		t.Fatalf("expected explicit StrictNullChecks to enable the effective check without Strict")
	}
	if opts.NoImplicitAnyEnabled() {
		t.Fatalf("expected NoImplicitAny to stay disabled when only StrictNullChecks is set")
	}
}
