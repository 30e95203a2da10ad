package printer_test

import (
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/funvibe/rscript/internal/arena"
	"github.com/funvibe/rscript/internal/binder"
	"github.com/funvibe/rscript/internal/diagnostic"
	"github.com/funvibe/rscript/internal/intern"
	"github.com/funvibe/rscript/internal/parser"
	"github.com/funvibe/rscript/internal/printer"
)

// Each fixture is a txtar archive with an "input.ts" file (stripped of
// its types and re-emitted) and an "expected.ts" file (the emitted
// text it must match exactly), the same two-sections-per-case shape
// the teacher's own multi-file test fixtures use for round-trip golden
// tests.
const strippingFixtures = `
-- case: variable declaration --
-- input.ts --
let count: number = 1;
-- expected.ts --
let count = 1;
-- case: function declaration --
-- input.ts --
function add(a: number, b: number): number {
  return a + b;
}
-- expected.ts --
function add(a, b) {
  return a + b;
}
-- case: for loop --
-- input.ts --
for (let i: number = 0; i < 3; i = i + 1) {
  log(i);
}
-- expected.ts --
for (let i = 0; i < 3; i = i + 1) {
  log(i);
}
-- case: for-of loop --
-- input.ts --
for (const item of items) {
  log(item);
}
-- expected.ts --
for (const item of items) {
  log(item);
}
-- case: for-in loop --
-- input.ts --
for (const key in obj) {
  log(key);
}
-- expected.ts --
for (const key in obj) {
  log(key);
}
-- case: do-while loop --
-- input.ts --
do {
  step();
} while (running);
-- expected.ts --
do {
  step();
} while (running);
-- case: switch statement --
-- input.ts --
switch (x) {
  case 1:
    log(x);
    break;
  default:
    log(y);
}
-- expected.ts --
switch (x) {
  case 1:
    log(x);
    break;
  default:
    log(y);
}
-- case: try/catch/finally --
-- input.ts --
try {
  risky();
} catch (e: unknown) {
  handle(e);
} finally {
  cleanup();
}
-- expected.ts --
try {
  risky();
}
catch (e) {
  handle(e);
}
finally {
  cleanup();
}
-- case: throw statement --
-- input.ts --
throw err;
-- expected.ts --
throw err;
-- case: enum declaration --
-- input.ts --
enum Color { Red, Green, Blue }
-- expected.ts --
const Color = {
  Red: 0,
  Green: 1,
  Blue: 2,
};
-- case: import and export --
-- input.ts --
import { a, b as c } from "mod";
export { a, c as d };
-- expected.ts --
import { a, b as c } from "mod";
export { a, c as d };
`

func TestEmitSourceFile_GoldenRoundTrip(t *testing.T) {
	arc := txtar.Parse([]byte(strippingFixtures))

	var input, expected string
	for _, f := range arc.Files {
		switch f.Name {
		case "input.ts":
			input = string(f.Data)
		case "expected.ts":
			expected = string(f.Data)
			runGoldenCase(t, input, expected)
		}
	}
}

func runGoldenCase(t *testing.T, input, expected string) {
	t.Helper()

	a := arena.New()
	in := intern.New()
	diags := &diagnostic.Collection{}
	sf := parser.ParseSourceFile(a, in, diags, "golden.ts", input)
	if diags.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", diags.Items())
	}
	b := binder.New(in, diags, "golden.ts")
	b.BindSourceFile(sf)

	got := printer.EmitSourceFile(sf, in)
	if got != expected {
		t.Fatalf("emitted text mismatch:\n got:  %q\n want: %q", got, expected)
	}
}
