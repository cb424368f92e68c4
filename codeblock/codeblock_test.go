package codeblock

import (
	"reflect"
	"testing"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		text string
		want Dialect
	}{
		{"int main() {\n}\n", DialectBrace},
		{"def f():\n    return 1\n", DialectIndent},
		{"hello\nworld\n", DialectLineBased},
		// A double colon is not a block header.
		{"std::cout\nnamespace::\n", DialectLineBased},
		// Braces win over colons.
		{"def f():\n    d = {}\n", DialectBrace},
	}
	for _, tt := range tests {
		if got := Detect(tt.text); got != tt.want {
			t.Errorf("Detect(%q) = %v, want %v", tt.text, got, tt.want)
		}
	}
}

func TestAnalyze_LineBased(t *testing.T) {
	got := Analyze("hello\n\n  world  \n")
	want := []string{"hello", "world"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_Blank(t *testing.T) {
	if got := Analyze("   \n\t\n"); got != nil {
		t.Errorf("Analyze(blank) = %v, want nil", got)
	}
}

func TestAnalyze_IndentSimple(t *testing.T) {
	got := Analyze("def f():\n    return 1\n")
	want := []string{"def f(): return 1"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_IndentProgram(t *testing.T) {
	text := `import os
from sys import path

def main():
    x = 1
    return x

print(main())
`
	got := Analyze(text)
	want := []string{
		"import os",
		"from sys import path",
		"def main(): x = 1 return x",
		"print(main())",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_IndentNested(t *testing.T) {
	text := `class A:
    def f(self):
        return 1
    def g(self):
        return 2
`
	got := Analyze(text)
	want := []string{
		"class A:",
		"def f(self): return 1",
		"def g(self): return 2",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_Brace(t *testing.T) {
	text := `#include <stdio.h>

int main() {
    printf("hi");
    return 0;
}
`
	got := Analyze(text)
	want := []string{
		"#include <stdio.h>",
		"int main()",
		`{ printf("hi"); return 0; }`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_BraceMidBlockDirective(t *testing.T) {
	// A directive inside an open block stays with the block instead of
	// jumping ahead of the code that precedes it.
	text := `int main() {
#if DEBUG
    log();
#endif
    return 0;
}
`
	got := Analyze(text)
	want := []string{
		"int main()",
		"{ #if DEBUG log(); #endif return 0; }",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestAnalyze_BraceUnbalanced(t *testing.T) {
	got := Analyze("void f() {\n    g();\n")
	want := []string{"void f() { g();"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Analyze() = %v, want %v", got, want)
	}
}

func TestExtractSpan(t *testing.T) {
	prefix, span, suffix, ok := extractSpan(`int main() { printf("hi"); return 0; }`)
	if !ok {
		t.Fatal("extractSpan() ok = false")
	}
	if prefix != "int main()" {
		t.Errorf("prefix = %q", prefix)
	}
	if span != `{ printf("hi"); return 0; }` {
		t.Errorf("span = %q", span)
	}
	if suffix != "" {
		t.Errorf("suffix = %q", suffix)
	}
}

func TestExtractSpan_ComparisonDoesNotBlock(t *testing.T) {
	// The lone '<' must not prevent the enclosing pair from matching.
	_, span, _, ok := extractSpan("while (i < n) { i++; }")
	if !ok {
		t.Fatal("extractSpan() ok = false")
	}
	if span != "{ i++; }" {
		t.Errorf("span = %q, want %q", span, "{ i++; }")
	}
}

func TestExtractSpan_NoPairs(t *testing.T) {
	if _, _, _, ok := extractSpan("no pairs here"); ok {
		t.Error("extractSpan() ok = true, want false")
	}
}
