package header

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/FidelityFramework/Farscape/internal/ast"
	"github.com/FidelityFramework/Farscape/internal/extract"
)

// fakeFrontend serves captured dump text without launching a process.
type fakeFrontend struct {
	astOut   string
	astErr   error
	macroOut string
	macroErr error
}

func (f *fakeFrontend) DumpAST(ctx context.Context, headerPath string) (string, error) {
	return f.astOut, f.astErr
}

func (f *fakeFrontend) DumpMacros(ctx context.Context, headerPath string) (string, error) {
	return f.macroOut, f.macroErr
}

const deviceTree = `{
	"kind": "TranslationUnitDecl",
	"inner": [
		{"kind": "RecordDecl", "name": "Device", "tagUsed": "struct",
		 "loc": {"file": "device.h", "line": 1},
		 "inner": [
			{"kind": "FieldDecl", "name": "id", "type": {"qualType": "int"}, "loc": {"offset": 20}}
		 ]}
	]
}`

func TestParsePipeline(t *testing.T) {
	fe := &fakeFrontend{
		astOut:   deviceTree,
		macroOut: "#define DEVICE_VERSION 3\n",
	}

	result, err := parseWith(context.Background(), fe, Options{
		HeaderPath:    "device.h",
		IncludeMacros: true,
	})
	if err != nil {
		t.Fatalf("parseWith failed: %v", err)
	}

	if len(result.Declarations) != 2 {
		t.Fatalf("expected 2 declarations, got %d", len(result.Declarations))
	}
	if result.Declarations[0].Kind != extract.DeclStruct {
		t.Errorf("AST declarations should come first, got %v", result.Declarations[0].Kind)
	}
	if result.Declarations[1].Kind != extract.DeclMacro || result.Declarations[1].Name != "DEVICE_VERSION" {
		t.Errorf("macros should follow AST declarations, got %+v", result.Declarations[1])
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}
}

func TestParseMacroPassFailureIsSoft(t *testing.T) {
	fe := &fakeFrontend{
		astOut:   deviceTree,
		macroErr: fmt.Errorf("exit status 1"),
	}

	result, err := parseWith(context.Background(), fe, Options{
		HeaderPath:    "device.h",
		IncludeMacros: true,
	})
	if err != nil {
		t.Fatalf("macro pass failure must not abort the parse: %v", err)
	}
	if len(result.Declarations) != 1 {
		t.Errorf("AST declarations should survive, got %d", len(result.Declarations))
	}
	if len(result.Warnings) != 1 {
		t.Fatalf("expected 1 warning, got %v", result.Warnings)
	}
}

func TestParseASTPassFailureIsFatal(t *testing.T) {
	fe := &fakeFrontend{astErr: fmt.Errorf("exit status 1")}

	_, err := parseWith(context.Background(), fe, Options{HeaderPath: "device.h"})
	if err == nil {
		t.Fatal("AST pass failure must abort the parse")
	}
}

func TestParseBadDumpIsFatal(t *testing.T) {
	fe := &fakeFrontend{astOut: "not json"}

	_, err := parseWith(context.Background(), fe, Options{HeaderPath: "device.h"})
	if err == nil {
		t.Fatal("expected decode failure")
	}
	var decodeErr *ast.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected DecodeError, got %T", err)
	}
}

func TestParseEmptyResult(t *testing.T) {
	fe := &fakeFrontend{astOut: `{"kind": "TranslationUnitDecl"}`}

	_, err := parseWith(context.Background(), fe, Options{HeaderPath: "device.h"})
	var emptyErr *EmptyResultError
	if !errors.As(err, &emptyErr) {
		t.Fatalf("expected EmptyResultError, got %v", err)
	}
	if emptyErr.HeaderPath != "device.h" {
		t.Errorf("error should carry the header path, got %q", emptyErr.HeaderPath)
	}
}

func TestParseMacrosDisabled(t *testing.T) {
	fe := &fakeFrontend{
		astOut:   deviceTree,
		macroOut: "#define DEVICE_VERSION 3\n",
	}

	result, err := parseWith(context.Background(), fe, Options{HeaderPath: "device.h"})
	if err != nil {
		t.Fatalf("parseWith failed: %v", err)
	}
	for _, d := range result.Declarations {
		if d.Kind == extract.DeclMacro {
			t.Error("macros must not appear when the macro pass is disabled")
		}
	}
}

func TestParseDeterministic(t *testing.T) {
	fe := &fakeFrontend{
		astOut:   deviceTree,
		macroOut: "#define B 2\n#define A 1\n",
	}
	opts := Options{HeaderPath: "device.h", IncludeMacros: true}

	first, err := parseWith(context.Background(), fe, opts)
	if err != nil {
		t.Fatalf("first parse failed: %v", err)
	}
	second, err := parseWith(context.Background(), fe, opts)
	if err != nil {
		t.Fatalf("second parse failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs should yield identical results")
	}
}

func TestParseMissingHeader(t *testing.T) {
	_, err := Parse(context.Background(), Options{HeaderPath: "does/not/exist.h"})
	if err == nil {
		t.Fatal("expected error for missing header file")
	}
}
