package extract

import (
	"regexp"
	"strings"
)

// The macro dump is newline-separated "#define NAME ..." lines. Lines the
// classifier cannot shape are dropped silently; the dump routinely carries
// compiler-internal noise that is not worth surfacing.
var (
	funcLikeMacroRe = regexp.MustCompile(`^#define ([A-Za-z_]\w*)\(([^)]*)\)[ \t]*(.*)$`)
	valueMacroRe    = regexp.MustCompile(`^#define ([A-Za-z_]\w*)[ \t]+(.*\S)[ \t]*$`)
	bareMacroRe     = regexp.MustCompile(`^#define ([A-Za-z_]\w*)[ \t]*$`)
	pointerCastRe   = regexp.MustCompile(`^\(\(\s*([A-Za-z_][\w:]*)\s*\*\s*\)\s*(.+?)\s*\)$`)
	reservedNameRe  = regexp.MustCompile(`^_[A-Z]`)
)

// expressionOperators are the arithmetic, bitwise, and shift operator
// characters whose presence classifies a value as an expression.
const expressionOperators = "+-*/%&|^~<>"

// ClassifyMacros classifies each definition line of a macro dump into a
// macro declaration, applying the reserved-name filter and an optional
// name-prefix allowlist. Output preserves dump line order.
func ClassifyMacros(dump string, prefixes []string) []Declaration {
	var decls []Declaration

	for _, line := range strings.Split(dump, "\n") {
		line = strings.TrimRight(line, "\r")
		if !strings.HasPrefix(line, "#define") {
			continue
		}

		name, macro := classifyLine(line)
		if macro == nil {
			continue
		}
		if isReservedName(name) || !matchesPrefix(name, prefixes) {
			continue
		}

		decls = append(decls, Declaration{
			Kind:  DeclMacro,
			Name:  name,
			Macro: macro,
		})
	}

	return decls
}

// classifyLine shapes one #define line. A nil macro means the line is
// unparsable and should be dropped.
func classifyLine(line string) (string, *MacroDecl) {
	// Function-like requires the parenthesis to hug the name; a space
	// before it makes the parenthesis part of the value instead.
	if m := funcLikeMacroRe.FindStringSubmatch(line); m != nil {
		var args []string
		for _, arg := range strings.Split(m[2], ",") {
			arg = strings.TrimSpace(arg)
			if arg != "" {
				args = append(args, arg)
			}
		}
		return m[1], &MacroDecl{
			Kind: MacroFunctionLike,
			Raw:  strings.TrimSpace(line[len("#define "):]),
			Args: args,
			Body: strings.TrimSpace(m[3]),
		}
	}

	if m := valueMacroRe.FindStringSubmatch(line); m != nil {
		return m[1], classifyValue(m[2])
	}

	if m := bareMacroRe.FindStringSubmatch(line); m != nil {
		return m[1], &MacroDecl{Kind: MacroSimpleValue}
	}

	return "", nil
}

// classifyValue buckets a macro's value text: a parenthesized pointer cast,
// an operator-bearing expression, or a simple value.
func classifyValue(value string) *MacroDecl {
	if m := pointerCastRe.FindStringSubmatch(value); m != nil {
		return &MacroDecl{
			Kind:     MacroTypeCast,
			Raw:      value,
			CastType: m[1],
			CastExpr: m[2],
		}
	}
	if strings.ContainsAny(value, expressionOperators) {
		return &MacroDecl{Kind: MacroExpression, Raw: value, Value: value}
	}
	return &MacroDecl{Kind: MacroSimpleValue, Raw: value, Value: value}
}

// isReservedName reports whether a macro name follows the reserved or
// compiler-builtin spelling conventions. Reserved names are excluded
// regardless of any configured prefix allowlist.
func isReservedName(name string) bool {
	if strings.HasPrefix(name, "__") && strings.HasSuffix(name, "__") {
		return true
	}
	return reservedNameRe.MatchString(name)
}

// matchesPrefix applies the caller's prefix allowlist. An empty allowlist
// admits every name.
func matchesPrefix(name string, prefixes []string) bool {
	if len(prefixes) == 0 {
		return true
	}
	for _, prefix := range prefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}
