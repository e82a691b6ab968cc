package extract

import (
	"regexp"
	"strconv"
	"strings"
)

// arraySuffixRe matches a trailing fixed-size array suffix in a type
// spelling, e.g. "uint32_t[8]" or "uint32_t [8]".
var arraySuffixRe = regexp.MustCompile(`\s*\[(\d+)\]$`)

// qualifierFlags maps qualifier spellings to the access flags they imply.
// Beyond the standard keywords, vendor hardware-access qualifiers mark
// register fields: read-only spellings imply const+volatile, write and
// read-write spellings imply volatile.
var qualifierFlags = map[string]struct{ isConst, isVolatile bool }{
	"const":    {isConst: true},
	"volatile": {isVolatile: true},
	"__I":      {isConst: true, isVolatile: true},
	"__IM":     {isConst: true, isVolatile: true},
	"__O":      {isVolatile: true},
	"__OM":     {isVolatile: true},
	"__IO":     {isVolatile: true},
	"__IOM":    {isVolatile: true},
}

// parseFieldType derives a field's qualifier flags, array shape, and base
// type from the frontend's type spelling. Qualifier keywords and the array
// suffix are stripped from the recorded type.
func parseFieldType(qualType string) FieldDecl {
	field := FieldDecl{}
	spelling := strings.TrimSpace(qualType)

	if m := arraySuffixRe.FindStringSubmatch(spelling); m != nil {
		field.IsArray = true
		if n, err := strconv.Atoi(m[1]); err == nil {
			field.ArrayLen = n
		}
		spelling = strings.TrimSpace(arraySuffixRe.ReplaceAllString(spelling, ""))
	}

	var kept []string
	for _, tok := range strings.Fields(spelling) {
		if flags, ok := qualifierFlags[tok]; ok {
			field.IsConst = field.IsConst || flags.isConst
			field.IsVolatile = field.IsVolatile || flags.isVolatile
			continue
		}
		kept = append(kept, tok)
	}
	field.Type = strings.Join(kept, " ")

	return field
}
