// Package extract builds a normalized declaration model from the frontend's
// decoded AST tree and its preprocessor macro dump.
//
// Only declarations physically defined in the target header are extracted;
// anything pulled in transitively through an #include is filtered out by the
// provenance tracking in extract.go. The model is transient: it is built,
// handed to the consumer, and never mutated afterwards.
package extract

// DeclKind identifies the variant of a Declaration.
type DeclKind string

const (
	// DeclFunction is a free function or function prototype.
	DeclFunction DeclKind = "function"
	// DeclStruct is a struct or union definition.
	DeclStruct DeclKind = "struct"
	// DeclEnum is an enumeration definition.
	DeclEnum DeclKind = "enum"
	// DeclTypedef is a type alias.
	DeclTypedef DeclKind = "typedef"
	// DeclMacro is a preprocessor definition.
	DeclMacro DeclKind = "macro"
	// DeclNamespace is a C++ namespace with its member declarations.
	DeclNamespace DeclKind = "namespace"
	// DeclClass is a C++ class definition.
	DeclClass DeclKind = "class"
)

// Declaration is one extracted declaration. Kind selects which payload
// pointer is populated; exactly one payload is non-nil. Declarations keep
// the order in which they were encountered during traversal; consumers
// rely on that order to reconstruct source layout.
type Declaration struct {
	Kind DeclKind `yaml:"kind" json:"kind"`
	// Name is the declared name. Empty for anonymous structs and enums,
	// which are only emitted when they carry members.
	Name string `yaml:"name" json:"name"`

	Function  *FunctionDecl  `yaml:"function,omitempty" json:"function,omitempty"`
	Struct    *StructDecl    `yaml:"struct,omitempty" json:"struct,omitempty"`
	Enum      *EnumDecl      `yaml:"enum,omitempty" json:"enum,omitempty"`
	Typedef   *TypedefDecl   `yaml:"typedef,omitempty" json:"typedef,omitempty"`
	Macro     *MacroDecl     `yaml:"macro,omitempty" json:"macro,omitempty"`
	Namespace *NamespaceDecl `yaml:"namespace,omitempty" json:"namespace,omitempty"`
	Class     *ClassDecl     `yaml:"class,omitempty" json:"class,omitempty"`
}

// Param is one function or method parameter.
type Param struct {
	// Name is the parameter name, or a positional placeholder when the
	// declaration leaves it anonymous.
	Name string `yaml:"name" json:"name"`
	// Type is the frontend's type spelling for the parameter.
	Type string `yaml:"type" json:"type"`
}

// FunctionDecl describes a function or function prototype.
type FunctionDecl struct {
	// ReturnType is the prefix of the full signature spelling up to the
	// parameter list.
	ReturnType string  `yaml:"return_type" json:"return_type"`
	Params     []Param `yaml:"params,omitempty" json:"params,omitempty"`
	IsStatic   bool    `yaml:"static,omitempty" json:"static,omitempty"`
	IsInline   bool    `yaml:"inline,omitempty" json:"inline,omitempty"`
	IsVariadic bool    `yaml:"variadic,omitempty" json:"variadic,omitempty"`
}

// FieldDecl is one field of a struct, union, or class.
type FieldDecl struct {
	// Name may be empty only for fields of anonymous nested aggregates.
	Name string `yaml:"name" json:"name"`
	// Type is the field's base type with qualifiers and any fixed-size
	// array suffix stripped.
	Type       string `yaml:"type" json:"type"`
	IsConst    bool   `yaml:"const,omitempty" json:"const,omitempty"`
	IsVolatile bool   `yaml:"volatile,omitempty" json:"volatile,omitempty"`
	IsArray    bool   `yaml:"array,omitempty" json:"array,omitempty"`
	// ArrayLen is the fixed array length when IsArray is set.
	ArrayLen int `yaml:"array_len,omitempty" json:"array_len,omitempty"`
}

// StructDecl describes a struct or union definition.
// An empty name with a non-empty field list denotes an anonymous aggregate.
type StructDecl struct {
	Fields  []FieldDecl `yaml:"fields,omitempty" json:"fields,omitempty"`
	IsUnion bool        `yaml:"union,omitempty" json:"union,omitempty"`
}

// EnumValue is one enumeration constant. Values are signed 64-bit so that
// negative constants (interrupt vector numbers and the like) survive intact.
type EnumValue struct {
	Name  string `yaml:"name" json:"name"`
	Value int64  `yaml:"value" json:"value"`
}

// EnumDecl describes an enumeration definition.
type EnumDecl struct {
	Values []EnumValue `yaml:"values,omitempty" json:"values,omitempty"`
	// UnderlyingType is the explicit fixed underlying type, if declared.
	UnderlyingType string `yaml:"underlying_type,omitempty" json:"underlying_type,omitempty"`
}

// TypedefDecl describes a type alias.
type TypedefDecl struct {
	// Underlying is the aliased type spelling, verbatim from the frontend.
	Underlying string `yaml:"underlying" json:"underlying"`
}

// MethodDecl is one method of a C++ class.
type MethodDecl struct {
	Name       string  `yaml:"name" json:"name"`
	ReturnType string  `yaml:"return_type" json:"return_type"`
	Params     []Param `yaml:"params,omitempty" json:"params,omitempty"`
	IsVirtual  bool    `yaml:"virtual,omitempty" json:"virtual,omitempty"`
	IsStatic   bool    `yaml:"static,omitempty" json:"static,omitempty"`
	IsInline   bool    `yaml:"inline,omitempty" json:"inline,omitempty"`
}

// ClassDecl describes a C++ class. Anonymous classes are never emitted.
type ClassDecl struct {
	Fields  []FieldDecl  `yaml:"fields,omitempty" json:"fields,omitempty"`
	Methods []MethodDecl `yaml:"methods,omitempty" json:"methods,omitempty"`
	// IsAbstract is true when any method is pure virtual.
	IsAbstract bool `yaml:"abstract,omitempty" json:"abstract,omitempty"`
}

// NamespaceDecl groups the declarations defined inside a C++ namespace.
// Members appear here only, not duplicated at the top level.
type NamespaceDecl struct {
	Members []Declaration `yaml:"members,omitempty" json:"members,omitempty"`
}

// MacroKind classifies the shape of a macro's right-hand side.
type MacroKind string

const (
	// MacroSimpleValue is a bare value: #define FOO 42
	MacroSimpleValue MacroKind = "value"
	// MacroExpression contains arithmetic, bitwise, or shift operators.
	MacroExpression MacroKind = "expression"
	// MacroFunctionLike takes arguments: #define MAX(a,b) ...
	MacroFunctionLike MacroKind = "function"
	// MacroTypeCast is a parenthesized pointer cast: #define P ((T*) 0x40)
	MacroTypeCast MacroKind = "typecast"
)

// MacroDecl describes one classified #define.
type MacroDecl struct {
	Kind MacroKind `yaml:"kind" json:"kind"`
	// Raw is the right-hand-side text as dumped by the preprocessor.
	Raw string `yaml:"raw" json:"raw"`
	// Value is set for value and expression macros.
	Value string `yaml:"value,omitempty" json:"value,omitempty"`
	// Args and Body are set for function-like macros.
	Args []string `yaml:"args,omitempty" json:"args,omitempty"`
	Body string   `yaml:"body,omitempty" json:"body,omitempty"`
	// CastType and CastExpr are set for pointer-cast macros.
	CastType string `yaml:"cast_type,omitempty" json:"cast_type,omitempty"`
	CastExpr string `yaml:"cast_expr,omitempty" json:"cast_expr,omitempty"`
}
