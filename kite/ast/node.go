package ast

import "reflect"

// Node is implemented by every AST node. The set of nodes is closed:
// consumers switch over the concrete types.
type Node interface {
	Pos() Position
	Kind() Kind
	// Children returns the direct sub-nodes in a fixed order. Absent
	// optional children are skipped.
	Children() []Node
	node()
}

// TypeDecl is a class, interface or annotation type declaration.
type TypeDecl interface {
	BodyDecl
	DeclName() string
	DeclNamePos() Position
	DeclModifiers() []*Modifier
	typeDecl()
}

// BodyDecl is a member of a type body.
type BodyDecl interface {
	Node
	bodyDecl()
}

type Stmt interface {
	Node
	stmt()
}

type Expr interface {
	Node
	expr()
}

// Annotation is one of MarkerAnnotation, SingleMemberAnnotation and
// NormalAnnotation. Annotations are also element values, so they are
// expressions.
type Annotation interface {
	Expr
	AnnotationName() *QualifiedName
	annotation()
}

type Type interface {
	Node
	typ()
}

type Kind int

const (
	KindInvalid Kind = iota

	KindCompilationUnit
	KindPackageDecl
	KindImportDecl
	KindQualifiedName
	KindClassDecl
	KindInterfaceDecl
	KindAnnotationTypeDecl
	KindModifier
	KindFieldDecl
	KindConstantDecl
	KindVariableDeclarator
	KindArrayDim
	KindMethodDecl
	KindInterfaceMethodDecl
	KindAnnotationMemberDecl
	KindConstructorDecl
	KindInitializerDecl
	KindParameter
	KindMarkerAnnotation
	KindSingleMemberAnnotation
	KindNormalAnnotation
	KindMemberValuePair

	KindBlockStmt
	KindLocalVarDeclStmt
	KindEmptyStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindDoStmt
	KindForStmt
	KindForEachStmt
	KindTryStmt
	KindResource
	KindCatchClause
	KindCatchParameter
	KindSwitchStmt
	KindSwitchGroup
	KindSwitchLabel
	KindSynchronizedStmt
	KindLabeledStmt
	KindBreakStmt
	KindContinueStmt
	KindReturnStmt
	KindThrowStmt
	KindAssertStmt
	KindExplicitConstructorInvocation

	KindIntegerLiteralExpr
	KindLongLiteralExpr
	KindDoubleLiteralExpr
	KindCharLiteralExpr
	KindStringLiteralExpr
	KindBooleanLiteralExpr
	KindNullLiteralExpr
	KindNameExpr
	KindFieldAccessExpr
	KindArrayAccessExpr
	KindMethodInvocationExpr
	KindMethodReferenceExpr
	KindObjectCreationExpr
	KindArrayCreationExpr
	KindArrayCreationLevel
	KindArrayInitializerExpr
	KindLambdaExpr
	KindThisExpr
	KindSuperExpr
	KindTypeLiteralExpr
	KindTypeExpr
	KindBinaryExpr
	KindUnaryExpr
	KindAssignExpr
	KindConditionalExpr
	KindCastExpr
	KindInstanceOfExpr
	KindEnclosedExpr

	KindPrimitiveType
	KindClassType
	KindArrayType
	KindWildcardType
	KindVoidType
	KindTypeParameter
	KindExceptionType
)

var kindNames = map[Kind]string{
	KindInvalid:                       "Invalid",
	KindCompilationUnit:               "CompilationUnit",
	KindPackageDecl:                   "PackageDecl",
	KindImportDecl:                    "ImportDecl",
	KindQualifiedName:                 "QualifiedName",
	KindClassDecl:                     "ClassDecl",
	KindInterfaceDecl:                 "InterfaceDecl",
	KindAnnotationTypeDecl:            "AnnotationTypeDecl",
	KindModifier:                      "Modifier",
	KindFieldDecl:                     "FieldDecl",
	KindConstantDecl:                  "ConstantDecl",
	KindVariableDeclarator:            "VariableDeclarator",
	KindArrayDim:                      "ArrayDim",
	KindMethodDecl:                    "MethodDecl",
	KindInterfaceMethodDecl:           "InterfaceMethodDecl",
	KindAnnotationMemberDecl:          "AnnotationMemberDecl",
	KindConstructorDecl:               "ConstructorDecl",
	KindInitializerDecl:               "InitializerDecl",
	KindParameter:                     "Parameter",
	KindMarkerAnnotation:              "MarkerAnnotation",
	KindSingleMemberAnnotation:        "SingleMemberAnnotation",
	KindNormalAnnotation:              "NormalAnnotation",
	KindMemberValuePair:               "MemberValuePair",
	KindBlockStmt:                     "BlockStmt",
	KindLocalVarDeclStmt:              "LocalVarDeclStmt",
	KindEmptyStmt:                     "EmptyStmt",
	KindExprStmt:                      "ExprStmt",
	KindIfStmt:                        "IfStmt",
	KindWhileStmt:                     "WhileStmt",
	KindDoStmt:                        "DoStmt",
	KindForStmt:                       "ForStmt",
	KindForEachStmt:                   "ForEachStmt",
	KindTryStmt:                       "TryStmt",
	KindResource:                      "Resource",
	KindCatchClause:                   "CatchClause",
	KindCatchParameter:                "CatchParameter",
	KindSwitchStmt:                    "SwitchStmt",
	KindSwitchGroup:                   "SwitchGroup",
	KindSwitchLabel:                   "SwitchLabel",
	KindSynchronizedStmt:              "SynchronizedStmt",
	KindLabeledStmt:                   "LabeledStmt",
	KindBreakStmt:                     "BreakStmt",
	KindContinueStmt:                  "ContinueStmt",
	KindReturnStmt:                    "ReturnStmt",
	KindThrowStmt:                     "ThrowStmt",
	KindAssertStmt:                    "AssertStmt",
	KindExplicitConstructorInvocation: "ExplicitConstructorInvocation",
	KindIntegerLiteralExpr:            "IntegerLiteralExpr",
	KindLongLiteralExpr:               "LongLiteralExpr",
	KindDoubleLiteralExpr:             "DoubleLiteralExpr",
	KindCharLiteralExpr:               "CharLiteralExpr",
	KindStringLiteralExpr:             "StringLiteralExpr",
	KindBooleanLiteralExpr:            "BooleanLiteralExpr",
	KindNullLiteralExpr:               "NullLiteralExpr",
	KindNameExpr:                      "NameExpr",
	KindFieldAccessExpr:               "FieldAccessExpr",
	KindArrayAccessExpr:               "ArrayAccessExpr",
	KindMethodInvocationExpr:          "MethodInvocationExpr",
	KindMethodReferenceExpr:           "MethodReferenceExpr",
	KindObjectCreationExpr:            "ObjectCreationExpr",
	KindArrayCreationExpr:             "ArrayCreationExpr",
	KindArrayCreationLevel:            "ArrayCreationLevel",
	KindArrayInitializerExpr:          "ArrayInitializerExpr",
	KindLambdaExpr:                    "LambdaExpr",
	KindThisExpr:                      "ThisExpr",
	KindSuperExpr:                     "SuperExpr",
	KindTypeLiteralExpr:               "TypeLiteralExpr",
	KindTypeExpr:                      "TypeExpr",
	KindBinaryExpr:                    "BinaryExpr",
	KindUnaryExpr:                     "UnaryExpr",
	KindAssignExpr:                    "AssignExpr",
	KindConditionalExpr:               "ConditionalExpr",
	KindCastExpr:                      "CastExpr",
	KindInstanceOfExpr:                "InstanceOfExpr",
	KindEnclosedExpr:                  "EnclosedExpr",
	KindPrimitiveType:                 "PrimitiveType",
	KindClassType:                     "ClassType",
	KindArrayType:                     "ArrayType",
	KindWildcardType:                  "WildcardType",
	KindVoidType:                      "VoidType",
	KindTypeParameter:                 "TypeParameter",
	KindExceptionType:                 "ExceptionType",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// children flattens groups of nodes into one slice.
func children(groups ...[]Node) []Node {
	n := 0
	for _, g := range groups {
		n += len(g)
	}
	if n == 0 {
		return nil
	}
	out := make([]Node, 0, n)
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// one returns n as a group, or an empty group when n is absent.
func one(n Node) []Node {
	if isNil(n) {
		return nil
	}
	return []Node{n}
}

func many[T Node](items []T) []Node {
	out := make([]Node, 0, len(items))
	for _, item := range items {
		if !isNil(item) {
			out = append(out, item)
		}
	}
	return out
}

// isNil also catches typed nil pointers stored in a Node interface.
func isNil(n Node) bool {
	if n == nil {
		return true
	}
	v := reflect.ValueOf(n)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
