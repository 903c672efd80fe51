package parser

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KindError NodeKind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDecl
	KindImportDecl
	KindQualifiedName
	KindIdentifier
	KindOperator

	// Type declarations
	KindClassDecl
	KindInterfaceDecl
	KindAnnotationTypeDecl
	KindExtendsClause
	KindOfClause
	KindClassBody
	KindInterfaceBody
	KindAnnotationTypeBody

	// Members
	KindFieldDecl
	KindConstantDecl
	KindMethodDecl
	KindInterfaceMethodDecl
	KindAnnotationMemberDecl
	KindConstructorDecl
	KindInitializer
	KindVariableDeclarator
	KindFormalParameters
	KindFormalParameter
	KindVarargs
	KindThrowsClause
	KindDefaultValue
	KindConstructorBody
	KindExplicitConstructorInvocation

	// Modifiers and annotations
	KindModifiers
	KindModifier
	KindAnnotation
	KindElementValuePair

	// Types
	KindType
	KindPrimitiveType
	KindClassType
	KindClassTypeElement
	KindVoidType
	KindDims
	KindDim
	KindTypeArguments
	KindWildcard
	KindTypeParameters
	KindTypeParameter
	KindTypeBound

	// Statements
	KindBlock
	KindLocalVarDecl
	KindEmptyStmt
	KindExprStmt
	KindIfStmt
	KindWhileStmt
	KindDoStmt
	KindForStmt
	KindForInit
	KindForUpdate
	KindForEachStmt
	KindTryStmt
	KindResourceSpec
	KindResource
	KindCatchClause
	KindCatchType
	KindFinallyClause
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

	// Expressions, one kind per precedence layer that can carry an operator
	KindAssignment
	KindConditional
	KindBinary
	KindInstanceof
	KindUnary
	KindCast
	KindPostfix

	// Postfix suffixes, folded onto the primary by the AST builder
	KindFieldSuffix
	KindIndexSuffix
	KindCallSuffix
	KindMethodRefSuffix
	KindNewSuffix
	KindClassLiteralSuffix
	KindPostIncDecSuffix

	// Primaries
	KindLiteral
	KindName
	KindThis
	KindSuper
	KindParens
	KindObjectCreation
	KindArrayCreation
	KindDimExpr
	KindArrayInitializer
	KindArguments
	KindLambda
	KindLambdaParameters
	KindTypeLiteral
	KindTypeReference
)

var nodeKindNames = map[NodeKind]string{
	KindError:                         "Error",
	KindCompilationUnit:               "CompilationUnit",
	KindPackageDecl:                   "PackageDecl",
	KindImportDecl:                    "ImportDecl",
	KindQualifiedName:                 "QualifiedName",
	KindIdentifier:                    "Identifier",
	KindOperator:                      "Operator",
	KindClassDecl:                     "ClassDecl",
	KindInterfaceDecl:                 "InterfaceDecl",
	KindAnnotationTypeDecl:            "AnnotationTypeDecl",
	KindExtendsClause:                 "ExtendsClause",
	KindOfClause:                      "OfClause",
	KindClassBody:                     "ClassBody",
	KindInterfaceBody:                 "InterfaceBody",
	KindAnnotationTypeBody:            "AnnotationTypeBody",
	KindFieldDecl:                     "FieldDecl",
	KindConstantDecl:                  "ConstantDecl",
	KindMethodDecl:                    "MethodDecl",
	KindInterfaceMethodDecl:           "InterfaceMethodDecl",
	KindAnnotationMemberDecl:          "AnnotationMemberDecl",
	KindConstructorDecl:               "ConstructorDecl",
	KindInitializer:                   "Initializer",
	KindVariableDeclarator:            "VariableDeclarator",
	KindFormalParameters:              "FormalParameters",
	KindFormalParameter:               "FormalParameter",
	KindVarargs:                       "Varargs",
	KindThrowsClause:                  "ThrowsClause",
	KindDefaultValue:                  "DefaultValue",
	KindConstructorBody:               "ConstructorBody",
	KindExplicitConstructorInvocation: "ExplicitConstructorInvocation",
	KindModifiers:                     "Modifiers",
	KindModifier:                      "Modifier",
	KindAnnotation:                    "Annotation",
	KindElementValuePair:              "ElementValuePair",
	KindType:                          "Type",
	KindPrimitiveType:                 "PrimitiveType",
	KindClassType:                     "ClassType",
	KindClassTypeElement:              "ClassTypeElement",
	KindVoidType:                      "VoidType",
	KindDims:                          "Dims",
	KindDim:                           "Dim",
	KindTypeArguments:                 "TypeArguments",
	KindWildcard:                      "Wildcard",
	KindTypeParameters:                "TypeParameters",
	KindTypeParameter:                 "TypeParameter",
	KindTypeBound:                     "TypeBound",
	KindBlock:                         "Block",
	KindLocalVarDecl:                  "LocalVarDecl",
	KindEmptyStmt:                     "EmptyStmt",
	KindExprStmt:                      "ExprStmt",
	KindIfStmt:                        "IfStmt",
	KindWhileStmt:                     "WhileStmt",
	KindDoStmt:                        "DoStmt",
	KindForStmt:                       "ForStmt",
	KindForInit:                       "ForInit",
	KindForUpdate:                     "ForUpdate",
	KindForEachStmt:                   "ForEachStmt",
	KindTryStmt:                       "TryStmt",
	KindResourceSpec:                  "ResourceSpec",
	KindResource:                      "Resource",
	KindCatchClause:                   "CatchClause",
	KindCatchType:                     "CatchType",
	KindFinallyClause:                 "FinallyClause",
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
	KindAssignment:                    "Assignment",
	KindConditional:                   "Conditional",
	KindBinary:                        "Binary",
	KindInstanceof:                    "Instanceof",
	KindUnary:                         "Unary",
	KindCast:                          "Cast",
	KindPostfix:                       "Postfix",
	KindFieldSuffix:                   "FieldSuffix",
	KindIndexSuffix:                   "IndexSuffix",
	KindCallSuffix:                    "CallSuffix",
	KindMethodRefSuffix:               "MethodRefSuffix",
	KindNewSuffix:                     "NewSuffix",
	KindClassLiteralSuffix:            "ClassLiteralSuffix",
	KindPostIncDecSuffix:              "PostIncDecSuffix",
	KindLiteral:                       "Literal",
	KindName:                          "Name",
	KindThis:                          "This",
	KindSuper:                         "Super",
	KindParens:                        "Parens",
	KindObjectCreation:                "ObjectCreation",
	KindArrayCreation:                 "ArrayCreation",
	KindDimExpr:                       "DimExpr",
	KindArrayInitializer:              "ArrayInitializer",
	KindArguments:                     "Arguments",
	KindLambda:                        "Lambda",
	KindLambdaParameters:              "LambdaParameters",
	KindTypeLiteral:                   "TypeLiteral",
	KindTypeReference:                 "TypeReference",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is a syntax error. Error nodes in the tree carry one, and the
// parser keeps every Error it produced in source order.
type Error struct {
	Message  string
	Pos      Position
	Expected []TokenKind
	Got      *Token
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Node is a concrete syntax tree node. Terminals carry a Token; productions
// carry Children in source order. Optional productions that were not present
// in the source are simply absent from Children.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
	Error    *Error
}

func (n *Node) AddChild(child *Node) {
	if child != nil {
		n.Children = append(n.Children, child)
	}
}

func (n *Node) IsError() bool {
	return n.Kind == KindError
}

// Child returns the first child of the given kind, or nil.
func (n *Node) Child(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// ChildrenOf returns all children of the given kind in source order.
func (n *Node) ChildrenOf(kind NodeKind) []*Node {
	var result []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			result = append(result, child)
		}
	}
	return result
}

// Has reports whether n has a child of the given kind.
func (n *Node) Has(kind NodeKind) bool {
	return n.Child(kind) != nil
}

func (n *Node) TokenLiteral() string {
	if n.Token != nil {
		return n.Token.Literal
	}
	return ""
}

// TokenKind returns the kind of the node's token, or TokenEOF for
// non-terminals.
func (n *Node) TokenKind() TokenKind {
	if n.Token != nil {
		return n.Token.Kind
	}
	return TokenEOF
}

func (n *Node) String() string {
	var sb strings.Builder
	n.writeIndent(&sb, 0)
	return sb.String()
}

func (n *Node) writeIndent(sb *strings.Builder, indent int) {
	sb.WriteString(strings.Repeat("  ", indent))
	sb.WriteString(n.Kind.String())
	if n.Token != nil {
		sb.WriteString(" " + n.Token.Literal)
	}
	if n.Error != nil {
		sb.WriteString(" ERROR: " + n.Error.Message)
	}
	sb.WriteString("\n")

	for _, child := range n.Children {
		child.writeIndent(sb, indent+1)
	}
}

// Walk calls fn for n and every descendant in pre-order. Returning false
// from fn skips the node's children.
func Walk(n *Node, fn func(*Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	for _, child := range n.Children {
		Walk(child, fn)
	}
}
