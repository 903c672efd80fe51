package ast

import "strings"

// TypeString renders t without annotations, e.g. java.util.Map<K, ? extends V>[].
// Equal strings denote the same written type, which is what duplicate checks
// compare.
func TypeString(t Node) string {
	var sb strings.Builder
	writeType(&sb, t)
	return sb.String()
}

func writeType(sb *strings.Builder, t Node) {
	if isNil(t) {
		return
	}
	switch t := t.(type) {
	case *PrimitiveType:
		sb.WriteString(t.Name)
	case *VoidType:
		sb.WriteString("void")
	case *ClassType:
		if t.Scope != nil {
			writeType(sb, t.Scope)
			sb.WriteByte('.')
		}
		sb.WriteString(t.Name)
		if t.Diamond {
			sb.WriteString("<>")
		} else if len(t.TypeArgs) > 0 {
			sb.WriteByte('<')
			for i, arg := range t.TypeArgs {
				if i > 0 {
					sb.WriteString(", ")
				}
				writeType(sb, arg)
			}
			sb.WriteByte('>')
		}
	case *ArrayType:
		writeType(sb, t.Component)
		sb.WriteString("[]")
	case *WildcardType:
		sb.WriteByte('?')
		if t.Extends != nil {
			sb.WriteString(" extends ")
			writeType(sb, t.Extends)
		}
		if t.Super != nil {
			sb.WriteString(" super ")
			writeType(sb, t.Super)
		}
	case *ExceptionType:
		writeType(sb, t.Type)
	case *TypeParameter:
		sb.WriteString(t.Name)
		for i, b := range t.Bounds {
			if i == 0 {
				sb.WriteString(" extends ")
			} else {
				sb.WriteString(" & ")
			}
			writeType(sb, b)
		}
	}
}
