package cil

import (
	"fmt"
	"strings"
)

// The reference types below are opaque operand payloads. They are owned by an
// external metadata system; instructions only observe them. Only the handful
// of fields the stack-effect calculator and the renderer read are modeled.

// TypeRef references a type.
type TypeRef struct {
	Namespace string
	Name      string
}

func (t *TypeRef) String() string {
	if t.Namespace == "" {
		return t.Name
	}
	return t.Namespace + "." + t.Name
}

// FieldRef references a field of a type.
type FieldRef struct {
	Name          string
	DeclaringType *TypeRef
}

func (f *FieldRef) String() string {
	if f.DeclaringType == nil {
		return f.Name
	}
	return f.DeclaringType.String() + "::" + f.Name
}

// MethodRef references a method of a type. Sig is nil when the method's
// signature could not be resolved; the stack-effect calculator degrades to
// (0, 0) in that case instead of failing.
type MethodRef struct {
	Name          string
	DeclaringType *TypeRef
	Sig           *MethodSig
}

func (m *MethodRef) String() string {
	if m.DeclaringType == nil {
		return m.Name
	}
	return m.DeclaringType.String() + "::" + m.Name
}

// MethodSig is the call signature the stack-effect calculator consumes:
// receiver convention, whether a value is returned, and the formal
// parameters.
type MethodSig struct {
	HasThis      bool
	ExplicitThis bool
	ReturnsValue bool
	Params       []*TypeRef
}

// ImplicitThis reports whether the receiver is passed implicitly, i.e. the
// caller pushes it but it does not appear in Params.
func (s *MethodSig) ImplicitThis() bool {
	return s.HasThis && !s.ExplicitThis
}

func (s *MethodSig) String() string {
	var sb strings.Builder
	if s.HasThis {
		sb.WriteString("instance ")
	}
	if s.ReturnsValue {
		sb.WriteString("value(")
	} else {
		sb.WriteString("void(")
	}
	for i, p := range s.Params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.String())
	}
	sb.WriteString(")")
	return sb.String()
}

// Token is implemented by the metadata references that ldtoken accepts:
// types, fields, and methods.
type Token interface {
	fmt.Stringer
	token()
}

func (*TypeRef) token()   {}
func (*FieldRef) token()  {}
func (*MethodRef) token() {}

// Param references a formal parameter of the enclosing method.
type Param struct {
	Index int
	Name  string
}

func (p *Param) String() string {
	if p.Name != "" {
		return p.Name
	}
	return fmt.Sprintf("A_%d", p.Index)
}

// Local references a local-variable slot of the enclosing method.
type Local struct {
	Index int
	Name  string
}

func (l *Local) String() string {
	if l.Name != "" {
		return l.Name
	}
	return fmt.Sprintf("V_%d", l.Index)
}
