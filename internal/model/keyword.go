package model

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// KeywordKind identifies the variant of a Keyword node.
type KeywordKind string

const (
	KindKeyword  KeywordKind = "KEYWORD"
	KindSetup    KeywordKind = "SETUP"
	KindTeardown KeywordKind = "TEARDOWN"
	KindFor      KeywordKind = "FOR"
	KindWhile    KeywordKind = "WHILE"
	KindIf       KeywordKind = "IF/ELSE ROOT"
	KindTry      KeywordKind = "TRY/EXCEPT ROOT"
)

// Branch types owned by IF/ELSE and TRY/EXCEPT root nodes.
const (
	BranchIf      = "IF"
	BranchElseIf  = "ELSE IF"
	BranchElse    = "ELSE"
	BranchTry     = "TRY"
	BranchExcept  = "EXCEPT"
	BranchFinally = "FINALLY"
)

// Call is the payload of a plain, setup, or teardown keyword.
type Call struct {
	Name   string   `yaml:"name" json:"name"`
	Args   []string `yaml:"args,omitempty" json:"args,omitempty"`
	Assign []string `yaml:"assign,omitempty" json:"assign,omitempty"`
}

// ForLoop is the payload of a FOR keyword.
type ForLoop struct {
	Variables []string `yaml:"variables" json:"variables"`
	Flavor    string   `yaml:"flavor" json:"flavor"`
	Values    []string `yaml:"values,omitempty" json:"values,omitempty"`
}

// WhileLoop is the payload of a WHILE keyword.
type WhileLoop struct {
	Condition string `yaml:"condition" json:"condition"`
}

// Branch is a single branch of an IF/ELSE or TRY/EXCEPT root.
// Condition applies to IF and ELSE IF branches; Patterns and Variable
// apply to EXCEPT branches.
type Branch struct {
	Type      string   `yaml:"type" json:"type"`
	Condition string   `yaml:"condition,omitempty" json:"condition,omitempty"`
	Patterns  []string `yaml:"patterns,omitempty" json:"patterns,omitempty"`
	Variable  string   `yaml:"variable,omitempty" json:"variable,omitempty"`
}

// Keyword is a polymorphic body node: a keyword call, a setup/teardown
// marker, or a control-flow block. Exactly one payload field is set,
// selected by Kind.
type Keyword struct {
	Kind     KeywordKind
	Call     *Call
	For      *ForLoop
	While    *WhileLoop
	Branches []Branch
}

// keywordDoc mirrors the YAML shape of a body entry. The entry kind is
// derived from which key is present: a call has "name", control blocks
// use "for", "while", "if", or "try".
type keywordDoc struct {
	Name   string     `yaml:"name"`
	Args   []string   `yaml:"args"`
	Assign []string   `yaml:"assign"`
	For    *ForLoop   `yaml:"for"`
	While  *WhileLoop `yaml:"while"`
	If     []Branch   `yaml:"if"`
	Try    []Branch   `yaml:"try"`
}

// UnmarshalYAML decodes a body entry, dispatching on the discriminating key.
func (k *Keyword) UnmarshalYAML(value *yaml.Node) error {
	var doc keywordDoc
	if err := value.Decode(&doc); err != nil {
		return err
	}

	switch {
	case doc.For != nil:
		k.Kind = KindFor
		k.For = doc.For
	case doc.While != nil:
		k.Kind = KindWhile
		k.While = doc.While
	case len(doc.If) > 0:
		k.Kind = KindIf
		k.Branches = doc.If
	case len(doc.Try) > 0:
		k.Kind = KindTry
		k.Branches = doc.Try
	case doc.Name != "":
		k.Kind = KindKeyword
		k.Call = &Call{Name: doc.Name, Args: doc.Args, Assign: doc.Assign}
	default:
		return fmt.Errorf("keyword entry at line %d must have one of: name, for, while, if, try", value.Line)
	}

	return nil
}
