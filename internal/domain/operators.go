package domain

import (
	m "fixpool.dev/pkg/fixpool/internal/model"
)

// Catalog is a family of interchangeable operator tokens.
type Catalog []string

var (
	postfixOperators = Catalog{"++", "--"}
	prefixOperators  = Catalog{"!", "++", "--"}
	infixOperators   = Catalog{"==", "!=", "<", "<=", ">", ">=", "&&", "||", "+", "-", "*", "%", "/", "+=", "-="}
)

// PostfixOperators returns the postfix catalog.
func PostfixOperators() Catalog { return clone(postfixOperators) }

// PrefixOperators returns the prefix catalog.
func PrefixOperators() Catalog { return clone(prefixOperators) }

// InfixOperators returns the infix catalog.
func InfixOperators() Catalog { return clone(infixOperators) }

func clone(c Catalog) Catalog {
	return append(Catalog(nil), c...)
}

// variantFamilies lists, per change kind, which operator families receive
// variants. INSERT matches the real postfix tag; the other kinds only match
// the legacy PostExpression tag, so PostfixExpression deletes and updates get
// no postfix variants.
var variantFamilies = map[m.ChangeKind]map[m.Family]Catalog{
	m.Insert: {
		m.FamilyInfix:   infixOperators,
		m.FamilyPostfix: postfixOperators,
		m.FamilyPrefix:  prefixOperators,
	},
	m.Delete: {
		m.FamilyInfix:        infixOperators,
		m.FamilyPostfixAlias: postfixOperators,
		m.FamilyPrefix:       prefixOperators,
	},
	m.Update: {
		m.FamilyInfix:        infixOperators,
		m.FamilyPostfixAlias: postfixOperators,
		m.FamilyPrefix:       prefixOperators,
	},
	m.Replace: {
		m.FamilyInfix:        infixOperators,
		m.FamilyPostfixAlias: postfixOperators,
		m.FamilyPrefix:       prefixOperators,
	},
}

// SelectCatalog returns the operator catalog for a change kind and the type
// tag relevant to that kind, or nil when no family matches.
func SelectCatalog(kind m.ChangeKind, nodeType string) Catalog {
	families, ok := variantFamilies[kind]
	if !ok {
		return nil
	}

	return families[m.FamilyOf(nodeType)]
}
