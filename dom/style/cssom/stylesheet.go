package cssom

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/boxes/dom/style"
	"golang.org/x/net/html"
)

// Declaration is a single CSS property declaration, e.g. "width: 100px".
type Declaration struct {
	Property string
	Value    style.Value
}

func (d Declaration) String() string {
	return d.Property + ": " + d.Value.String()
}

// --- Selectors -------------------------------------------------------------

// Selector is a compiled CSS selector (group), e.g. "p[id~=hello], .content".
type Selector struct {
	text  string
	group cascadia.SelectorGroup
}

// CompileSelector compiles a selector text.
func CompileSelector(text string) (Selector, error) {
	text = strings.TrimSpace(text)
	group, err := cascadia.ParseGroup(text)
	if err != nil {
		return Selector{}, fmt.Errorf("invalid selector %q: %w", text, err)
	}
	return Selector{text: text, group: group}, nil
}

// MustCompileSelector is like CompileSelector, but panics on error.
func MustCompileSelector(text string) Selector {
	sel, err := CompileSelector(text)
	if err != nil {
		panic(err)
	}
	return sel
}

func (sel Selector) String() string {
	return sel.text
}

// Matches is true if the selector matches an HTML element node.
// Nodes other than element nodes never match.
func (sel Selector) Matches(n *html.Node) bool {
	if n == nil || n.Type != html.ElementNode || sel.group == nil {
		return false
	}
	return sel.group.Match(n)
}

// --- Rules -----------------------------------------------------------------

// Rule is a selector together with an ordered list of declarations.
type Rule struct {
	selector     Selector
	declarations []Declaration
}

// NewRule creates a rule. The rule takes ownership of decls.
func NewRule(sel Selector, decls []Declaration) *Rule {
	return &Rule{selector: sel, declarations: decls}
}

// Selector returns the selector of the rule.
func (r *Rule) Selector() Selector {
	return r.selector
}

// Declarations returns the declarations of the rule, in order.
// Duplicate properties are retained.
func (r *Rule) Declarations() []Declaration {
	d := make([]Declaration, len(r.declarations))
	copy(d, r.declarations)
	return d
}

// Properties returns the property keys of a rule in order of first
// declaration, e.g. "margin-top".
func (r *Rule) Properties() []string {
	seen := make(map[string]bool, len(r.declarations))
	props := make([]string, 0, len(r.declarations))
	for _, d := range r.declarations {
		if !seen[d.Property] {
			props = append(props, d.Property)
			seen[d.Property] = true
		}
	}
	return props
}

// Value returns the property value for a given key with this rule, e.g.
// 15px. If a property is declared more than once, the last declaration wins.
func (r *Rule) Value(key string) style.Value {
	v := style.NullValue
	for _, d := range r.declarations {
		if d.Property == key {
			v = d.Value
		}
	}
	return v
}

func (r *Rule) String() string {
	var b strings.Builder
	b.WriteString(r.selector.text + " {")
	for _, d := range r.declarations {
		b.WriteString(" " + d.String() + ";")
	}
	b.WriteString(" }")
	return b.String()
}

// --- Style sheets ----------------------------------------------------------

// StyleSheet is an ordered list of rules. Later rules override earlier ones.
type StyleSheet struct {
	rules []*Rule
}

// NewStyleSheet creates a style sheet from a list of rules.
func NewStyleSheet(rules ...*Rule) *StyleSheet {
	return &StyleSheet{rules: rules}
}

// Concat creates a new style sheet containing the rules of all given
// sheets in order. nil sheets are skipped.
func Concat(sheets ...*StyleSheet) *StyleSheet {
	all := &StyleSheet{}
	for _, s := range sheets {
		if s != nil {
			all.rules = append(all.rules, s.rules...)
		}
	}
	return all
}

// Empty checks if this stylesheet contains any rules.
func (sheet *StyleSheet) Empty() bool {
	return sheet == nil || len(sheet.rules) == 0
}

// Rules returns all the rules of a stylesheet, in document order.
func (sheet *StyleSheet) Rules() []*Rule {
	if sheet == nil {
		return nil
	}
	r := make([]*Rule, len(sheet.rules))
	copy(r, sheet.rules)
	return r
}

// MatchingRules returns all rules matching an HTML node, in document order.
func (sheet *StyleSheet) MatchingRules(n *html.Node) []*Rule {
	if sheet == nil {
		return nil
	}
	var matching []*Rule
	for _, r := range sheet.rules {
		if r.selector.Matches(n) {
			tracer().Debugf("rule '%s' matches <%s>", r.selector, n.Data)
			matching = append(matching, r)
		}
	}
	return matching
}

func (sheet *StyleSheet) String() string {
	var b strings.Builder
	for _, r := range sheet.Rules() {
		b.WriteString(r.String() + "\n")
	}
	return b.String()
}
