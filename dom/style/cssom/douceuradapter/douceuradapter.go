/*
Package douceuradapter loads style sheets with the douceur CSS parser.

The CSS parser of package cssparser is strict: any input outside of its
grammar is an error. Style sheets found in the wild will often contain
at-rules, shorthand values or other constructs we do not support.
This package uses github.com/aymerick/douceur as a lenient front end and
adapts its output to a cssom.StyleSheet, dropping everything it cannot
represent.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/boxes/dom/style/cssom"
	"github.com/npillmayer/boxes/dom/style/cssom/cssparser"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'boxes.css'.
func tracer() tracing.Trace {
	return tracing.Select("boxes.css")
}

// Parse parses a style sheet with douceur and converts it into a
// cssom.StyleSheet. At-rules, rules with selectors we cannot compile, and
// declarations with values outside of the value grammar are dropped.
// An error is returned only if douceur fails on the input.
func Parse(text string) (*cssom.StyleSheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("douceur: %w", err)
	}
	return Convert(sheet), nil
}

// Convert adapts a douceur style sheet. See Parse.
func Convert(sheet *css.Stylesheet) *cssom.StyleSheet {
	if sheet == nil {
		return cssom.NewStyleSheet()
	}
	rules := make([]*cssom.Rule, 0, len(sheet.Rules))
	for _, r := range sheet.Rules {
		if rule := convertRule(r); rule != nil {
			rules = append(rules, rule)
		}
	}
	return cssom.NewStyleSheet(rules...)
}

func convertRule(r *css.Rule) *cssom.Rule {
	if r.Kind != css.QualifiedRule {
		tracer().Infof("css: skipping at-rule %s %s", r.Name, r.Prelude)
		return nil
	}
	sel, err := cssom.CompileSelector(r.Prelude)
	if err != nil {
		tracer().Infof("css: dropping rule: %v", err)
		return nil
	}
	decls := make([]cssom.Declaration, 0, len(r.Declarations))
	for _, d := range r.Declarations {
		v, err := cssparser.ParseValue(d.Value)
		if err != nil {
			tracer().Infof("css: dropping declaration %s: %s", d.Property, d.Value)
			continue
		}
		if d.Important {
			tracer().Debugf("css: ignoring !important for %s", d.Property)
		}
		prop := strings.ToLower(d.Property) // property names are case-insensitive
		decls = append(decls, cssom.Declaration{Property: prop, Value: v})
	}
	return cssom.NewRule(sel, decls)
}
