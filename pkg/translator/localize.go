package translator

import (
	"fmt"

	"github.com/thethingsyouownendupowningyou/angular/pkg/ir"
	"github.com/thethingsyouownendupowningyou/angular/pkg/ts"
)

// LocalizeTagName is the reserved tag identifier downstream tooling
// recognizes for runtime message substitution.
const LocalizeTagName = "$localize"

// localizedStringToTaggedTemplate builds the tagged-template encoding of a
// localized string. Embedded expressions are translated through the caller's
// translate callback, so the helper serves both the expression and the type
// visitor with whichever context invoked it.
//
// Span literals are built uniformly as template middles; the last one is
// re-tagged as a tail after construction, since the target grammar only
// allows a tail as the final piece of a multi-part template.
func localizedStringToTaggedTemplate(ast *ir.LocalizedStringExpr, translate func(ir.Expr) (ts.Node, error)) (ts.Expr, error) {
	if len(ast.MessageParts) != len(ast.Expressions)+1 {
		return nil, fmt.Errorf(
			"localized string has %d message parts for %d expressions; want %d",
			len(ast.MessageParts), len(ast.Expressions), len(ast.Expressions)+1)
	}

	var template ts.Expr
	if len(ast.MessageParts) == 1 {
		part := ast.MessageParts[0]
		template = ts.NewNoSubstitutionTemplate(part.Cooked, part.RawText())
	} else {
		headPart := ast.MessageParts[0]
		head := ts.NewTemplateElement(ts.TemplateHead, headPart.Cooked, headPart.RawText())
		spans := make([]*ts.TemplateSpan, 0, len(ast.Expressions))
		for i := 1; i < len(ast.MessageParts); i++ {
			resolved, err := translate(ast.Expressions[i-1])
			if err != nil {
				return nil, err
			}
			part := ast.MessageParts[i]
			literal := ts.NewTemplateElement(ts.TemplateMiddle, part.Cooked, part.RawText())
			spans = append(spans, ts.NewTemplateSpan(resolved, literal))
		}
		spans[len(spans)-1].Literal.Kind = ts.TemplateTail
		template = ts.NewTemplateExpression(head, spans)
	}
	return ts.NewTaggedTemplate(ts.NewIdentifier(LocalizeTagName), template), nil
}
