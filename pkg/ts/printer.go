package ts

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

const indentSize = 2

// Printer serializes output nodes to TypeScript source text.
//
// The printer does not re-derive precedence: grouping decisions were already
// made by the translator (Paren nodes), so every construct prints
// structurally. Synthetic leading comments print immediately before their
// node; a multiline comment without a trailing newline stays textually
// adjacent, which downstream optimizers rely on for @__PURE__ markers.
type Printer struct {
	output      *bytes.Buffer
	depth       int
	atLineStart bool
}

// NewPrinter creates an empty printer.
func NewPrinter() *Printer {
	return &Printer{output: &bytes.Buffer{}, atLineStart: true}
}

// String returns the emitted source.
func (p *Printer) String() string {
	return p.output.String()
}

// Print emits a slice of top-level statements and returns the source text.
func Print(stmts []Stmt) string {
	p := NewPrinter()
	for _, s := range stmts {
		p.PrintStmt(s)
	}
	return p.String()
}

// PrintExpr emits a single expression as source text.
func PrintExpr(e Expr) string {
	p := NewPrinter()
	p.printExpr(e)
	return p.String()
}

// PrintType emits a single type node as source text.
func PrintType(t TypeNode) string {
	p := NewPrinter()
	p.printType(t)
	return p.String()
}

func (p *Printer) write(s string) {
	if p.atLineStart && len(s) > 0 && s[0] != '\n' {
		p.writeIndent()
	}
	p.output.WriteString(s)
	p.atLineStart = false
}

func (p *Printer) writeln() {
	p.output.WriteByte('\n')
	p.atLineStart = true
}

func (p *Printer) writeIndent() {
	for i := 0; i < p.depth*indentSize; i++ {
		p.output.WriteByte(' ')
	}
	p.atLineStart = false
}

func (p *Printer) indent() { p.depth++ }

func (p *Printer) dedent() {
	if p.depth > 0 {
		p.depth--
	}
}

func (p *Printer) printComments(comments []SyntheticComment) {
	for _, c := range comments {
		if c.Multiline {
			p.write("/*" + c.Text + "*/")
			if c.TrailingNewline {
				p.writeln()
			}
		} else {
			for _, line := range strings.Split(c.Text, "\n") {
				p.write("//" + line)
				p.writeln()
			}
		}
	}
}

// ---------- Statements ----------

// PrintStmt emits one statement followed by a newline.
func (p *Printer) PrintStmt(s Stmt) {
	switch stmt := s.(type) {
	case *VariableStatement:
		p.printComments(stmt.LeadingComments)
		p.write(stmt.Kind.Keyword() + " " + stmt.Name)
		if stmt.Init != nil {
			p.write(" = ")
			p.printExpr(stmt.Init)
		}
		p.write(";")
		p.writeln()
	case *FunctionDeclaration:
		p.printComments(stmt.LeadingComments)
		p.write("function " + stmt.Name + "(")
		p.printParams(stmt.Params)
		p.write(") ")
		p.printBlock(stmt.Body)
		p.writeln()
	case *ExpressionStatement:
		p.printComments(stmt.LeadingComments)
		p.printExpr(stmt.Expr)
		p.write(";")
		p.writeln()
	case *ReturnStatement:
		p.printComments(stmt.LeadingComments)
		if stmt.Expr != nil {
			p.write("return ")
			p.printExpr(stmt.Expr)
			p.write(";")
		} else {
			p.write("return;")
		}
		p.writeln()
	case *ThrowStatement:
		p.printComments(stmt.LeadingComments)
		p.write("throw ")
		p.printExpr(stmt.Expr)
		p.write(";")
		p.writeln()
	case *IfStatement:
		p.printComments(stmt.LeadingComments)
		p.write("if (")
		p.printExpr(stmt.Condition)
		p.write(") ")
		p.printBlock(stmt.Then)
		if stmt.Else != nil {
			p.write(" else ")
			switch el := stmt.Else.(type) {
			case *Block:
				p.printBlock(el)
			default:
				p.writeln()
				p.indent()
				p.PrintStmt(el)
				p.dedent()
			}
		}
		p.writeln()
	case *Block:
		p.printBlock(stmt)
		p.writeln()
	case *NotEmittedStatement:
		p.printComments(stmt.LeadingComments)
		if len(stmt.LeadingComments) > 0 && !p.atLineStart {
			p.writeln()
		}
	case *ImportDeclaration:
		p.printComments(stmt.LeadingComments)
		p.write("import * as " + stmt.Alias + " from " + quoteString(stmt.Specifier) + ";")
		p.writeln()
	case *ClassDeclaration:
		p.printComments(stmt.LeadingComments)
		p.write("class " + stmt.Name)
		if stmt.Parent != nil {
			p.write(" extends ")
			p.printExpr(stmt.Parent)
		}
		p.write(" {")
		p.writeln()
		p.indent()
		for _, field := range stmt.Fields {
			p.write(field.Name)
			if field.Init != nil {
				p.write(" = ")
				p.printExpr(field.Init)
			}
			p.write(";")
			p.writeln()
		}
		for _, method := range stmt.Methods {
			p.write(method.Name + "(")
			p.printParams(method.Params)
			p.write(") ")
			p.printBlock(method.Body)
			p.writeln()
		}
		p.dedent()
		p.write("}")
		p.writeln()
	default:
		p.write(fmt.Sprintf("/* unprintable statement %T */", s))
		p.writeln()
	}
}

func (p *Printer) printBlock(b *Block) {
	if b == nil || len(b.Statements) == 0 {
		p.write("{ }")
		return
	}
	p.write("{")
	p.writeln()
	p.indent()
	for _, s := range b.Statements {
		p.PrintStmt(s)
	}
	p.dedent()
	p.write("}")
}

func (p *Printer) printParams(params []*Param) {
	for i, param := range params {
		if i > 0 {
			p.write(", ")
		}
		p.write(param.Name)
	}
}

// ---------- Expressions ----------

func (p *Printer) printExpr(e Expr) {
	if e == nil {
		return
	}
	switch expr := e.(type) {
	case *Identifier:
		p.printComments(expr.LeadingComments)
		p.write(expr.Name)
	case *StringLiteral:
		p.write(quoteString(expr.Value))
	case *NumberLiteral:
		p.write(strconv.FormatFloat(expr.Value, 'f', -1, 64))
	case *BoolLiteral:
		p.write(strconv.FormatBool(expr.Value))
	case *NullLiteral:
		p.write("null")
	case *PropertyAccess:
		p.printExpr(expr.Receiver)
		p.write("." + expr.Name)
	case *ElementAccess:
		p.printExpr(expr.Receiver)
		p.write("[")
		p.printExpr(expr.Index)
		p.write("]")
	case *Call:
		p.printComments(expr.LeadingComments)
		p.printExpr(expr.Fn)
		p.write("(")
		p.printExprList(expr.Args)
		p.write(")")
	case *New:
		p.write("new ")
		p.printExpr(expr.Class)
		p.write("(")
		p.printExprList(expr.Args)
		p.write(")")
	case *Binary:
		p.printExpr(expr.Lhs)
		p.write(" " + expr.Op + " ")
		p.printExpr(expr.Rhs)
	case *Paren:
		p.write("(")
		p.printExpr(expr.Expr)
		p.write(")")
	case *Conditional:
		p.printExpr(expr.Condition)
		p.write(" ? ")
		p.printExpr(expr.WhenTrue)
		p.write(" : ")
		p.printExpr(expr.WhenFalse)
	case *PrefixUnary:
		p.write(expr.Op)
		p.printExpr(expr.Operand)
	case *TypeOf:
		p.write("typeof ")
		p.printExpr(expr.Operand)
	case *FunctionExpr:
		p.write("function")
		if expr.Name != "" {
			p.write(" " + expr.Name)
		}
		p.write("(")
		p.printParams(expr.Params)
		p.write(") ")
		p.printBlock(expr.Body)
	case *ArrayLiteral:
		p.write("[")
		p.printExprList(expr.Elements)
		p.write("]")
	case *ObjectLiteral:
		if len(expr.Properties) == 0 {
			p.write("{}")
			return
		}
		p.write("{ ")
		for i, prop := range expr.Properties {
			if i > 0 {
				p.write(", ")
			}
			if prop.Quoted {
				p.write(quoteString(prop.Key))
			} else {
				p.write(prop.Key)
			}
			p.write(": ")
			p.printExpr(prop.Value)
		}
		p.write(" }")
	case *TemplateExpression:
		p.write("`")
		p.write(expr.Head.Raw)
		for _, span := range expr.Spans {
			p.write("${")
			p.printNode(span.Expression)
			p.write("}")
			p.write(span.Literal.Raw)
		}
		p.write("`")
	case *NoSubstitutionTemplate:
		p.write("`" + expr.Raw + "`")
	case *TaggedTemplate:
		p.printExpr(expr.Tag)
		p.write(" ")
		p.printExpr(expr.Template)
	default:
		p.write(fmt.Sprintf("/* unprintable expression %T */", e))
	}
}

func (p *Printer) printExprList(exprs []Expr) {
	for i, e := range exprs {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(e)
	}
}

// printNode dispatches a node of unknown class; template spans may embed
// either expressions or type nodes depending on the visitor that built them.
func (p *Printer) printNode(n Node) {
	switch node := n.(type) {
	case Expr:
		p.printExpr(node)
	case TypeNode:
		p.printType(node)
	default:
		p.write(fmt.Sprintf("/* unprintable node %T */", n))
	}
}

// ---------- Types ----------

func (p *Printer) printType(t TypeNode) {
	if t == nil {
		return
	}
	switch typ := t.(type) {
	case *KeywordType:
		p.write(typ.Keyword)
	case *TypeReference:
		p.printExpr(typ.TypeName)
		if len(typ.TypeArgs) > 0 {
			p.write("<")
			for i, arg := range typ.TypeArgs {
				if i > 0 {
					p.write(", ")
				}
				p.printType(arg)
			}
			p.write(">")
		}
	case *ArrayType:
		p.printType(typ.Element)
		p.write("[]")
	case *TupleType:
		p.write("[")
		for i, el := range typ.Elements {
			if i > 0 {
				p.write(", ")
			}
			p.printType(el)
		}
		p.write("]")
	case *TypeLiteral:
		p.printTypeLiteral(typ)
	case *LiteralType:
		p.printExpr(typ.Literal)
	case *TypeQuery:
		p.write("typeof ")
		p.printExpr(typ.Expr)
	default:
		p.write(fmt.Sprintf("/* unprintable type %T */", t))
	}
}

func (p *Printer) printTypeLiteral(t *TypeLiteral) {
	if t.Index != nil {
		p.write("{ [key: string]: ")
		if t.Index.ValueType != nil {
			p.printType(t.Index.ValueType)
		} else {
			p.write("any")
		}
		p.write(" }")
		return
	}
	if len(t.Members) == 0 {
		p.write("{}")
		return
	}
	p.write("{ ")
	for i, m := range t.Members {
		if i > 0 {
			p.write("; ")
		}
		if m.Quoted {
			p.write(quoteString(m.Key))
		} else {
			p.write(m.Key)
		}
		p.write(": ")
		if m.Type != nil {
			p.printType(m.Type)
		} else {
			p.write("any")
		}
	}
	p.write(" }")
}

// quoteString renders a double-quoted string literal with JS-compatible
// escaping.
func quoteString(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
