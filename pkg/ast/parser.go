// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later
package ast

import (
	"strings"

	"github.com/kraklabs/schemac/pkg/diagnostics"
	"github.com/kraklabs/schemac/pkg/ir"
	"github.com/kraklabs/schemac/pkg/source"
)

// Parse parses one schema source file into a File, recording recovered
// syntax errors into diags and continuing rather than aborting at the
// first one (spec §7 category 1). The returned File is valid to
// inspect even when diags.HasErrors(), though declarations that failed
// to parse are omitted.
func Parse(src source.Source, diags *diagnostics.Diagnostics) *File {
	p := &parser{toks: lex(src), diags: diags, src: src}
	return p.parseFile()
}

type parser struct {
	toks  []token
	pos   int
	diags *diagnostics.Diagnostics
	src   source.Source
	pendingDoc []string
}

func (p *parser) cur() token  { return p.toks[p.pos] }
func (p *parser) at(k tokenKind) bool { return p.cur().kind == k }

func (p *parser) advance() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *parser) expect(k tokenKind, what string) (token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	p.diags.Errorf(p.cur().span, "expected %s, found %q", what, p.cur().text)
	return token{}, false
}

// collectDoc consumes any run of leading tokDoc tokens and returns
// their text lines, attaching to whatever declaration follows.
func (p *parser) collectDoc() []string {
	var doc []string
	for p.at(tokDoc) {
		doc = append(doc, p.advance().text)
	}
	return doc
}

// recover skips tokens until it finds a synchronization point — a
// semicolon, a closing brace, or EOF — so one malformed declaration
// doesn't prevent the parser from reporting errors in the rest of the
// file (spec §7: "compilation proceeds to report as many as possible").
func (p *parser) recover() {
	depth := 0
	for {
		switch p.cur().kind {
		case tokEOF:
			return
		case tokLBrace:
			depth++
			p.advance()
		case tokRBrace:
			if depth == 0 {
				p.advance()
				return
			}
			depth--
			p.advance()
		case tokSemicolon:
			p.advance()
			if depth == 0 {
				return
			}
		default:
			p.advance()
		}
	}
}

func (p *parser) parseFile() *File {
	f := &File{}

	if p.at(tokHash) {
		f.Package = p.parsePackageHeader()
	}

	for p.at(tokDoc) || (p.at(tokIdent) && p.cur().text == "use") {
		doc := p.collectDoc()
		if !p.at(tokIdent) || p.cur().text != "use" {
			// doc comment belonged to the next declaration, not a use
			p.pendingDoc = doc
			break
		}
		f.Uses = append(f.Uses, p.parseUse())
	}

	for !p.at(tokEOF) {
		doc := p.pendingDoc
		p.pendingDoc = nil
		doc = append(doc, p.collectDoc()...)
		if p.at(tokEOF) {
			break
		}
		decl, ok := p.parseDecl(doc)
		if !ok {
			p.recover()
			continue
		}
		f.Decls = append(f.Decls, *decl)
	}

	return f
}

func (p *parser) parsePackageHeader() *PackageHeader {
	start := p.cur().span
	p.advance() // #
	if _, ok := p.expect(tokBang, "'!'"); !ok {
		p.recover()
		return nil
	}
	if _, ok := p.expect(tokLBracket, "'['"); !ok {
		p.recover()
		return nil
	}

	h := &PackageHeader{}
	for !p.at(tokRBracket) && !p.at(tokEOF) {
		name, _ := p.expect(tokIdent, "identifier")
		if _, ok := p.expect(tokLParen, "'('"); !ok {
			break
		}
		switch name.text {
		case "package":
			h.Package = p.parseDottedPath()
		case "version":
			v, _ := p.expect(tokString, "version string")
			h.Version = v.text
		default:
			// unknown header key: consume one argument defensively
			p.advance()
		}
		p.expect(tokRParen, "')'")
		if p.at(tokComma) {
			p.advance()
		}
	}
	p.expect(tokRBracket, "']'")
	h.Span = start.Join(p.toks[p.pos-1].span)
	return h
}

func (p *parser) parseDottedPath() []string {
	var path []string
	for {
		id, ok := p.expect(tokIdent, "identifier")
		if !ok {
			break
		}
		path = append(path, id.text)
		// The lexer has no dot token: '.' arrives as a one-character
		// tokIdent, so `foo.bar.baz` is ident, ".", ident, ".", ident.
		if !p.at(tokIdent) || p.cur().text != "." {
			break
		}
		p.advance()
	}
	return path
}

func (p *parser) parseUse() Use {
	start := p.cur().span
	p.advance() // "use"
	u := Use{Package: p.parseDottedPath()}
	if p.at(tokIdent) && p.cur().text == "as" {
		p.advance()
		alias, _ := p.expect(tokIdent, "alias identifier")
		u.Alias = alias.text
	}
	if p.at(tokIdent) && p.cur().text == "version" {
		p.advance()
		paren := p.at(tokLParen)
		if paren {
			p.advance()
		}
		r, _ := p.expect(tokString, "version range string")
		u.Range = r.text
		if _, err := ir.ParseVersionRange(r.text); err != nil {
			p.diags.Errorf(r.span, "invalid version range %q", r.text)
		}
		if paren {
			p.expect(tokRParen, "')'")
		}
	}
	p.expect(tokSemicolon, "';'")
	u.Span = start.Join(p.toks[p.pos-1].span)
	return u
}

func (p *parser) parseDecl(doc []string) (*Decl, bool) {
	if !p.at(tokIdent) {
		p.diags.Errorf(p.cur().span, "expected declaration, found %q", p.cur().text)
		return nil, false
	}
	kwSpan := p.cur().span
	switch p.cur().text {
	case "type":
		p.advance()
		return p.parseTypeLike(DeclType, doc, kwSpan)
	case "tuple":
		p.advance()
		return p.parseTypeLike(DeclTuple, doc, kwSpan)
	case "interface":
		p.advance()
		return p.parseInterface(doc, kwSpan)
	case "enum":
		p.advance()
		return p.parseEnum(doc, kwSpan)
	case "service":
		p.advance()
		return p.parseService(doc, kwSpan)
	default:
		p.diags.Errorf(p.cur().span, "unknown declaration keyword %q", p.cur().text)
		return nil, false
	}
}

func (p *parser) parseTypeLike(kind DeclKind, doc []string, start source.Span) (*Decl, bool) {
	name, ok := p.expect(tokIdent, "declaration name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		return nil, false
	}

	d := &Decl{Kind: kind, Name: name.text, Doc: doc}
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		memberDoc := p.collectDoc()
		switch {
		case p.at(tokCodeOpen):
			d.Code = append(d.Code, p.parseCodeBlock())
		case p.at(tokIdent) && (p.cur().text == "type" || p.cur().text == "tuple"):
			nestedKind := DeclType
			if p.cur().text == "tuple" {
				nestedKind = DeclTuple
			}
			kwStart := p.cur().span
			p.advance()
			nested, ok := p.parseTypeLike(nestedKind, memberDoc, kwStart)
			if ok {
				d.Nested = append(d.Nested, *nested)
			}
		default:
			f, ok := p.parseField(memberDoc)
			if ok {
				d.Fields = append(d.Fields, f)
			} else {
				p.recover()
			}
		}
	}
	p.expect(tokRBrace, "'}'")
	d.Span = start.Join(p.toks[p.pos-1].span)
	return d, true
}

func (p *parser) parseField(doc []string) (Field, bool) {
	ident, ok := p.expect(tokIdent, "field name")
	if !ok {
		return Field{}, false
	}
	f := Field{Ident: ident.text, Doc: doc}
	if p.at(tokQuestion) {
		p.advance()
		f.Optional = true
	}
	if _, ok := p.expect(tokColon, "':'"); !ok {
		return Field{}, false
	}
	ty, ok := p.parseType()
	if !ok {
		return Field{}, false
	}
	f.Type = ty
	if p.at(tokIdent) && p.cur().text == "as" {
		p.advance()
		wire, ok := p.expect(tokString, "wire name string")
		if ok {
			f.Alias = wire.text
		}
	}
	p.expect(tokSemicolon, "';'")
	f.Span = ident.span.Join(p.toks[p.pos-1].span)
	return f, true
}

func (p *parser) parseType() (TypeExpr, bool) {
	start := p.cur().span
	if p.at(tokLBracket) {
		p.advance()
		inner, ok := p.parseType()
		if !ok {
			return TypeExpr{}, false
		}
		p.expect(tokRBracket, "']'")
		return TypeExpr{ArrayOf: &inner, Span: start.Join(p.toks[p.pos-1].span)}, true
	}
	if p.at(tokLBrace) {
		p.advance()
		key, ok := p.parseType()
		if !ok {
			return TypeExpr{}, false
		}
		p.expect(tokColon, "':'")
		value, ok := p.parseType()
		if !ok {
			return TypeExpr{}, false
		}
		p.expect(tokRBrace, "'}'")
		return TypeExpr{MapKey: &key, MapValue: &value, Span: start.Join(p.toks[p.pos-1].span)}, true
	}

	id, ok := p.expect(tokIdent, "type")
	if !ok {
		return TypeExpr{}, false
	}
	switch id.text {
	case "string", "datetime", "bytes", "u32", "u64", "i32", "i64", "float", "double", "boolean", "any":
		return TypeExpr{Primitive: id.text, Span: id.span}, true
	}

	// Name reference: either `Name` or `prefix::Name[::Nested...]`.
	// The first part before a `::` is always taken as the prefix, and
	// a prefix is a single identifier. A leading `::` (an absolute
	// reference) is not accepted: it is reported as a missing type.
	te := TypeExpr{Prefix: "", Path: []string{id.text}, Span: id.span}
	for p.at(tokDoubleColon) {
		p.advance()
		next, ok := p.expect(tokIdent, "identifier after '::'")
		if !ok {
			break
		}
		if te.Prefix == "" && len(te.Path) == 1 {
			te.Prefix = te.Path[0]
			te.Path = []string{next.text}
		} else {
			te.Path = append(te.Path, next.text)
		}
	}
	te.Span = id.span.Join(p.toks[p.pos-1].span)
	return te, true
}

func (p *parser) parseCodeBlock() CodeBlock {
	start := p.cur().span
	p.advance() // {{
	for !p.at(tokCodeClose) && !p.at(tokEOF) {
		p.advance()
	}
	var lines []string
	if body := strings.TrimSpace(p.src.Text(start.End, p.cur().span.Start)); body != "" {
		lines = strings.Split(body, "\n")
	}
	p.expect(tokCodeClose, "'}}'")
	return CodeBlock{Lines: lines, Span: start.Join(p.toks[p.pos-1].span)}
}

func (p *parser) parseInterface(doc []string, start source.Span) (*Decl, bool) {
	name, ok := p.expect(tokIdent, "interface name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		return nil, false
	}

	d := &Decl{Kind: DeclInterface, Name: name.text, Doc: doc}
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		memberDoc := p.collectDoc()
		if p.at(tokIdent) && p.cur().text == "type" {
			kwStart := p.cur().span
			p.advance()
			sub, ok := p.parseSubType(memberDoc, kwStart)
			if ok {
				d.SubType = append(d.SubType, sub)
			} else {
				p.recover()
			}
			continue
		}
		f, ok := p.parseField(memberDoc)
		if ok {
			d.Fields = append(d.Fields, f)
		} else {
			p.recover()
		}
	}
	p.expect(tokRBrace, "'}'")
	d.Span = start.Join(p.toks[p.pos-1].span)
	return d, true
}

func (p *parser) parseSubType(doc []string, start source.Span) (SubType, bool) {
	name, ok := p.expect(tokIdent, "sub-type name")
	if !ok {
		return SubType{}, false
	}
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		return SubType{}, false
	}
	st := SubType{Name: name.text, Doc: doc}
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		memberDoc := p.collectDoc()
		f, ok := p.parseField(memberDoc)
		if !ok {
			p.recover()
			continue
		}
		st.Fields = append(st.Fields, f)
	}
	p.expect(tokRBrace, "'}'")
	st.Span = start.Join(p.toks[p.pos-1].span)
	return st, true
}

func (p *parser) parseEnum(doc []string, start source.Span) (*Decl, bool) {
	name, ok := p.expect(tokIdent, "enum name")
	if !ok {
		return nil, false
	}
	d := &Decl{Kind: DeclEnum, Name: name.text, Doc: doc}
	if p.at(tokIdent) && p.cur().text == "as" {
		p.advance()
		ty, ok := p.expect(tokIdent, "enum representation type")
		if ok {
			d.EnumType = ty.text
		}
	}
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		return nil, false
	}
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		memberDoc := p.collectDoc()
		if p.at(tokCodeOpen) {
			d.Code = append(d.Code, p.parseCodeBlock())
			continue
		}
		v, ok := p.parseVariant(memberDoc)
		if !ok {
			p.recover()
			continue
		}
		d.Variants = append(d.Variants, v)
	}
	p.expect(tokRBrace, "'}'")
	d.Span = start.Join(p.toks[p.pos-1].span)
	return d, true
}

func (p *parser) parseVariant(doc []string) (Variant, bool) {
	ident, ok := p.expect(tokIdent, "variant name")
	if !ok {
		return Variant{}, false
	}
	v := Variant{Ident: ident.text, Doc: doc}
	if p.at(tokIdent) && p.cur().text == "as" {
		p.advance()
		switch {
		case p.at(tokString):
			v.Value = p.advance().text
		case p.at(tokNumber):
			v.Value = p.advance().text
		default:
			p.diags.Errorf(p.cur().span, "expected variant value, found %q", p.cur().text)
		}
	}
	p.expect(tokSemicolon, "';'")
	v.Span = ident.span.Join(p.toks[p.pos-1].span)
	return v, true
}

func (p *parser) parseService(doc []string, start source.Span) (*Decl, bool) {
	name, ok := p.expect(tokIdent, "service name")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(tokLBrace, "'{'"); !ok {
		return nil, false
	}
	d := &Decl{Kind: DeclService, Name: name.text, Doc: doc}
	for !p.at(tokRBrace) && !p.at(tokEOF) {
		memberDoc := p.collectDoc()
		ep, ok := p.parseEndpoint(memberDoc)
		if !ok {
			p.recover()
			continue
		}
		d.Endpoints = append(d.Endpoints, ep)
	}
	p.expect(tokRBrace, "'}'")
	d.Span = start.Join(p.toks[p.pos-1].span)
	return d, true
}

func (p *parser) parseEndpoint(doc []string) (Endpoint, bool) {
	ident, ok := p.expect(tokIdent, "endpoint name")
	if !ok {
		return Endpoint{}, false
	}
	ep := Endpoint{Ident: ident.text, Doc: doc}
	if _, ok := p.expect(tokLParen, "'('"); !ok {
		return Endpoint{}, false
	}
	for !p.at(tokRParen) && !p.at(tokEOF) {
		ty, ok := p.parseType()
		if !ok {
			break
		}
		streaming := false
		if p.at(tokIdent) && p.cur().text == "stream" {
			p.advance()
			streaming = true
		}
		ep.Request = append(ep.Request, Channel{Type: ty, Streaming: streaming})
		if p.at(tokComma) {
			p.advance()
		}
	}
	p.expect(tokRParen, "')'")
	if p.at(tokIdent) && p.cur().text == "returns" {
		p.advance()
		if _, ok := p.expect(tokLParen, "'('"); ok {
			ty, ok := p.parseType()
			if ok {
				streaming := false
				if p.at(tokIdent) && p.cur().text == "stream" {
					p.advance()
					streaming = true
				}
				ep.Response = &Channel{Type: ty, Streaming: streaming}
			}
			p.expect(tokRParen, "')'")
		}
	}
	if p.at(tokAt) {
		p.advance()
		method, _ := p.expect(tokIdent, "HTTP method")
		path, _ := p.expect(tokString, "HTTP path")
		ep.HTTPMethod = method.text
		ep.HTTPPath = path.text
	}
	p.expect(tokSemicolon, "';'")
	ep.Span = ident.span.Join(p.toks[p.pos-1].span)
	return ep, true
}
