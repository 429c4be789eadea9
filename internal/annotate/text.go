// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package annotate

// Text is a parsed annotated text. It is built once by a Parser and never
// mutated afterwards.
type Text struct {
	Body    string   `json:"-"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
	Fields  FieldMap `json:"fields"`
}

// Parser parses annotated text against a Schema.
type Parser struct {
	schema Schema
	strict bool
}

// Option configures a Parser.
type Option func(*Parser)

// WithSchema replaces the DefaultSchema allow-list.
func WithSchema(s Schema) Option {
	return func(p *Parser) { p.schema = s }
}

// WithStrict makes the parser reject characters the grammar skips instead
// of dropping them.
func WithStrict(strict bool) Option {
	return func(p *Parser) { p.strict = strict }
}

// NewParser creates a Parser. Without options it uses DefaultSchema and
// skips unmatched characters.
func NewParser(opts ...Option) *Parser {
	p := &Parser{schema: DefaultSchema()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Schema returns the allow-list the parser checks fields against.
func (p *Parser) Schema() Schema {
	return p.schema
}

// Tokenize scans text, honoring the parser's strictness.
func (p *Parser) Tokenize(text string) (*TokenStream, error) {
	stream := scan(text)
	if p.strict && len(stream.Skipped) > 0 {
		return nil, unexpectedCharacterError(stream.Input, stream.Skipped[0].Text)
	}
	if err := stream.validate(); err != nil {
		return nil, err
	}
	return stream, nil
}

// Parse tokenizes body once and derives its content, tags and fields.
func (p *Parser) Parse(body string) (*Text, error) {
	stream, err := p.Tokenize(body)
	if err != nil {
		return nil, err
	}
	content, err := stream.Content()
	if err != nil {
		return nil, err
	}
	fields, err := p.schema.NormalizeFields(stream.Tokens[CategoryField])
	if err != nil {
		if mie, ok := AsMalformedInput(err); ok {
			mie.Body = body
		}
		return nil, err
	}
	return &Text{
		Body:    body,
		Content: content,
		Tags:    NormalizeTags(stream.Tokens[CategoryTag]),
		Fields:  fields,
	}, nil
}

var defaultParser = NewParser()

// Parse parses body with the DefaultSchema in permissive mode.
func Parse(body string) (*Text, error) {
	return defaultParser.Parse(body)
}
