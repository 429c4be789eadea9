// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

/*
Package annotate parses annotated dictionary text into its plain content,
its context tags and its structured field annotations.

An annotated text is free-form, human-entered text such as:

	Ini adalah konsep cubaan #tag_1 #tag-2 {lang.en:concept} {meta.gol:NAMA}

Parsing runs three pure stages over a single pass of the input:

  - the tokenizer scans the text against an ordered grammar (field, tag,
    whitespace, content) and groups the matched spans by category;
  - the validator requires exactly one content run, so stray characters that
    split the content are reported instead of guessed around;
  - the normalizers turn raw `#tag` tokens into tag labels and raw
    `{namespace.subkey:value}` tokens into a FieldMap, checked against an
    explicit allow-list (Schema).

Every failure is a *MalformedInputError carrying enough context for a human
to correct the source text. The package holds no mutable state and is safe
for concurrent use.
*/
package annotate
