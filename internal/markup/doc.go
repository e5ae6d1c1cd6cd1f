// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package markup implements the restricted bracketed markup used by the
// program reports and the email template.
//
// The language is a strict subset of XML-like text: single-level tag names
// made of letters, digits and spaces (`<full name>`), no attributes beyond a
// tolerated leading word, no escaping and no CDATA. Double brackets (`[[x]]`)
// mark template placeholders.
//
// # Pipeline
//
// Two independent passes run over every document:
//
//  1. CheckBalance walks the document with LocateNext and a nesting stack and
//     reports the first structural violation. It must run first.
//
//  2. Parse builds a tree of Nodes by repeatedly calling ExtractNext, a
//     non-greedy "<name>inner</name>" match, and resolving each inner span
//     depth-first.
//
// ExtractNext is tolerant: text before the first complete tag span, and text
// after the last one, is dropped without error. Callers rely on CheckBalance to
// catch the malformed documents that would otherwise lose data silently here.
package markup
