// SPDX-License-Identifier: MIT

package command

import (
	"fmt"
	"strings"
)

const (
	// DefaultMaxTokens is the number of tokens kept from one line.
	DefaultMaxTokens = 50

	// DefaultMaxTokenLen is the longest accepted token, in bytes.
	DefaultMaxTokenLen = 25
)

// Command is the token list of one input line. Tokens()[0] is the verb.
type Command struct {
	tokens []string
}

// Verb returns the first token.
func (c *Command) Verb() string {
	if c == nil || len(c.tokens) == 0 {
		return ""
	}

	return c.tokens[0]
}

// Args returns every token after the verb.
func (c *Command) Args() []string {
	if c == nil || len(c.tokens) < 2 {
		return nil
	}

	return c.tokens[1:]
}

// Len returns the token count, verb included.
func (c *Command) Len() int {
	if c == nil {
		return 0
	}

	return len(c.tokens)
}

// Tokens returns a copy of every token.
func (c *Command) Tokens() []string {
	if c == nil {
		return nil
	}

	return append([]string(nil), c.tokens...)
}

func (c *Command) String() string {
	if c == nil {
		return ""
	}

	return strings.Join(c.tokens, " ")
}

// Parser splits input lines into Commands. The zero value uses the defaults.
type Parser struct {
	MaxTokens   int // tokens past this count are dropped
	MaxTokenLen int // longer tokens fail with ErrTokenTooLong
}

// Parse splits line on whitespace (spaces, tabs, newlines).
// Errors: ErrEmptyInput for a line without tokens, ErrTokenTooLong.
func (p Parser) Parse(line string) (*Command, error) {
	maxTokens, maxLen := p.MaxTokens, p.MaxTokenLen
	if maxTokens <= 0 {
		maxTokens = DefaultMaxTokens
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxTokenLen
	}

	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, ErrEmptyInput
	}
	if len(fields) > maxTokens {
		fields = fields[:maxTokens]
	}
	for i, f := range fields {
		if len(f) > maxLen {
			return nil, fmt.Errorf("token %d (%d bytes, max %d): %w", i, len(f), maxLen, ErrTokenTooLong)
		}
	}

	return &Command{tokens: fields}, nil
}

// Parse splits line with the default Parser.
func Parse(line string) (*Command, error) {
	return Parser{}.Parse(line)
}
