// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import (
	"fmt"
	"strings"

	"github.com/similigh/gc2gh/internal/source"
)

// TransformComment builds a target comment from a source comment.
// Failures are returned as *RecordError carrying the comment and parent issue ids.
func TransformComment(c *source.Comment, offset int) (Comment, error) {
	if err := validateComment(c); err != nil {
		return Comment{}, err
	}

	body := attribution(c.Author) + newline + blockquote(c.Content)
	if !c.IssueUpdates.IsEmpty() {
		body += newline + newline + FormatMetadataUpdates(c.IssueUpdates, c.Project, offset)
	}

	out := Comment{
		Body:      body,
		CreatedAt: NormalizeDate(c.Published),
		UpdatedAt: NormalizeDate(c.Updated),
		User:      userRef(c.Author.Email),
	}
	if c.ID > 0 {
		id := c.ID
		out.ID = &id
	}
	return out, nil
}

// attribution renders the line crediting the original author.
func attribution(author *source.Person) string {
	return fmt.Sprintf("_**[%s](%s) commented:**_", author.DisplayName, author.URI)
}

// blockquote quotes every line of the trimmed content.
// Content that is blank after trimming renders as a single non-breaking space.
func blockquote(content string) string {
	trimmed := strings.TrimSpace(strings.ReplaceAll(content, "\r\n", "\n"))
	if trimmed == "" {
		return "> &nbsp;"
	}
	return "> " + strings.ReplaceAll(trimmed, "\n", newline+"> ")
}
