package newsletter

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

const MaxTitleLength = 256

var (
	ErrEmptyTitle       = errors.New("newsletter title cannot be empty")
	ErrTitleTooLong     = errors.New("newsletter title is too long")
	ErrEmptyHTMLContent = errors.New("newsletter html content cannot be empty")
	ErrEmptyTextContent = errors.New("newsletter text content cannot be empty")
)

type Content struct {
	html string
	text string
}

func NewContent(html, text string) (Content, error) {
	if strings.TrimSpace(html) == "" {
		return Content{}, ErrEmptyHTMLContent
	}
	if strings.TrimSpace(text) == "" {
		return Content{}, ErrEmptyTextContent
	}
	return Content{html: html, text: text}, nil
}

func (c Content) HTML() string { return c.html }
func (c Content) Text() string { return c.text }

// Issue is immutable once created.
type Issue struct {
	id          uuid.UUID
	title       string
	content     Content
	publishedAt time.Time
}

func NewIssue(title string, content Content, now time.Time) (*Issue, error) {
	t := strings.TrimSpace(title)
	if t == "" {
		return nil, ErrEmptyTitle
	}
	if len([]rune(t)) > MaxTitleLength {
		return nil, ErrTitleTooLong
	}
	return &Issue{
		id:          uuid.New(),
		title:       t,
		content:     content,
		publishedAt: now,
	}, nil
}

// ReconstructIssue rebuilds an issue loaded from storage without re-validating it.
func ReconstructIssue(id uuid.UUID, title, html, text string, publishedAt time.Time) *Issue {
	return &Issue{
		id:          id,
		title:       title,
		content:     Content{html: html, text: text},
		publishedAt: publishedAt,
	}
}

func (i *Issue) ID() uuid.UUID          { return i.id }
func (i *Issue) Title() string          { return i.title }
func (i *Issue) Content() Content       { return i.content }
func (i *Issue) PublishedAt() time.Time { return i.publishedAt }
