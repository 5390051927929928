package deck

import (
	"bufio"
	"io"
	"strings"
)

const (
	contentPrefix = "Q:"
	backPrefix    = "A:"
	tagsPrefix    = "C:"
	separator     = "---"
)

type field int

const (
	seeking field = iota
	readingContent
	readingBack
	readingTags
)

// ParseMarkdown reads Q:/A:/C: blocks. Q is the fact, A its back side and C a
// comma-separated tag list. A new Q or a "---" line starts the next fact.
func ParseMarkdown(name string, r io.Reader) (*Deck, error) {
	d := New(name)
	if d.Name == "" {
		return nil, &ParseError{Reason: "Deck name is required"}
	}

	var content, back, tags []string
	current := seeking

	flush := func() error {
		if len(content) > 0 {
			text := strings.Join(content, "\n")
			var tagList []string
			if len(tags) > 0 {
				tagList = strings.Split(strings.Join(tags, ","), ",")
			}
			if strings.TrimSpace(text) != "" {
				if _, err := d.AddFact(text, strings.Join(back, "\n"), "", tagList); err != nil {
					return err
				}
			}
		}
		content, back, tags = nil, nil, nil
		current = seeking
		return nil
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()

		switch {
		case strings.TrimSpace(line) == separator:
			if err := flush(); err != nil {
				return nil, err
			}
		case strings.HasPrefix(line, contentPrefix):
			if current != seeking {
				if err := flush(); err != nil {
					return nil, err
				}
			}
			current = readingContent
			content = append(content, stripPrefix(line, contentPrefix))
		case strings.HasPrefix(line, backPrefix):
			current = readingBack
			back = append(back, stripPrefix(line, backPrefix))
		case strings.HasPrefix(line, tagsPrefix):
			current = readingTags
			tags = append(tags, stripPrefix(line, tagsPrefix))
		case current == readingContent:
			content = append(content, line)
		case current == readingBack:
			back = append(back, line)
		case current == readingTags:
			tags = append(tags, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{Reason: "Failed to read deck file", Wrapped: err}
	}
	if err := flush(); err != nil {
		return nil, &ParseError{Reason: "Invalid fact in deck file", Wrapped: err}
	}

	if d.Count() == 0 {
		return nil, &ParseError{Reason: "Deck file contains no facts"}
	}
	return d, nil
}

func stripPrefix(line, prefix string) string {
	return strings.TrimPrefix(line[len(prefix):], " ")
}
