package command

import (
	"strings"
	"unicode"
)

// Command is a chat message split into a verb and its arguments
type Command struct {
	Verb string
	Args []string
}

// Tokenize splits raw message text into a command.
// The verb is lowercased and a "@botname" suffix from group chats is dropped.
func Tokenize(raw string) Command {
	fields := strings.Fields(cleanText(raw))
	if len(fields) == 0 {
		return Command{}
	}

	verb := strings.ToLower(fields[0])
	if strings.HasPrefix(verb, "/") {
		if i := strings.Index(verb, "@"); i > 0 {
			verb = verb[:i]
		}
	}

	return Command{
		Verb: verb,
		Args: fields[1:],
	}
}

// DateToken returns the first argument, where commands expect a date
func (c Command) DateToken() string {
	if len(c.Args) == 0 {
		return ""
	}
	return c.Args[0]
}

// Description returns every argument after the date token, joined by single spaces
func (c Command) Description() string {
	if len(c.Args) < 2 {
		return ""
	}
	return strings.Join(c.Args[1:], " ")
}

// Rest returns all arguments joined by single spaces
func (c Command) Rest() string {
	return strings.Join(c.Args, " ")
}

// cleanText turns whitespace into separators and drops control characters.
// Format characters such as zero width joiners are part of the text and stay.
func cleanText(text string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return ' '
		case unicode.IsControl(r):
			return -1
		default:
			return r
		}
	}, text)
}
