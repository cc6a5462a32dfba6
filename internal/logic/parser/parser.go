// Package parser turns a line of user input into a command. Every argument is
// validated here, so a command that reaches Execute only has to check the
// state of the model.
package parser

import (
	"strings"

	"github.com/vms/vms/internal/domain/keyword"
	"github.com/vms/vms/internal/logic/command"
	"github.com/vms/vms/pkg/pagination"
)

// Parser dispatches on the main command word and the sub-command word.
type Parser struct {
	keywords *keyword.Manager
	pageSize int
}

// New returns a Parser that resolves aliases through keywords. pageSize is the
// listing page size; non-positive values fall back to pagination.DefaultLimit.
func New(keywords *keyword.Manager, pageSize int) *Parser {
	if keywords == nil {
		keywords = keyword.NewManager()
	}
	return &Parser{keywords: keywords, pageSize: pageSize}
}

// Parse reads one command line.
func (p *Parser) Parse(line string) (command.Command, error) {
	group, rest := splitWord(line)
	if group == "" {
		return nil, invalidFormat(command.UsageHelp)
	}
	switch strings.ToLower(group) {
	case command.WordHelp:
		return command.HelpCommand{}, nil
	case command.WordExit:
		return command.ExitCommand{}, nil
	}

	group = p.resolve(group)
	word, args := splitWord(rest)
	word = strings.ToLower(word)

	switch group {
	case command.GroupPatient:
		return p.parsePatient(word, args)
	case command.GroupAppointment:
		return p.parseAppointment(word, args)
	case command.GroupVaccination:
		return p.parseVaccination(word, args)
	case command.GroupKeyword:
		return p.parseKeyword(word, args)
	}
	return nil, newParseError(command.MessageUnknownCommand)
}

// resolve maps an alias to its main word. Main words match ignoring case.
func (p *Parser) resolve(word string) string {
	lower := strings.ToLower(word)
	for _, g := range command.Groups {
		if g == lower {
			return g
		}
	}
	if category, ok := p.keywords.Resolve(word); ok {
		return category
	}
	return lower
}

func (p *Parser) parsePatient(word, args string) (command.Command, error) {
	switch word {
	case command.WordAdd:
		return parseAddPatient(args)
	case command.WordEdit:
		return parseEditPatient(args)
	case command.WordDelete:
		return parseDeletePatient(args)
	case command.WordFind:
		return parseFindPatient(args)
	case command.WordList:
		return p.parseListPatients(args)
	}
	return nil, newParseError(command.MessageUnknownCommand)
}

func (p *Parser) parseAppointment(word, args string) (command.Command, error) {
	switch word {
	case command.WordAdd:
		return parseAddAppointment(args)
	case command.WordEdit:
		return parseEditAppointment(args)
	case command.WordDelete:
		return parseDeleteAppointment(args)
	case command.WordFind:
		return parseFindAppointment(args)
	case command.WordMark:
		return parseMarkAppointment(args, true)
	case command.WordUnmark:
		return parseMarkAppointment(args, false)
	case command.WordList:
		return p.parseListAppointments(args)
	}
	return nil, newParseError(command.MessageUnknownCommand)
}

func (p *Parser) parseVaccination(word, args string) (command.Command, error) {
	switch word {
	case command.WordAdd:
		return parseAddVaxType(args)
	case command.WordDelete:
		return parseDeleteVaxType(args)
	case command.WordFind:
		return parseFindVaxType(args)
	case command.WordList:
		return p.parseListVaxTypes(args)
	}
	return nil, newParseError(command.MessageUnknownCommand)
}

func (p *Parser) parseKeyword(word, args string) (command.Command, error) {
	switch word {
	case command.WordAdd:
		return parseAddKeyword(args)
	case command.WordDelete:
		return parseDeleteKeyword(args)
	case command.WordList:
		return parseListKeywords(args)
	}
	return nil, newParseError(command.MessageUnknownCommand)
}

func (p *Parser) parsePage(args, usage string) (pagination.Params, error) {
	page, err := ParsePage(args)
	if err != nil {
		return pagination.Params{}, invalidFormat(usage)
	}
	return pagination.FromPage(page, p.pageSize), nil
}

// splitWord returns the first whitespace-delimited word of s and the rest.
func splitWord(s string) (string, string) {
	s = strings.TrimSpace(s)
	if i := strings.IndexFunc(s, isSpace); i >= 0 {
		return s[:i], strings.TrimSpace(s[i:])
	}
	return s, ""
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
