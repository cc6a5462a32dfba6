package parser

import (
	"strings"

	"github.com/vms/vms/internal/logic/command"
)

func parseAddKeyword(args string) (command.Command, error) {
	m := Tokenize(args, PrefixMainWord, PrefixKeyword)
	if !m.HasAll(PrefixMainWord, PrefixKeyword) || m.Preamble() != "" {
		return nil, invalidFormat(command.UsageAddKeyword)
	}
	if err := m.VerifyNoDuplicates(PrefixMainWord, PrefixKeyword); err != nil {
		return nil, err
	}
	mainWord, _ := m.Value(PrefixMainWord)
	kw, _ := m.Value(PrefixKeyword)
	if len(strings.Fields(mainWord)) != 1 || len(strings.Fields(kw)) != 1 {
		return nil, invalidFormat(command.UsageAddKeyword)
	}
	return command.AddKeywordCommand{MainWord: strings.ToLower(mainWord), Keyword: kw}, nil
}

func parseDeleteKeyword(args string) (command.Command, error) {
	words := strings.Fields(args)
	if len(words) != 1 {
		return nil, invalidFormat(command.UsageDeleteKeyword)
	}
	return command.DeleteKeywordCommand{Keyword: words[0]}, nil
}

func parseListKeywords(args string) (command.Command, error) {
	if strings.TrimSpace(args) != "" {
		return nil, invalidFormat(command.UsageListKeywords)
	}
	return command.ListKeywordsCommand{}, nil
}
