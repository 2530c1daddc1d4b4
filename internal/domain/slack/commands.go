package slack

import (
	"fmt"
	"strings"
	"unicode"
)

type CommandType string

const (
	CmdClockIn CommandType = "in"
	CmdLeave   CommandType = "leave"
	CmdStatus  CommandType = "status"
	CmdHelp    CommandType = "help"
	CmdUnknown CommandType = "unknown"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// keywords maps whitespace-free, lowercased text to a command. Chat clients
// send the Chinese menu labels; slash commands use the English words.
var keywords = buildKeywords(map[CommandType][]string{
	CmdClockIn: {"打卡上班", "我要打卡", "打卡", "clockin", "in"},
	CmdLeave:   {"我要請假", "請假", "leave"},
	CmdStatus:  {"今日狀態", "狀態", "status"},
	CmdHelp:    {"選單", "menu", "help"},
})

func buildKeywords(byCommand map[CommandType][]string) map[string]CommandType {
	out := make(map[string]CommandType)
	for cmd, words := range byCommand {
		for _, w := range words {
			out[w] = cmd
		}
	}
	return out
}

// ParseCommand parses the text of a slash command.
func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.TrimSpace(text))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Type: ParseKeyword(text),
		Raw:  text,
	}

	if cmd.Type == CmdUnknown {
		// "/clock in late" still means "in"
		cmd.Type = ParseKeyword(parts[0])
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	}

	if cmd.Type == CmdUnknown {
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseKeyword matches free chat text against the known keywords, ignoring
// whitespace and case. It never fails: unmatched text is CmdUnknown.
func ParseKeyword(text string) CommandType {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, text)

	if t, ok := keywords[compact]; ok {
		return t
	}
	return CmdUnknown
}

func GetHelpText() string {
	return `*Available Commands:*

• ` + "`/clock in`" + ` (or send "打卡") - Clock in; a reminder is sent shortly before you can leave
• ` + "`/clock leave`" + ` (or send "請假") - Mark today as a day off
• ` + "`/clock status`" + ` - Show today's records
• ` + "`/clock help`" + ` - Show this message`
}

// MenuHint is the reply to chat text that matches no keyword.
func MenuHint() string {
	return `Please choose from the menu: "我要打卡" (clock in) or "我要請假" (leave).`
}

// TextOnlyHint is the reply to events that carry no text.
func TextOnlyHint() string {
	return `Only text messages are supported. Send "我要打卡" (clock in) or "我要請假" (leave).`
}
