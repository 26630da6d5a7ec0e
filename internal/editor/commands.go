package editor

import (
	"fmt"

	"linuxword/internal/document"
)

// Command is a toolbar formatting command.
type Command string

const (
	CommandBold        Command = "bold"
	CommandItalic      Command = "italic"
	CommandUnderline   Command = "underline"
	CommandHeading1    Command = "h1"
	CommandHeading2    Command = "h2"
	CommandHeading3    Command = "h3"
	CommandBulletList  Command = "bullet-list"
	CommandAlignLeft   Command = "align-left"
	CommandAlignCenter Command = "align-center"
	CommandAlignRight  Command = "align-right"
)

// Commands lists the toolbar commands in toolbar order.
var Commands = []Command{
	CommandBold,
	CommandItalic,
	CommandUnderline,
	CommandHeading1,
	CommandHeading2,
	CommandHeading3,
	CommandBulletList,
	CommandAlignLeft,
	CommandAlignCenter,
	CommandAlignRight,
}

var commandActions = map[Command]Action{
	CommandBold:        ToggleInlineStyle{Style: document.Bold},
	CommandItalic:      ToggleInlineStyle{Style: document.Italic},
	CommandUnderline:   ToggleInlineStyle{Style: document.Underline},
	CommandHeading1:    ToggleBlockType{Type: document.HeaderOne},
	CommandHeading2:    ToggleBlockType{Type: document.HeaderTwo},
	CommandHeading3:    ToggleBlockType{Type: document.HeaderThree},
	CommandBulletList:  ToggleBlockType{Type: document.UnorderedListItem},
	CommandAlignLeft:   ToggleBlockType{Type: document.AlignLeft},
	CommandAlignCenter: ToggleBlockType{Type: document.AlignCenter},
	CommandAlignRight:  ToggleBlockType{Type: document.AlignRight},
}

// ParseCommand returns the command named s.
func ParseCommand(s string) (Command, error) {
	c := Command(s)
	if _, ok := commandActions[c]; !ok {
		return "", fmt.Errorf("unknown command %q", s)
	}
	return c, nil
}

// Action returns the reducer action performed by the command.
func (c Command) Action() (Action, error) {
	a, ok := commandActions[c]
	if !ok {
		return nil, fmt.Errorf("unknown command %q", string(c))
	}
	return a, nil
}
