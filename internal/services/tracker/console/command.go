// Package console implements the line-oriented tracker shell.
package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/louisbranch/hitpoints/internal/services/tracker/domain/body"
)

// Verb names a console command.
type Verb string

const (
	VerbSet    Verb = "set"
	VerbDamage Verb = "damage"
	VerbHeal   Verb = "heal"
	VerbSever  Verb = "sever"
	VerbAttach Verb = "attach"
	VerbReset  Verb = "reset"
	VerbShow   Verb = "show"
	VerbHelp   Verb = "help"
	VerbQuit   Verb = "quit"
)

// Command is one parsed console line.
type Command struct {
	Verb   Verb
	Part   body.Part
	Amount int
}

const usage = `commands:
  set <part> <value>    set a part to an absolute value
  damage <part> <n>     take n points from a part
  heal <part> <n>       restore n points to a part, up to its maximum
  sever <part>          sever a limb
  attach <part>         reattach a limb
  reset                 restore initial hit points
  show                  print the body
  help                  print this help
  quit                  leave
parts: head, torso, arm-left, arm-right, leg-left, leg-right
`

// ParseCommand parses one input line. Blank lines parse to the zero Command.
func ParseCommand(line string) (Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return Command{}, nil
	}
	verb := Verb(strings.ToLower(fields[0]))
	args := fields[1:]

	switch verb {
	case VerbReset, VerbShow, VerbHelp, VerbQuit:
		if len(args) != 0 {
			return Command{}, fmt.Errorf("%s takes no arguments", verb)
		}
		return Command{Verb: verb}, nil
	case "exit":
		return Command{Verb: VerbQuit}, nil
	case VerbSever, VerbAttach:
		if len(args) != 1 {
			return Command{}, fmt.Errorf("usage: %s <part>", verb)
		}
		part, err := body.ParsePart(args[0])
		if err != nil {
			return Command{}, err
		}
		return Command{Verb: verb, Part: part}, nil
	case VerbSet, VerbDamage, VerbHeal:
		if len(args) != 2 {
			return Command{}, fmt.Errorf("usage: %s <part> <n>", verb)
		}
		part, err := body.ParsePart(args[0])
		if err != nil {
			return Command{}, err
		}
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return Command{}, fmt.Errorf("%s: %q is not a whole number", verb, args[1])
		}
		return Command{Verb: verb, Part: part, Amount: amount}, nil
	default:
		return Command{}, fmt.Errorf("unknown command %q, try help", fields[0])
	}
}
