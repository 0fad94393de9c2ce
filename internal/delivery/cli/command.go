// Package cli is the textual adapter around the booking service: it
// parses one command per input line, invokes the matching operation and
// renders the structured outcome as the system's output lines.
package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandName string

const (
	CmdInitialize        CommandName = "Initialize"
	CmdAvailable         CommandName = "Available"
	CmdReserve           CommandName = "Reserve"
	CmdCancel            CommandName = "Cancel"
	CmdExitWaitlist      CommandName = "ExitWaitlist"
	CmdUpdatePriority    CommandName = "UpdatePriority"
	CmdAddSeats          CommandName = "AddSeats"
	CmdPrintReservations CommandName = "PrintReservations"
	CmdReleaseSeats      CommandName = "ReleaseSeats"
	CmdQuit              CommandName = "Quit"
)

// arity maps each command to its required argument count.
var arity = map[CommandName]int{
	CmdInitialize:        1,
	CmdAvailable:         0,
	CmdReserve:           2,
	CmdCancel:            2,
	CmdExitWaitlist:      1,
	CmdUpdatePriority:    2,
	CmdAddSeats:          1,
	CmdPrintReservations: 0,
	CmdReleaseSeats:      2,
	CmdQuit:              0,
}

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrBadCommand     = errors.New("malformed command")
)

// Command is one parsed input line, e.g. Reserve(4, 2).
type Command struct {
	Name CommandName
	Args []int
}

// ParseLine parses a single `Name(arg, arg)` line. Whitespace around the
// line and around arguments is ignored.
func ParseLine(line string) (*Command, error) {
	line = strings.TrimSpace(line)

	open := strings.Index(line, "(")
	end := strings.LastIndex(line, ")")
	if open == -1 || end == -1 || end < open {
		return nil, fmt.Errorf("%w: %q", ErrBadCommand, line)
	}

	name := CommandName(strings.TrimSpace(line[:open]))
	want, ok := arity[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, string(name))
	}

	cmd := &Command{Name: name}
	inner := strings.TrimSpace(line[open+1 : end])
	if inner != "" {
		for _, raw := range strings.Split(inner, ",") {
			arg, err := strconv.Atoi(strings.TrimSpace(raw))
			if err != nil {
				return nil, fmt.Errorf("%w: bad argument %q in %q", ErrBadCommand, raw, line)
			}
			cmd.Args = append(cmd.Args, arg)
		}
	}

	if len(cmd.Args) != want {
		return nil, fmt.Errorf("%w: %s takes %d arguments, got %d", ErrBadCommand, name, want, len(cmd.Args))
	}

	return cmd, nil
}
