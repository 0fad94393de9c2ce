package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/KrishnaVbs1001/Gator-Ticket-Master/internal/booking"
	pkgLog "github.com/KrishnaVbs1001/Gator-Ticket-Master/pkg/logger"
)

// Processor drives the booking service from a stream of textual commands,
// one per line, writing the rendered outcome of each to the output.
type Processor struct {
	svc booking.Service
	l   pkgLog.Logger
}

func NewProcessor(svc booking.Service, l pkgLog.Logger) *Processor {
	return &Processor{svc: svc, l: l}
}

// Run processes commands from r until Quit() or end of input. Malformed
// lines are logged and skipped; processing continues with the next line.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	out := bufio.NewWriter(w)
	defer out.Flush()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		cmd, err := ParseLine(line)
		if err != nil {
			p.l.Warnf(ctx, "skipping command %q: %v", line, err)
			continue
		}

		if cmd.Name == CmdQuit {
			if err := writeLines(out, []string{"Program Terminated!!"}); err != nil {
				return err
			}
			return out.Flush()
		}

		lines, err := p.execute(ctx, cmd)
		if err != nil {
			return fmt.Errorf("executing %s: %w", cmd.Name, err)
		}
		if err := writeLines(out, lines); err != nil {
			return err
		}
		// Keep the output file current even if a later command fails.
		if err := out.Flush(); err != nil {
			return err
		}
	}

	return scanner.Err()
}

func (p *Processor) execute(ctx context.Context, cmd *Command) ([]string, error) {
	switch cmd.Name {
	case CmdInitialize:
		out, err := p.svc.Initialize(ctx, cmd.Args[0])
		return renderInitialize(out, err)
	case CmdAvailable:
		out, err := p.svc.Available(ctx)
		return renderAvailable(out, err)
	case CmdReserve:
		out, err := p.svc.Reserve(ctx, cmd.Args[0], cmd.Args[1])
		return renderReserve(out, err)
	case CmdCancel:
		out, err := p.svc.Cancel(ctx, cmd.Args[0], cmd.Args[1])
		return renderCancel(cmd.Args[0], cmd.Args[1], out, err)
	case CmdExitWaitlist:
		out, err := p.svc.ExitWaitlist(ctx, cmd.Args[0])
		return renderExitWaitlist(cmd.Args[0], out, err)
	case CmdUpdatePriority:
		out, err := p.svc.UpdatePriority(ctx, cmd.Args[0], cmd.Args[1])
		return renderUpdatePriority(cmd.Args[0], out, err)
	case CmdAddSeats:
		out, err := p.svc.AddSeats(ctx, cmd.Args[0])
		return renderAddSeats(out, err)
	case CmdPrintReservations:
		rsvs, err := p.svc.Reservations(ctx)
		return renderReservations(rsvs, err)
	case CmdReleaseSeats:
		out, err := p.svc.ReleaseSeats(ctx, cmd.Args[0], cmd.Args[1])
		return renderReleaseSeats(out, err)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, string(cmd.Name))
	}
}

func writeLines(w *bufio.Writer, lines []string) error {
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			return err
		}
	}
	return nil
}
