package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/vms/vms/internal/logic/command"
)

const prompt = "vms> "

// runShell reads commands from in until exit or end of input.
func runShell(ctx context.Context, a *app, in io.Reader, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(out, a.styles.Title.Render("VMS - type help for the command reference"))

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, a.styles.Prompt.Render(prompt))
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		res, err := a.manager.Execute(ctx, line)
		if err != nil {
			msg := errorMessage(err)
			fmt.Fprintln(out, renderLines(a.styles.Error, msg))
			if msg == command.MessageUnknownCommand {
				if hints := a.suggestions(line); len(hints) > 0 {
					fmt.Fprintln(out, a.styles.Muted.Render("Did you mean: "+strings.Join(hints, ", ")+"?"))
				}
			}
			continue
		}
		fmt.Fprintln(out, a.render(res))
		if res.Exit {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
