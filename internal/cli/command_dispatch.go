package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/merma/internal/cli/formatter"
	"github.com/alexanderramin/merma/internal/domain"
	"github.com/alexanderramin/merma/internal/export"
	tea "github.com/charmbracelet/bubbletea"
)

// executeCommand dispatches a text command and returns a tea.Cmd.
// Session changes report through noticeMsg; help goes to the output area.
func (c *commandBar) executeCommand(input string) tea.Cmd {
	parts, err := splitShellArgs(input)
	if err != nil {
		return usageNotice(err.Error())
	}
	if len(parts) == 0 {
		return nil
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]
	ctx := context.Background()
	app := c.state.App

	switch cmd {
	case "add":
		if len(args) < 2 {
			return usageNotice("Usage: add <customer> <kg>")
		}
		customer := strings.Join(args[:len(args)-1], " ")
		return noticeCmd(execAddSale(ctx, app, customer, args[len(args)-1]))

	case "delete", "del", "rm":
		if len(args) != 1 {
			return usageNotice("Usage: delete <n>")
		}
		n, err := strconv.Atoi(strings.TrimPrefix(args[0], "#"))
		if err != nil {
			return usageNotice(fmt.Sprintf("Not a row number: %s", args[0]))
		}
		return noticeCmd(execDeleteSale(ctx, app, n-1))

	case "initial":
		if len(args) != 1 {
			return usageNotice("Usage: initial <kg>")
		}
		return noticeCmd(execSetInitial(ctx, app, args[0]))

	case "return", "returned":
		if len(args) != 1 {
			return usageNotice("Usage: return <kg>")
		}
		return noticeCmd(execSetReturned(ctx, app, args[0]))

	case "reset":
		return execConfirm(c.state, "Reset", "Clear all sales and weights?", func(ctx context.Context) domain.Notice {
			return execReset(ctx, app)
		})

	case "export":
		if len(args) != 1 {
			return usageNotice("Usage: export csv|xlsx")
		}
		kind, err := export.ParseKind(args[0])
		if err != nil {
			return usageNotice(err.Error())
		}
		return noticeCmd(execExport(ctx, app, kind))

	case "import":
		if len(args) != 1 {
			return usageNotice("Usage: import <file.csv>")
		}
		return noticeCmd(execImport(ctx, app, args[0]))

	case "help":
		return outputCmd(formatter.FormatHelp())
	case "clear":
		return noticeCmd(domain.Notice{})
	case "exit", "quit":
		return func() tea.Msg { return quitMsg{} }
	default:
		return usageNotice(fmt.Sprintf("Unknown command: %s. Type 'help' for available commands.", cmd))
	}
}

func usageNotice(msg string) tea.Cmd {
	return noticeCmd(domain.Notice{Level: domain.NoticeWarning, Message: msg})
}
