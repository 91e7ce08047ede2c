package tools

import (
	"context"
	"fmt"
	"strings"

	"dotserve/internal/dotfiles"
	"dotserve/internal/logging"
)

// Message shown when the repository is empty or cannot be reached. The two
// cases render identically on purpose; the Result kind tells them apart.
const msgNoDotfiles = "No dotfiles found or git repository not accessible."

// QueryService is the slice of dotfiles.Queries the dispatcher needs.
type QueryService interface {
	ListTracked(ctx context.Context) ([]string, error)
	ReadFile(path string) dotfiles.ReadResult
}

// Dispatcher maps (tool name, arguments) pairs onto dotfile queries and
// formats the outcome as text.
type Dispatcher struct {
	queries QueryService
	logger  *logging.AppLogger
}

func NewDispatcher(queries QueryService, logger *logging.AppLogger) *Dispatcher {
	return &Dispatcher{
		queries: queries,
		logger:  logger,
	}
}

// Invoke executes the named tool. It never fails at the transport level:
// unknown tools, missing arguments and backend failures all come back as a
// tagged Result whose text is the complete user-visible response.
func (d *Dispatcher) Invoke(ctx context.Context, name string, args map[string]any) Result {
	d.logger.Debug("Tool invoked", "tool", name)

	switch name {
	case ToolListDotfiles:
		return d.listDotfiles(ctx)
	case ToolGetDotfileContent:
		return d.getDotfileContent(args)
	default:
		return Result{
			Kind: KindUnknownTool,
			Text: fmt.Sprintf("Unknown tool: %s", name),
		}
	}
}

func (d *Dispatcher) listDotfiles(ctx context.Context) Result {
	files, err := d.queries.ListTracked(ctx)
	if err != nil {
		d.logger.Warn("Listing tracked files failed", "error", err)
		return Result{Kind: KindRepoUnavailable, Text: msgNoDotfiles}
	}
	if len(files) == 0 {
		return Result{Kind: KindOK, Text: msgNoDotfiles}
	}

	return Result{
		Kind: KindOK,
		Text: fmt.Sprintf("Found %d dotfiles:\n\n%s", len(files), strings.Join(files, "\n")),
	}
}

func (d *Dispatcher) getDotfileContent(args map[string]any) Result {
	filepath, _ := args[ArgFilepath].(string)
	if filepath == "" {
		return Result{
			Kind: KindMissingArgument,
			Text: "Error: filepath is required",
		}
	}

	res := d.queries.ReadFile(filepath)

	header := fmt.Sprintf("Content of %s:\n\n", filepath)
	switch res.Status {
	case dotfiles.ReadNotFound:
		return Result{
			Kind: KindFileNotFound,
			Text: header + fmt.Sprintf("File not found: %s", filepath),
		}
	case dotfiles.ReadFailed:
		d.logger.Warn("Reading dotfile failed", "filepath", filepath, "error", res.Err)
		return Result{
			Kind: KindReadFailure,
			Text: header + fmt.Sprintf("Error reading file: %s", res.Err),
		}
	default:
		return Result{Kind: KindOK, Text: header + res.Content}
	}
}
