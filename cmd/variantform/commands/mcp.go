package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/variantform/variantform/internal/mcpserver"
)

// SetupMCPFlags creates the FlagSet for the mcp command.
func SetupMCPFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("mcp", pflag.ContinueOnError)

	fs.Usage = func() {
		Writef(Stderr, "Usage: variantform mcp\n\n")
		Writef(Stderr, "Serve the Model Context Protocol over stdio.\n\n")
		Writef(Stderr, "Tools: surfaces, resolve, diff, status, validate, preview\n\n")
		Writef(Stderr, "Environment:\n")
		Writef(Stderr, "  VARIANTFORM_PROJECT         default project root (default: .)\n")
		Writef(Stderr, "  VARIANTFORM_MAX_DEPTH       glob expansion depth (default: 10)\n")
		Writef(Stderr, "  VARIANTFORM_STALE_KEYS      recursive or top-level (default: recursive)\n")
		Writef(Stderr, "  VARIANTFORM_DIFF_PATCH      include patches in diff output (default: false)\n")
		Writef(Stderr, "  VARIANTFORM_VALIDATE_LIMIT  default page size for validate (default: 100)\n")
		Writef(Stderr, "  VARIANTFORM_MAX_INLINE_SIZE maximum preview content in bytes (default: 1048576)\n")
	}

	return fs
}

// HandleMCP executes the mcp command. It blocks until the client disconnects
// or the process is interrupted.
func HandleMCP(args []string) error {
	fs := SetupMCPFlags()

	if err := fs.Parse(args); err != nil {
		return handleParseError(err)
	}
	if fs.NArg() != 0 {
		fs.Usage()
		return fmt.Errorf("mcp command takes no arguments")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return mcpserver.Run(ctx)
}
