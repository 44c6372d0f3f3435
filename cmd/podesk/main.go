package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/emorozco/podesk/internal/cli"
	"github.com/emorozco/podesk/internal/client"
	"github.com/emorozco/podesk/internal/infrastructure/config"
	"github.com/emorozco/podesk/internal/infrastructure/logging"
)

const usage = `podesk - purchase order desk

Usage:
  podesk list [-q text] [-status STATUS] [-currency CUR] [-min-total N] [-max-total N] [-from DATE] [-to DATE] [-clear]
  podesk show <id>
  podesk create -number PO-1 -supplier "Acme" [-status STATUS] [-amount N] [-currency CUR] [-delivery DATE]
  podesk edit <id> [-number ...] [-supplier ...] [-status ...] [-amount ...] [-currency ...] [-delivery ...]
  podesk delete <id>
  podesk dashboard
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.LoadOrEnv()
	logger := logging.NewLoggerWithSystem(cfg.Observability.Logging, "cli")

	app := &cli.App{
		Client: client.New(cfg.API.BaseURL, logger),
		Logger: logger,
		In:     os.Stdin,
		Out:    os.Stdout,
	}

	ctx := context.Background()
	command := os.Args[1]
	args := os.Args[2:]

	var runErr error
	switch command {
	case "list":
		flags, err := cli.ParseListFlags(args)
		if err != nil {
			os.Exit(2)
		}
		runErr = app.RunList(ctx, flags)
	case "show":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		runErr = app.RunShow(ctx, id)
	case "create":
		form, _, err := cli.ParseFormFlags("create", args)
		if err != nil {
			os.Exit(2)
		}
		runErr = app.RunCreate(ctx, form)
	case "edit":
		if len(args) < 1 {
			fmt.Fprintln(os.Stderr, "edit requires a purchase order id")
			os.Exit(2)
		}
		id, err := parseID(args[:1])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		form, _, err := cli.ParseFormFlags("edit", args[1:])
		if err != nil {
			os.Exit(2)
		}
		runErr = app.RunEdit(ctx, id, form)
	case "delete":
		id, err := parseID(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		runErr = app.RunDelete(ctx, id)
	case "dashboard":
		runErr = app.RunDashboard(ctx)
	case "help", "-h", "--help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", command, usage)
		os.Exit(2)
	}

	if runErr != nil {
		fmt.Fprintln(os.Stderr, runErr)
		os.Exit(1)
	}
}

func parseID(args []string) (int64, error) {
	if len(args) < 1 {
		return 0, fmt.Errorf("a purchase order id is required")
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid purchase order id %q", args[0])
	}
	return id, nil
}
