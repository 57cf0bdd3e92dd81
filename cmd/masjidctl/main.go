package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate:  Create or update tables and indexes
// - expand:   Generate today's and tomorrow's schedule occurrences
// - plan:     Create broadcasts for occurrences inside the prep window
// - sweep:    Complete live broadcasts past their maximum duration
// - sign-url: Print a signed HLS playlist URL
// - token:    Mint a room access token

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := runSubcommand(ctx, os.Args[1:], newCtlFlags(flag.ExitOnError)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newCtlFlags(handling flag.ErrorHandling) *ctlFlags {
	planCmd := flag.NewFlagSet("plan", handling)
	signURLCmd := flag.NewFlagSet("sign-url", handling)
	tokenCmd := flag.NewFlagSet("token", handling)

	return &ctlFlags{
		Plan: planFlags{
			cmd:    planCmd,
			window: planCmd.Duration("window", 0, "Prep window (defaults to broadcast.prepWindow)"),
		},
		SignURL: signURLFlags{
			cmd:       signURLCmd,
			broadcast: signURLCmd.String("broadcast", "", "Broadcast ID"),
			ttl:       signURLCmd.Duration("ttl", 0, "URL lifetime (defaults to hls.urlTtl)"),
		},
		Token: tokenFlags{
			cmd:       tokenCmd,
			broadcast: tokenCmd.String("broadcast", "", "Broadcast ID"),
			identity:  tokenCmd.String("identity", "", "Participant identity"),
			publish:   tokenCmd.Bool("publish", false, "Grant publish permission"),
		},
	}
}

type ctlFlags struct {
	Plan    planFlags
	SignURL signURLFlags
	Token   tokenFlags
}

type planFlags struct {
	cmd    *flag.FlagSet
	window *time.Duration
}

type signURLFlags struct {
	cmd       *flag.FlagSet
	broadcast *string
	ttl       *time.Duration
}

type tokenFlags struct {
	cmd       *flag.FlagSet
	broadcast *string
	identity  *string
	publish   *bool
}

// runSubcommand dispatches args[0]; args[1:] are that subcommand's flags.
func runSubcommand(ctx context.Context, args []string, flags *ctlFlags) error {
	switch args[0] {
	case "migrate":
		return runMigrate(ctx)
	case "expand":
		return runExpand(ctx)
	case "plan":
		return handlePlan(ctx, args[1:], flags)
	case "sweep":
		return runSweep(ctx)
	case "sign-url":
		return handleSignURL(ctx, args[1:], flags)
	case "token":
		return handleToken(ctx, args[1:], flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handlePlan(ctx context.Context, args []string, flags *ctlFlags) error {
	if err := flags.Plan.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse plan flags")
	}
	if *flags.Plan.window < 0 {
		return errors.New("--window must not be negative")
	}

	return runPlan(ctx, *flags.Plan.window)
}

func handleSignURL(ctx context.Context, args []string, flags *ctlFlags) error {
	if err := flags.SignURL.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse sign-url flags")
	}
	if *flags.SignURL.broadcast == "" {
		return errors.New("--broadcast flag is required for sign-url command")
	}

	return runSignURL(ctx, *flags.SignURL.broadcast, *flags.SignURL.ttl)
}

func handleToken(ctx context.Context, args []string, flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}
	if *flags.Token.broadcast == "" || *flags.Token.identity == "" {
		return errors.New("--broadcast and --identity flags are required for token command")
	}

	return runToken(ctx, *flags.Token.broadcast, *flags.Token.identity, *flags.Token.publish)
}

func printUsage() {
	fmt.Println("Usage: masjidctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  migrate    Create or update tables and indexes")
	fmt.Println("  expand     Generate schedule occurrences for today and tomorrow")
	fmt.Println("  plan       Create broadcasts for occurrences inside the prep window")
	fmt.Println("  sweep      Complete live broadcasts past the maximum duration")
	fmt.Println("  sign-url   Print a signed HLS playlist URL")
	fmt.Println("  token      Mint a room access token")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  masjidctl plan -window 5m")
	fmt.Println("  masjidctl sign-url -broadcast 6f1c... -ttl 10m")
	fmt.Println("  masjidctl token -broadcast 6f1c... -identity publisher-ops -publish")
}
