package main

import (
	"context"
	"flag"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Each case fails validation before any dependency is built.
func TestRunSubcommand_RejectsBadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "unknown", args: []string{"rollback"}, wantErr: "unknown subcommand"},
		{name: "negative window", args: []string{"plan", "-window", "-1m"}, wantErr: "must not be negative"},
		{name: "bad window", args: []string{"plan", "-window", "soon"}, wantErr: "parse plan flags"},
		{name: "sign-url without broadcast", args: []string{"sign-url", "-ttl", "5m"}, wantErr: "--broadcast"},
		{name: "token without identity", args: []string{"token", "-broadcast", "b-1"}, wantErr: "--identity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := newCtlFlags(flag.ContinueOnError)
			flags.Plan.cmd.SetOutput(io.Discard)

			err := runSubcommand(context.Background(), tt.args, flags)

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
