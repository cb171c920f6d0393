package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"kremap/internal/trace"
)

// setupTracing reads the --trace* flags, attaches a tracer to the command
// context and returns the cleanup to run after the command.
func setupTracing(cmd *cobra.Command) (func(), error) {
	flags := cmd.Root().PersistentFlags()
	traceOutput, err := flags.GetString("trace")
	if err != nil {
		return nil, err
	}
	levelStr, err := flags.GetString("trace-level")
	if err != nil {
		return nil, err
	}
	modeStr, err := flags.GetString("trace-mode")
	if err != nil {
		return nil, err
	}
	formatStr, err := flags.GetString("trace-format")
	if err != nil {
		return nil, err
	}
	ringSize, err := flags.GetInt("trace-ring-size")
	if err != nil {
		return nil, err
	}
	heartbeatInterval, err := flags.GetDuration("trace-heartbeat")
	if err != nil {
		return nil, err
	}

	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	// --trace alone means phase level
	if level == trace.LevelOff && traceOutput != "" {
		level = trace.LevelPhase
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(ctx, trace.Nop))
		return func() {}, nil
	}

	mode, err := trace.ParseMode(modeStr)
	if err != nil {
		return nil, err
	}
	format, err := trace.ParseFormat(formatStr)
	if err != nil {
		return nil, err
	}
	tracer, err := trace.New(trace.Config{
		Level:      level,
		Mode:       mode,
		Format:     format,
		OutputPath: traceOutput,
		RingSize:   ringSize,
		Heartbeat:  heartbeatInterval,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(ctx, tracer))

	heartbeat := trace.StartHeartbeat(tracer, heartbeatInterval)
	return func() {
		heartbeat.Stop()
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

// dumpTraceRing writes the in-memory ring to stderr after a failed run.
func dumpTraceRing(cmd *cobra.Command) {
	ring, ok := trace.Ring(trace.FromContext(cmd.Context()))
	if !ok {
		return
	}
	if dropped := ring.Dropped(); dropped > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: last %d events (%d older dropped)\n", ring.Len(), dropped)
	} else {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: last %d events\n", ring.Len())
	}
	if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
	}
}
