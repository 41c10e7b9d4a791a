package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrShwhale/ftml/internal/config"
	"github.com/MrShwhale/ftml/internal/trace"
)

// setupTracing inspects trace flags (falling back to [trace] in ftml.toml)
// and attaches the tracer to the command context. It returns a cleanup function.
func setupTracing(cmd *cobra.Command, cfg *config.Config) (func(), error) {
	pf := cmd.Root().PersistentFlags()
	tc := cfg.TraceConfig()

	if pf.Changed("trace-level") || tc.Level == trace.LevelOff {
		levelStr, err := pf.GetString("trace-level")
		if err != nil {
			return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
		}
		if tc.Level, err = trace.ParseLevel(levelStr); err != nil {
			return nil, err
		}
	}
	if out, _ := pf.GetString("trace"); pf.Changed("trace") {
		tc.OutputPath = out
		if tc.Level == trace.LevelOff {
			tc.Level = trace.LevelPhase
		}
	}
	if pf.Changed("trace-mode") || tc.Mode == 0 {
		modeStr, _ := pf.GetString("trace-mode")
		mode, err := trace.ParseMode(modeStr)
		if err != nil {
			return nil, err
		}
		tc.Mode = mode
	}
	if pf.Changed("trace-format") {
		formatStr, _ := pf.GetString("trace-format")
		format, err := trace.ParseFormat(formatStr)
		if err != nil {
			return nil, err
		}
		tc.Format = format
	}
	tc.RingSize, _ = pf.GetInt("trace-ring-size")

	if tc.Level == trace.LevelOff {
		cmd.SetContext(trace.WithTracer(cmd.Context(), trace.Nop))
		return func() {}, nil
	}

	tracer, err := trace.New(tc)
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer: %w", err)
	}
	cmd.SetContext(trace.WithTracer(cmd.Context(), tracer))

	return func() {
		// кольцевой буфер некуда писать на лету, выгружаем при выходе
		if ring, ok := tracer.(*trace.RingTracer); ok {
			if err := ring.Dump(cmd.ErrOrStderr(), trace.FormatText); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "trace: dump error: %v\n", err)
			}
		}
		if err := tracer.Flush(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: flush error: %v\n", err)
		}
		if err := tracer.Close(); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "trace: close error: %v\n", err)
		}
	}, nil
}

func tracerFrom(cmd *cobra.Command) trace.Tracer {
	if cmd.Context() == nil {
		return trace.Nop
	}
	return trace.FromContext(cmd.Context())
}
