package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/san-kum/linprimer/internal/anim"
	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/numfmt"
	"github.com/san-kum/linprimer/internal/tex"
	"github.com/san-kum/linprimer/internal/tui"
	"github.com/san-kum/linprimer/internal/viz"
)

func sectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections",
		Short: "list sections",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tANIMATIONS")
			for _, s := range lesson.Summaries() {
				fmt.Fprintf(w, "%s\t%s\t%d\n", s.ID, s.Title, s.Animations)
			}
			return w.Flush()
		},
	}
}

func showCmd() *cobra.Command {
	var reveal, plain bool
	cmd := &cobra.Command{
		Use:   "show [section]",
		Short: "print a section with its animations at tick 0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			sec, err := lesson.Lookup(args[0])
			if err != nil {
				return err
			}

			page := tui.NewPage(sec, -1, logger)
			defer page.Close()
			page.Reveal = reveal

			theme := viz.GetTheme(cfg.Theme)
			md := tui.NewMarkdown(cfg.Canvas.Width, theme)
			if plain {
				md = tui.PlainMarkdown
			}
			lines := page.Lines(tui.Layout{
				Cols:     cfg.Canvas.Width,
				Theme:    theme,
				Styles:   viz.NewStyles(theme),
				Markdown: md,
			})
			fmt.Println(viz.NewStyles(theme).Title.Render(sec.Title))
			fmt.Println(strings.Join(lines, "\n"))
			return nil
		},
	}
	cmd.Flags().BoolVar(&reveal, "reveal", false, "draw blank scenes")
	cmd.Flags().BoolVar(&plain, "plain", false, "print prose as raw markdown")
	return cmd
}

func playCmd() *cobra.Command {
	var plain bool
	var ticks int
	cmd := &cobra.Command{
		Use:   "play [section] [index]",
		Short: "play one animation full screen",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			sec, err := lesson.Lookup(args[0])
			if err != nil {
				return err
			}
			index := 0
			if len(args) > 1 {
				if index, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("index: %w", err)
				}
			}

			if !plain {
				m, err := tui.NewPlayer(sec, index, tuiOptions(cfg, logger))
				if err != nil {
					return err
				}
				return tui.Run(m)
			}

			p, err := sec.Animation(index)
			if err != nil {
				return err
			}
			name := lesson.AnimationName(sec.ID, index)
			live := tui.NewLiveRenderer(os.Stdout, name, p, tui.LiveOptions{
				Theme:     viz.GetTheme(cfg.Theme),
				Cols:      cfg.Canvas.Width,
				FrameRate: cfg.FPS,
				Color:     true,
			})

			host := anim.NewHost(logger)
			host.Add(name, p)
			host.AddObserver(live)
			if ticks > 0 {
				host.AddObserver(anim.ObserverFunc(func(_ string, tick int) {
					if tick >= ticks {
						p.Stop()
					}
				}))
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			live.Start()
			defer live.Stop()
			live.Draw()
			if err := host.Run(ctx, cfg.FPS); err != nil && ctx.Err() == nil {
				return err
			}
			live.Draw()
			return nil
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "redraw in place instead of the full screen player")
	cmd.Flags().IntVar(&ticks, "ticks", 0, "stop after this many ticks (plain mode)")
	return cmd
}

func truncateCmd() *cobra.Command {
	var fixed bool
	cmd := &cobra.Command{
		Use:     "truncate [value] [precision]",
		Short:   "truncate a number toward negative infinity",
		Example: "  linprimer truncate 0.879 2    # 0.87\n  linprimer truncate -0.871 2   # -0.88",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			v, err := cast.ToFloat64E(args[0])
			if err != nil {
				return fmt.Errorf("value: %w", err)
			}
			p := cfg.Precision
			if len(args) > 1 {
				if p, err = strconv.Atoi(args[1]); err != nil {
					return fmt.Errorf("precision: %w", err)
				}
			}
			out := cmd.OutOrStdout()
			if fixed {
				fmt.Fprintln(out, numfmt.Fixed(v, p))
			} else {
				fmt.Fprintln(out, numfmt.Format(v, p))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&fixed, "fixed", false, "pad to exactly precision digits")
	return cmd
}

func matrixCmd() *cobra.Command {
	var inline, raw bool
	var env string
	cmd := &cobra.Command{
		Use:   "matrix [literal]",
		Short: `typeset a matrix literal such as "1,2;3,4"`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := tex.ParseLiteral(args[0])
			if err != nil {
				return err
			}
			e, err := tex.ParseEnvironment(env)
			if err != nil {
				return err
			}
			node := tex.NewNode(m, tex.Options{Inline: inline, Env: e})
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, node.Markup)
			if !raw {
				fmt.Fprintln(out, viz.Typeset(node))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&inline, "inline", false, "inline layout")
	cmd.Flags().StringVar(&env, "env", "bmatrix", "environment (bmatrix, pmatrix, vmatrix)")
	cmd.Flags().BoolVar(&raw, "raw", false, "print only the TeX markup")
	return cmd
}
