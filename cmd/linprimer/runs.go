package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"slices"
	"strconv"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/linprimer/internal/analysis"
	"github.com/san-kum/linprimer/internal/export"
	"github.com/san-kum/linprimer/internal/lesson"
	"github.com/san-kum/linprimer/internal/store"
	"github.com/san-kum/linprimer/internal/tour"
	"github.com/san-kum/linprimer/internal/tui"
	"github.com/san-kum/linprimer/internal/viz"
)

func sectionIndex(args []string) (*lesson.Section, int, error) {
	sec, err := lesson.Lookup(args[0])
	if err != nil {
		return nil, 0, err
	}
	index, err := strconv.Atoi(args[1])
	if err != nil {
		return nil, 0, fmt.Errorf("index: %w", err)
	}
	return sec, index, nil
}

func recordCmd() *cobra.Command {
	var ticks int
	var name, jsonPath string
	cmd := &cobra.Command{
		Use:   "record [section] [index]",
		Short: "play an animation headlessly and save its readouts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			sec, index, err := sectionIndex(args)
			if err != nil {
				return err
			}
			st, err := openStore(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			run, err := store.Record(ctx, sec, index, ticks)
			if err != nil {
				return err
			}
			opts := saveOptions(cfg)
			opts.Name = name
			id, err := st.Save(run, opts)
			if err != nil {
				return err
			}
			logger.Info("run saved", "id", id, "animation", lesson.AnimationName(sec.ID, index), "ticks", ticks, "dir", st.Dir())

			if jsonPath != "" {
				if err := store.ExportJSON(jsonPath, run); err != nil {
					return err
				}
			}

			fmt.Printf("run: %s\n", id)
			printMetrics(run.Metrics)
			return nil
		},
	}
	cmd.Flags().IntVar(&ticks, "ticks", 300, "number of ticks to record")
	cmd.Flags().StringVar(&name, "name", "", "name to refer to the run by")
	cmd.Flags().StringVar(&jsonPath, "json", "", `also export the run as JSON ("-" for stdout)`)
	return cmd
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func printMetrics(ms map[string]float64) {
	names := make([]string, 0, len(ms))
	for k := range ms {
		names = append(names, k)
	}
	slices.Sort(names)
	for _, k := range names {
		fmt.Printf("  %-16s %.4f\n", k, ms[k])
	}
}

func runsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			runs, err := store.New(cfg.DataDir).List()
			if err != nil {
				return err
			}
			if len(runs) == 0 {
				fmt.Println("no runs found")
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tANIMATION\tTICKS\tREADOUTS\tTIME")
			for _, run := range runs {
				fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n",
					shortID(run.ID),
					run.Name,
					lesson.AnimationName(run.Section, run.Index),
					run.Ticks,
					len(run.Readouts),
					run.Timestamp.Local().Format("2006-01-02 15:04:05"),
				)
			}
			return w.Flush()
		},
	}
}

func plotCmd() *cobra.Command {
	var svgPath string
	var height, width int
	cmd := &cobra.Command{
		Use:   "plot [run] [readout]",
		Short: "plot the readouts of a recorded run",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			st := store.New(cfg.DataDir)
			id, err := st.Resolve(args[0])
			if err != nil {
				return err
			}
			meta, err := st.Load(id)
			if err != nil {
				return err
			}
			frames, err := st.LoadFrames(id)
			if err != nil {
				return err
			}
			if len(frames.Columns) == 0 || len(frames.Ticks) == 0 {
				return fmt.Errorf("run %s has no readouts to plot", id)
			}

			columns := frames.Columns
			if len(args) > 1 {
				columns = []string{args[1]}
			}

			fmt.Printf("run: %s\n", meta.ID)
			fmt.Printf("animation: %s  %s\n", lesson.AnimationName(meta.Section, meta.Index), meta.Caption)
			fmt.Printf("samples: %d\n\n", len(frames.Ticks))

			for _, col := range columns {
				data, ok := frames.Column(col)
				if !ok {
					return fmt.Errorf("run %s has no readout %q (have %v)", id, col, frames.Columns)
				}
				graph := asciigraph.Plot(data,
					asciigraph.Height(height),
					asciigraph.Width(width),
					asciigraph.Caption(col+" vs tick"),
				)
				fmt.Println(graph)
				fmt.Println()

				if svgPath != "" {
					svg := export.SeriesToSVG(data, 800, 300, string(viz.GetTheme(cfg.Theme).Secondary))
					if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
						return err
					}
					fmt.Printf("wrote %s\n", svgPath)
					break
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&svgPath, "svg", "", "also write the first plotted readout as SVG")
	cmd.Flags().IntVar(&height, "height", 10, "graph height")
	cmd.Flags().IntVar(&width, "width", 80, "graph width")
	return cmd
}

func analyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze [run]",
		Short: "report the dominant period of each readout of a run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			st := store.New(cfg.DataDir)
			id, err := st.Resolve(args[0])
			if err != nil {
				return err
			}
			frames, err := st.LoadFrames(id)
			if err != nil {
				return err
			}
			if len(frames.Columns) == 0 {
				return fmt.Errorf("run %s has no readouts to analyze", id)
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "READOUT\tSAMPLES\tMEAN\tPERIOD\tAMPLITUDE")
			for _, col := range frames.Columns {
				data, _ := frames.Column(col)
				sp := analysis.Analyze(data)
				period := "-"
				if sp.Bin > 0 {
					period = fmt.Sprintf("%.1f", sp.Period)
				}
				fmt.Fprintf(w, "%s\t%d\t%.4f\t%s\t%.4f\n", col, sp.Samples, sp.Mean, period, sp.Amplitude)
			}
			return w.Flush()
		},
	}
}

func exportSVGCmd() *cobra.Command {
	var tick, cols int
	var out, background string
	cmd := &cobra.Command{
		Use:   "export-svg [section] [index]",
		Short: "render one frame of an animation as SVG",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			sec, index, err := sectionIndex(args)
			if err != nil {
				return err
			}
			p, err := sec.Animation(index)
			if err != nil {
				return err
			}
			defer p.Stop()

			frame, err := p.Advance(tick)
			if err != nil {
				return err
			}
			if cols <= 0 {
				cols = cfg.Canvas.Width
			}
			svg := export.SceneToSVG(frame.Scene, cols, export.Options{
				Theme:      viz.GetTheme(cfg.Theme),
				Background: background,
			})

			if out == "" || out == "-" {
				fmt.Println(svg)
				return nil
			}
			return os.WriteFile(out, []byte(svg), 0644)
		},
	}
	cmd.Flags().IntVar(&tick, "tick", 0, "tick to render")
	cmd.Flags().IntVar(&cols, "cols", 0, "canvas width in cells (default from config)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&background, "background", export.DefaultBackground, "background colour")
	return cmd
}

func tourCmd() *cobra.Command {
	var sweep string
	var ticks int
	var dryRun bool
	var parallel int
	cmd := &cobra.Command{
		Use:   "tour [file.yaml]",
		Short: "record a scripted sequence of animations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}

			var t *tour.Tour
			switch {
			case sweep != "":
				t, err = tour.Sweep(sweep, ticks)
			case len(args) == 1:
				t, err = tour.Load(args[0])
			default:
				return fmt.Errorf("give a tour file or --sweep <section>")
			}
			if err != nil {
				return err
			}

			r := &tour.Runner{Options: saveOptions(cfg), Logger: logger, Parallel: parallel}
			if !dryRun {
				if r.Store, err = openStore(cfg); err != nil {
					return err
				}
			}

			tui.PrintBanner(os.Stdout)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			results, err := r.Run(ctx, t)

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "STEP\tANIMATION\tTICKS\tRUN")
			for _, res := range results {
				id := "-"
				if res.RunID != "" {
					id = shortID(res.RunID)
				}
				fmt.Fprintf(w, "%d\t%s\t%d\t%s\n", res.Step, lesson.AnimationName(res.Section, res.Animation), res.Ticks, id)
			}
			if ferr := w.Flush(); ferr != nil {
				return ferr
			}
			return err
		},
	}
	cmd.Flags().StringVar(&sweep, "sweep", "", "record every animation of a section instead of a file")
	cmd.Flags().IntVar(&ticks, "ticks", tour.DefaultTicks, "ticks per step for --sweep")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "play the tour without saving runs")
	cmd.Flags().IntVar(&parallel, "parallel", 1, "record up to this many steps at once")
	return cmd
}
