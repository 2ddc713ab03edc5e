package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/san-kum/linprimer/internal/config"
)

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "inspect and write configuration",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the resolved configuration to a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := setup(cmd)
			if err != nil {
				return err
			}
			path := "linprimer.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("%s exists (use --force to overwrite)", path)
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	profilesCmd := &cobra.Command{
		Use:   "profiles",
		Short: "list display profiles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PROFILE\tTHEME\tFPS\tPRECISION\tCANVAS")
			for _, name := range config.ListProfiles() {
				p := config.GetProfile(name)
				fmt.Fprintf(w, "%s\t%s\t%d\t%d\t%dx%d\n", name, p.Theme, p.FPS, p.Precision, p.Canvas.Width, p.Canvas.Height)
			}
			return w.Flush()
		},
	}

	cmd.AddCommand(initCmd, profilesCmd)
	return cmd
}
