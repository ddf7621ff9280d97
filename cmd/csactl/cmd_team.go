package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"csa-console/internal/export"
	"csa-console/internal/roster"
)

func newTeamCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Inspect and edit the team roster",
	}
	cmd.AddCommand(newTeamListCmd(a), newTeamExportCmd(a), newTeamApplyCmd(a))
	return cmd
}

func newTeamListCmd(a *app) *cobra.Command {
	var scheme, search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List team members",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := a.client().ListUsers(cmd.Context())
			if err != nil {
				return err
			}
			members = roster.Filter(members, scheme, search)

			tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "UUID\tNAME\tEMAIL\tACCESS\tSCHEMES")
			for _, m := range members {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", m.UUID, m.Name, m.Email, m.AccessRights, strings.Join(m.Schemes, ", "))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVar(&scheme, "scheme", "", "only members assigned to this scheme")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on name, email or dept")
	return cmd
}

func newTeamExportCmd(a *app) *cobra.Command {
	var output, scheme, search string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the roster as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			members, err := a.client().ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = a.out
			if output != "" && output != "-" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("create %s: %w", output, err)
				}
				defer f.Close()
				w = f
			}
			return export.Roster(w, roster.Filter(members, scheme, search))
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&scheme, "scheme", "", "only members assigned to this scheme")
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive match on name, email or dept")
	return cmd
}

func newTeamApplyCmd(a *app) *cobra.Command {
	var (
		file         string
		abortOnError bool
		dryRun       bool
	)

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Apply roster edits from a YAML file",
		Long: `Loads the current roster, applies the edits from the file on top of it and
sends only what changed: member details, then schemes, then deletions.
Each request is independent; the summary lists what failed.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				return errors.New("-f is required")
			}
			rf, err := loadRosterFile(file)
			if err != nil {
				return err
			}

			client := a.client()
			members, err := client.ListUsers(cmd.Context())
			if err != nil {
				return err
			}

			editor := roster.NewEditor(members)
			if err := editor.Begin(); err != nil {
				return err
			}
			if err := rf.applyTo(editor); err != nil {
				return err
			}
			plan, err := editor.Plan()
			if err != nil {
				return err
			}

			ops := plan.Operations()
			if len(ops) == 0 {
				fmt.Fprintln(a.out, "Nothing to apply")
				return nil
			}
			if dryRun {
				for _, op := range ops {
					fmt.Fprintf(a.out, "would %s\n", op)
				}
				return nil
			}

			policy := roster.ContinueOnError
			if abortOnError {
				policy = roster.AbortOnError
			}
			res := roster.NewReconciler(client, policy, a.log).Apply(cmd.Context(), plan)
			editor.Complete(res)

			for _, op := range res.Succeeded {
				fmt.Fprintf(a.out, "ok      %s\n", op)
			}
			for _, f := range res.Failed {
				fmt.Fprintf(a.out, "failed  %s: %v\n", f.Operation, f.Err)
			}
			for _, op := range res.Skipped {
				fmt.Fprintf(a.out, "skipped %s\n", op)
			}
			fmt.Fprintf(a.out, "%d succeeded, %d failed, %d skipped\n", len(res.Succeeded), len(res.Failed), len(res.Skipped))

			if !res.OK() {
				return fmt.Errorf("%d of %d operations did not complete", len(res.Failed)+len(res.Skipped), res.Total())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "roster YAML file")
	cmd.Flags().BoolVar(&abortOnError, "abort-on-error", false, "stop at the first failed request")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the requests without sending them")
	return cmd
}
