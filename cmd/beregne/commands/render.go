package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"beregne/internal/site"
)

func renderCmd() *cobra.Command {
	var (
		out     string
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the rendered landing page, or its outline with --summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if out != "" && out != "-" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			return render(w, summary)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "write to file instead of stdout")
	cmd.Flags().BoolVar(&summary, "summary", false, "print the section outline as JSON")
	return cmd
}

func render(w io.Writer, summary bool) error {
	s, err := site.New(cfg.Site)
	if err != nil {
		return err
	}
	if !summary {
		if err := s.Render(w); err != nil {
			return fmt.Errorf("render: %w", err)
		}
		return nil
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(s.Summary())
}
