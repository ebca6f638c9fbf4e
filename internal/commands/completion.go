package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"
)

// CitationIDCompleter returns a ShellCompleteFunc that suggests navigable
// citation ids of the selected brief as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func CitationIDCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		// Delegate to default flag completion when typing a flag
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		_, b, err := flags.LoadBrief(ctx)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, c := range b.Navigable() {
			_, _ = fmt.Fprintln(w, c.ID)
		}
	}
}
