package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-narrator/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var transcriptCmd = &cobra.Command{
	Use:   "transcript [session]",
	Short: "Show recorded announcements",
	Long: `Without arguments, list the most recent narration sessions.
With a session id, print that session's announcements, oldest first.

Examples:
  narrator transcript
  narrator transcript 3f2c9a1e-... --limit 200
  narrator transcript 3f2c9a1e-... --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTranscript,
}

func init() {
	transcriptCmd.Flags().IntVarP(&flagLimit, "limit", "n", 50, "Maximum number of rows to show")
	transcriptCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the session instead of printing it")
}

func runTranscript(cmd *cobra.Command, args []string) error {
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("open transcript database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return listSessions(cmd, store)
	}

	sessionID := args[0]
	if flagClear {
		if err := store.ClearSession(sessionID); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Fprintf(out, "Session %s deleted.\n", sessionID)
		return nil
	}

	rows, err := store.RecentAnnouncements(sessionID, flagLimit)
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}
	if len(rows) == 0 {
		fmt.Fprintf(out, "No announcements recorded for session %s.\n", sessionID)
		return nil
	}

	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %s\n", "Time", "Source", "Kind", "Text")
	fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %s\n", "----", "------", "----", "----")
	for _, a := range rows {
		text := a.Text
		if a.Forced {
			text += " (forced)"
		}
		fmt.Fprintf(out, "  %-8s  %-6s  %-10s  %s\n", a.CreatedAt.Format("15:04:05"), a.Source, a.Kind, text)
	}
	return nil
}

func listSessions(cmd *cobra.Command, store *storage.Store) error {
	out := cmd.OutOrStdout()
	sessions, err := store.Sessions(flagLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Run 'narrator demo' or 'narrator replay <script>' to record one.")
		return nil
	}

	fmt.Fprintf(out, "  %-36s  %-5s  %-16s  %s\n", "Session", "Lines", "Started", "Length")
	fmt.Fprintf(out, "  %-36s  %-5s  %-16s  %s\n", "-------", "-----", "-------", "------")
	for _, s := range sessions {
		fmt.Fprintf(out, "  %-36s  %-5d  %-16s  %s\n",
			s.SessionID, s.Count, s.StartedAt.Format("2006-01-02 15:04"), s.EndedAt.Sub(s.StartedAt).Round(time.Second))
	}
	return nil
}
