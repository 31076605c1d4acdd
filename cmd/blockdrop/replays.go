package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockdrop/internal/platform/tui"
	"github.com/vovakirdan/blockdrop/internal/replay"
	"github.com/vovakirdan/blockdrop/internal/storage"
)

var flagReplayLimit int

var replaysCmd = &cobra.Command{
	Use:   "replays",
	Short: "List journaled sessions",
	Long: `Every finished session is journaled as its seed and input log.
Without a subcommand the newest sessions are listed.

Examples:
  blockdrop replays
  blockdrop replays --limit 50
  blockdrop replays verify 3
  blockdrop replays delete 3
  blockdrop replays browse`,
	Args: cobra.NoArgs,
	RunE: runReplaysList,
}

var replaysVerifyCmd = &cobra.Command{
	Use:   "verify <id>",
	Short: "Re-simulate a session and compare it with the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysVerify,
}

var replaysDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a session from the journal",
	Args:  cobra.ExactArgs(1),
	RunE:  runReplaysDelete,
}

var replaysBrowseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the journal interactively",
	Args:  cobra.NoArgs,
	RunE:  runReplaysBrowse,
}

func init() {
	replaysCmd.Flags().IntVar(&flagReplayLimit, "limit", 20, "Number of sessions to list")

	replaysCmd.AddCommand(replaysVerifyCmd)
	replaysCmd.AddCommand(replaysDeleteCmd)
	replaysCmd.AddCommand(replaysBrowseCmd)
}

func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening replay journal: %w", err)
	}
	return store, nil
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid session id %q", arg)
	}
	return id, nil
}

func runReplaysList(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	recs, err := store.Recordings(flagReplayLimit)
	if err != nil {
		return err
	}

	fmt.Println("Replay Journal")
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No sessions journaled yet.")
		fmt.Println()
		fmt.Println("Play 'blockdrop play' to record the first one!")
		return nil
	}

	fmt.Printf("  %-5s  %-16s  %-8s  %-5s  %-6s  %-8s  %-8s  %s\n", "ID", "Date", "Score", "Rows", "Pieces", "Ticks", "Where", "End")
	fmt.Printf("  %-5s  %-16s  %-8s  %-5s  %-6s  %-8s  %-8s  %s\n", "--", "----", "-----", "----", "------", "-----", "-----", "---")
	for _, r := range recs {
		end := "quit"
		if r.GameOver {
			end = "over"
		}
		fmt.Printf("  %-5d  %-16s  %-8d  %-5d  %-6d  %-8d  %-8s  %s\n",
			r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.RowsCleared, r.PiecesLocked, r.FinalTick, r.Frontend, end)
	}

	total, err := store.CountRecordings()
	if err == nil && total > len(recs) {
		fmt.Println()
		fmt.Printf("Showing %d of %d sessions.\n", len(recs), total)
	}
	return nil
}

func runReplaysVerify(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := replay.Load(store, id)
	if err != nil {
		return err
	}

	snap, err := replay.Verify(rec)
	if errors.Is(err, replay.ErrMismatch) {
		fmt.Printf("Session #%d does not replay: journal says score %d after %d ticks, simulation gives %d after %d.\n",
			id, rec.Score, rec.FinalTick, snap.Score, snap.Tick)
		return err
	}
	if err != nil {
		return err
	}

	fmt.Printf("Session #%d verified: score %d, %d rows, %d pieces after %d ticks (seed %d).\n",
		id, snap.Score, snap.RowsCleared, snap.PiecesLocked, snap.Tick, rec.Seed)
	return nil
}

func runReplaysDelete(_ *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteRecording(id); err != nil {
		return err
	}
	fmt.Printf("Session #%d deleted.\n", id)
	return nil
}

func runReplaysBrowse(_ *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	return tui.RunBrowser(store, width, height)
}
