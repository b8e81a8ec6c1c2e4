package journal

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/database"
	"github.com/tdkit/tdkit/mansion"
)

var args = struct {
	db *string
}{}

var listArgs = struct {
	typ       *string
	direction *string
	extra     *string
	since     *time.Duration
	limit     *int
	oldest    *bool
}{}

var pruneArgs = struct {
	olderThan *time.Duration
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("journal", "Inspect the frames recorded while journal.enabled is set")
	args.db = cmd.Flag("db", "Journal database, instead of journal.path from the configuration").String()

	list := cmd.Command("list", "List recorded frames, most recent first")
	listArgs.typ = list.Flag("type", "Only frames of this @type").Short('t').String()
	listArgs.direction = list.Flag("direction", "Only frames going this way").Enum("in", "out")
	listArgs.extra = list.Flag("extra", "Only frames carrying this @extra, i.e. one request and its answer").String()
	listArgs.since = list.Flag("since", "Only frames recorded this recently, e.g. 10m").Duration()
	listArgs.limit = list.Flag("limit", "Show at most this many frames").Default("50").Int()
	listArgs.oldest = list.Flag("oldest-first", "List in recording order").Bool()
	ctx.Register(list, doList)

	stats := cmd.Command("stats", "Count recorded frames")
	ctx.Register(stats, doStats)

	prune := cmd.Command("prune", "Delete old frames")
	pruneArgs.olderThan = prune.Flag("older-than", "Delete frames recorded longer ago than this").Default("168h").Duration()
	ctx.Register(prune, doPrune)
}

func openDB(ctx *mansion.Context) (*database.DB, error) {
	path := *args.db
	if path == "" {
		// credentials aren't needed to read the journal
		cfg, err := ctx.LoadConfig()
		if err != nil {
			return nil, err
		}
		path = cfg.Journal.Path
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "no journal found, set journal.enabled and run a command first")
	}
	return database.Open(comm.NewStateConsumer(), path)
}

func doList(ctx *mansion.Context) {
	db, err := openDB(ctx)
	ctx.Must(err)
	defer db.Close()

	filter := database.FrameFilter{
		Type:      *listArgs.typ,
		Direction: *listArgs.direction,
		Extra:     *listArgs.extra,
		Reverse:   !*listArgs.oldest,
		Limit:     *listArgs.limit,
	}
	if *listArgs.since > 0 {
		filter.Since = time.Now().Add(-*listArgs.since)
	}

	frames, err := List(db, filter)
	ctx.Must(err)

	if comm.JsonEnabled() {
		for _, f := range frames {
			comm.Result(f)
		}
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Recorded", "Dir", "Type", "Extra", "Size"})
	for _, f := range frames {
		table.Append([]string{
			fmt.Sprintf("%d", f.ID),
			humanize.Time(time.Unix(0, f.RecordedAt)),
			f.Direction,
			f.Type,
			f.Extra,
			humanize.Bytes(uint64(len(f.Payload))),
		})
	}
	table.Render()
}

// List converts matching frames to results.
func List(db *database.DB, filter database.FrameFilter) ([]*mansion.FrameResult, error) {
	frames, err := db.ListFrames(filter)
	if err != nil {
		return nil, err
	}

	res := make([]*mansion.FrameResult, 0, len(frames))
	for _, f := range frames {
		res = append(res, &mansion.FrameResult{
			ID:         f.ID,
			RecordedAt: f.RecordedAt.UnixNano(),
			Direction:  f.Direction,
			Type:       f.Type,
			Extra:      f.Extra,
			Payload:    f.Payload,
		})
	}
	return res, nil
}

func doStats(ctx *mansion.Context) {
	db, err := openDB(ctx)
	ctx.Must(err)
	defer db.Close()

	count, err := db.CountFrames()
	ctx.Must(err)

	comm.ResultOrPrint(mansion.JournalStatsResult{Frames: count}, func() {
		comm.Logf("%s frames recorded", humanize.Comma(count))
	})
}

func doPrune(ctx *mansion.Context) {
	db, err := openDB(ctx)
	ctx.Must(err)
	defer db.Close()

	res, err := Prune(db, time.Now().Add(-*pruneArgs.olderThan))
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		comm.Logf("Pruned %s frames, %s left", humanize.Comma(int64(res.Pruned)), humanize.Comma(res.Frames))
	})
}

// Prune deletes frames recorded before cutoff.
func Prune(db *database.DB, cutoff time.Time) (*mansion.JournalStatsResult, error) {
	pruned, err := db.PruneFrames(cutoff)
	if err != nil {
		return nil, err
	}
	count, err := db.CountFrames()
	if err != nil {
		return nil, err
	}
	return &mansion.JournalStatsResult{Frames: count, Pruned: pruned}, nil
}
