package download

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/comm"
	"github.com/tdkit/tdkit/mansion"
)

var args = struct {
	fileID   *int32
	priority *int32
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("download", "Download a file to the engine's files directory")
	ctx.Register(cmd, do)

	args.fileID = cmd.Arg("file-id", "Identifier of the file, as found in messages").Required().Int32()
	args.priority = cmd.Flag("priority", "From 1 (lowest) to 32 (highest)").Default("16").Int32()
}

func do(ctx *mansion.Context) {
	c, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	startTime := time.Now()

	comm.StartProgress()
	res, err := Do(c, ctx, *args.fileID, *args.priority)
	comm.EndProgress()
	ctx.Must(err)

	comm.ResultOrPrint(res, func() {
		duration := time.Since(startTime)
		perSec := humanize.IBytes(uint64(float64(res.Size) / duration.Seconds()))
		comm.Statf("Downloaded %s in %s (%s/s) to %s", humanize.IBytes(uint64(res.Size)), duration.Truncate(time.Millisecond), perSec, res.Path)
	})
}

// Do downloads a file and waits for it to complete. When c is done first,
// the download is cancelled.
func Do(c context.Context, ctx *mansion.Context, fileID int32, priority int32) (*mansion.DownloadResult, error) {
	if priority < 1 || priority > 32 {
		return nil, errors.Errorf("priority must be between 1 and 32, got %d", priority)
	}

	s, err := ctx.OpenSession(c, mansion.SessionOpts{Authorize: true})
	if err != nil {
		return nil, err
	}
	defer s.Close()

	d, err := s.Downloads.Start(c, s.Client, fileID, priority)
	if err != nil {
		return nil, errors.WithMessagef(err, "downloading file %d", fileID)
	}

	file, err := d.Wait(c)
	if err != nil {
		if c.Err() != nil {
			cc, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if cerr := d.Cancel(cc, s.Client); cerr != nil {
				comm.Debugf("Cancelling download: %v", cerr)
			}
		}
		return nil, errors.WithMessagef(err, "downloading file %d", fileID)
	}

	res := &mansion.DownloadResult{
		FileID: file.ID,
		Size:   file.Size,
	}
	if file.Local != nil {
		res.Path = file.Local.Path
		if res.Size == 0 {
			res.Size = file.Local.DownloadedSize
		}
	}
	return res, nil
}
