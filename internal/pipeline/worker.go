package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/ebronstein/pdftoc/internal/detect"
	"github.com/ebronstein/pdftoc/internal/outline"
	"github.com/ebronstein/pdftoc/internal/source"
	"github.com/ebronstein/pdftoc/internal/toctext"
)

// Worker processes a single detection job.
type Worker struct {
	log  *slog.Logger
	opts detect.Options
}

func NewWorker(log *slog.Logger, opts detect.Options) *Worker {
	return &Worker{log: log, opts: opts}
}

// Process runs the full detection pipeline for a job. The run is isolated:
// it reads only the job's own bytes and writes only the job's own result.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "doc_id", job.DocID, "filename", job.Filename)

	if ctx.Err() != nil {
		job.AddError(ctx.Err().Error())
		job.SetStatus(StatusFailed, "canceled")
		return
	}

	job.SetStatus(StatusExtracting, "extracting spans")
	src, err := source.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting")
		return
	}

	job.SetStatus(StatusDetecting, "detecting headings")
	res, err := src.Outline(bytes.NewReader(job.FileData()), job.Filename, w.opts)
	if err != nil {
		log.Error("detection failed", "error", err)
		job.AddError(fmt.Sprintf("detect: %s", err))
		job.SetStatus(StatusFailed, "detecting")
		return
	}

	headings := outline.Count(res.Entries)
	job.SetHeadings(headings)
	job.SetResult(&Result{
		TOCText:   toctext.Serialize(res.Entries),
		Entries:   res.Entries,
		PageCount: res.PageCount,
		Headings:  headings,
	})
	job.SetStatus(StatusCompleted, "done")
	log.Info("detection complete", "headings", headings, "pages", res.PageCount)
}
