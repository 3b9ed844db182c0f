package pipeline

import (
	"log/slog"

	"github.com/google/uuid"

	"tagcloud/internal/cloud"
	"tagcloud/internal/fontscale"
	"tagcloud/internal/frequency"
	"tagcloud/internal/logging"
	"tagcloud/internal/rank"
	"tagcloud/internal/render"
	"tagcloud/internal/tokenizer"
)

// Params configures a single tag cloud run.
type Params struct {
	// Label names the source in the document title and header.
	Label string
	// N is the number of words to include. Must be positive and at most the
	// number of distinct words in the source.
	N int
	// Separators is the boundary character set for tokenization.
	Separators tokenizer.Separators
	// Fonts bounds the assigned font levels.
	Fonts fontscale.Range
	// Stylesheet is the stylesheet name referenced by the document.
	Stylesheet string
}

// Result carries the rendered document plus the run statistics and views
// callers need for reporting or previews.
type Result struct {
	RunID    string
	Document string
	Words    int
	Distinct int
	// Ordered is the selection in render (alphabetical) order.
	Ordered []cloud.WordCount
	// Fonts maps each selected word to its font level.
	Fonts map[string]int
}

// Run executes the full pipeline on text. The frequency table is built
// first so an empty source is reported before N is validated; any failure
// aborts the run with no partial result.
func Run(logger *slog.Logger, text string, params Params) (*Result, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	runID := uuid.NewString()
	log := logger.With(
		slog.String("component", "pipeline"),
		slog.String("run_id", runID),
	)

	table := frequency.Count(text, params.Separators)
	if table.Distinct() == 0 {
		return nil, cloud.Wrap(cloud.ErrSourceEmpty, "pipeline", "count",
			"no words found in source", nil)
	}
	log.Debug("counted words",
		slog.Int("total", table.Total()),
		slog.Int("distinct", table.Distinct()),
	)

	selection, err := rank.Select(table, params.N)
	if err != nil {
		return nil, err
	}

	ordered := rank.Alphabetical(selection)
	fonts := fontscale.Assign(selection, params.Fonts)
	doc := render.Document(params.Label, params.N, ordered, fonts, params.Stylesheet)

	log.Info("tag cloud rendered",
		slog.String("label", params.Label),
		slog.Int("n", params.N),
		slog.Int("bytes", len(doc)),
	)

	return &Result{
		RunID:    runID,
		Document: doc,
		Words:    table.Total(),
		Distinct: table.Distinct(),
		Ordered:  ordered,
		Fonts:    fonts,
	}, nil
}
