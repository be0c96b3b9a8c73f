package leak

import (
	"io"
	"io/ioutil"
	"time"

	"github.com/activecm/leakhunt/util"
	log "github.com/sirupsen/logrus"
	"github.com/vbauerster/mpb"
	"github.com/vbauerster/mpb/decor"
)

//Options controls a detection run
type Options struct {
	RunID    string      // stored alongside every result
	Threads  int         // number of analysis threads, at least one is started
	Progress io.Writer   // progress bar destination, nil disables it
	Log      *log.Logger // nil discards log output
}

//Run evaluates every parameter set against every document and sends the leak
//reports to sinks. Parameter sets are spread over opts.Threads analysis
//threads; the documents are shared and never modified. Run returns the first
//error reported by a sink.
func Run(docs []Document, params []Thresholds, opts Options, sinks ...Sink) error {
	logger := opts.Log
	if logger == nil {
		logger = log.New()
		logger.Out = ioutil.Discard
	}

	var p *mpb.Progress
	var bar *mpb.Bar
	if opts.Progress != nil && len(params) > 0 {
		p = mpb.New(mpb.WithWidth(20), mpb.WithOutput(opts.Progress))
		bar = p.AddBar(int64(len(params)),
			mpb.PrependDecorators(
				decor.Name("\t[-] Leak Detection:", decor.WC{W: 30, C: decor.DidentRight}),
				decor.CountersNoUnit(" %d / %d ", decor.WCSyncWidth),
			),
			mpb.AppendDecorators(decor.Percentage()),
		)
	}

	//the bar moves once a parameter set has been fully evaluated
	evaluated := func(elapsed time.Duration) {
		if bar != nil {
			bar.IncrBy(1, elapsed)
		}
	}

	//Create the workers
	writerWorker := newWriter(sinks, logger)

	analyzerWorker := newAnalyzer(
		docs,
		opts.RunID,
		logger,
		writerWorker.collect,
		evaluated,
		writerWorker.close,
	)

	//kick off the threaded goroutines
	for i := 0; i < util.Max(1, opts.Threads); i++ {
		analyzerWorker.start()
	}
	writerWorker.start()

	for _, th := range params {
		analyzerWorker.collect(th)
	}

	// start the closing cascade (this will also close the writer)
	analyzerWorker.close()

	if p != nil {
		p.Wait()
	}

	logger.WithFields(log.Fields{
		"run_id":         opts.RunID,
		"documents":      len(docs),
		"parameter_sets": len(params),
	}).Info("Leak detection finished")

	return writerWorker.err
}
