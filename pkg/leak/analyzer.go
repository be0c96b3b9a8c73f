package leak

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

type (
	//analyzer evaluates parameter sets against a fixed set of documents
	analyzer struct {
		docs              []Document          // dataset shared read-only by every thread
		runID             string              // tags every result of this run
		log               *log.Logger         // main logger for leakhunt
		analyzedCallback  func(*Result)       // leak reports are sent to this callback
		evaluatedCallback func(time.Duration) // called once a parameter set went through every document
		closedCallback    func()              // called when .close() is called and no more calls to analyzedCallback will be made
		analysisChannel   chan Thresholds     // holds parameter sets waiting for evaluation
		analysisWg        sync.WaitGroup      // wait for analysis to finish
	}
)

//newAnalyzer creates a new analyzer for detecting leaks in docs
func newAnalyzer(docs []Document, runID string, log *log.Logger,
	analyzedCallback func(*Result), evaluatedCallback func(time.Duration),
	closedCallback func()) *analyzer {
	return &analyzer{
		docs:              docs,
		runID:             runID,
		log:               log,
		analyzedCallback:  analyzedCallback,
		evaluatedCallback: evaluatedCallback,
		closedCallback:    closedCallback,
		analysisChannel:   make(chan Thresholds),
	}
}

//collect hands a parameter set to the next free analysis thread
func (a *analyzer) collect(th Thresholds) {
	a.analysisChannel <- th
}

//close waits for the analyzer to finish
func (a *analyzer) close() {
	close(a.analysisChannel)
	a.analysisWg.Wait()
	a.closedCallback()
}

//start kicks off a new analysis thread
func (a *analyzer) start() {
	a.analysisWg.Add(1)
	go func() {
		for th := range a.analysisChannel {
			start := time.Now()
			for i := range a.docs {
				doc := a.docs[i]

				leaks, ok := Process(doc, th)
				if !ok {
					continue
				}

				a.log.WithFields(log.Fields{
					"run_id":     a.runID,
					"thresholds": th.String(),
					"ases":       doc.ASes,
					"leaks":      leaks,
				}).Debug("Leak detected")

				result := &Result{
					RunID:      a.runID,
					Thresholds: th,
					ASes:       doc.ASes,
					Leaks:      leaks,
				}

				if doc.StartDate != "" {
					dates, err := IndexDates(doc.StartDate, leaks)
					if err != nil {
						a.log.WithFields(log.Fields{
							"ases":  doc.ASes,
							"error": err.Error(),
						}).Warn("Leak reported without dates")
					}
					result.Dates = dates
				}

				a.analyzedCallback(result)
			}
			a.evaluatedCallback(time.Since(start))
		}
		a.analysisWg.Done()
	}()
}
