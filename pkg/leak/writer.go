package leak

import (
	"sync"

	log "github.com/sirupsen/logrus"
)

type (
	//Sink receives leak reports. Sinks are only ever called from the
	//writer thread.
	Sink interface {
		Write(*Result) error
		Flush() error
	}

	writer struct {
		sinks        []Sink
		log          *log.Logger
		writeChannel chan *Result   // holds analyzed data
		writeWg      sync.WaitGroup // wait for writing to finish
		err          error          // first sink failure
	}
)

//newWriter creates a new writer object forwarding leak reports to sinks
func newWriter(sinks []Sink, log *log.Logger) *writer {
	return &writer{
		sinks:        sinks,
		log:          log,
		writeChannel: make(chan *Result),
	}
}

//collect sends a leak report to the writer
func (w *writer) collect(data *Result) {
	w.writeChannel <- data
}

//close waits for the write thread to finish and flushes every sink
func (w *writer) close() {
	close(w.writeChannel)
	w.writeWg.Wait()

	for _, sink := range w.sinks {
		if err := sink.Flush(); err != nil {
			w.fail(err)
		}
	}
}

//start kicks off the write thread. Only one is ever started so sinks
//see results one at a time.
func (w *writer) start() {
	w.writeWg.Add(1)
	go func() {
		for data := range w.writeChannel {
			for _, sink := range w.sinks {
				if err := sink.Write(data); err != nil {
					w.fail(err)
				}
			}
		}
		w.writeWg.Done()
	}()
}

func (w *writer) fail(err error) {
	w.log.WithFields(log.Fields{
		"error": err.Error(),
	}).Error("Failed to write leak report")

	if w.err == nil {
		w.err = err
	}
}
