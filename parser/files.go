package parser

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

//maxLineSize bounds a single dataset line, documents carry a full year of
//daily samples for both series
const maxLineSize = 16 * 1024 * 1024

// OpenScanner opens a plain or gzip compressed file and returns a line scanner
// over its contents along with a function closing the underlying streams
func OpenScanner(path string) (*bufio.Scanner, func() error, error) {
	fileHandle, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return GetFileScanner(fileHandle)
}

// GetFileScanner returns a buffered line scanner for a file, a function to close the
// underlying stream and any associated processors, as well as any error that may occur while
// creating the scanner. Files ending in .gz are decompressed on the fly.
func GetFileScanner(fileHandle *os.File) (scanner *bufio.Scanner, closer func() error, err error) {
	// by default just close out the underlying file handle
	closer = fileHandle.Close

	if strings.HasSuffix(fileHandle.Name(), ".gz") {
		var gzipReader io.Reader
		gzipReader, closer, err = newGzipReader(fileHandle)
		if err != nil {
			return nil, closer, err
		}
		scanner = bufio.NewScanner(gzipReader)
	} else {
		scanner = bufio.NewScanner(fileHandle)
	}

	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return scanner, closer, nil
}

//newGzipReader returns an un-gzipped byte stream given a gzip compressed byte stream.
//This method tries to use the system's pigz or gzip implementation before relying on
//Golang's gzip package (as it is quite slow). Returns stream to read from, a function to
//close the underlying stream, and any err that may occur when opening the stream.
func newGzipReader(fileHandle io.ReadCloser) (reader io.Reader, closer func() error, err error) {
	// by default just close out the underlying file handle
	// works for built in gzip library and error cases
	closer = fileHandle.Close

	var gzipPath string
	if path, err := exec.LookPath("pigz"); err == nil {
		gzipPath = path
	} else if path, err := exec.LookPath("gzip"); err == nil {
		gzipPath = path
	} else {
		// can't find system command, use golang lib, no special closing logic needed other than
		// to close the underlying file descriptor
		reader, err = gzip.NewReader(fileHandle)
		return reader, closer, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	gzipCommand := exec.CommandContext(ctx, gzipPath, "-d", "-c")
	gzipCommand.Stdin = fileHandle

	pipeR, err := gzipCommand.StdoutPipe()
	if err != nil {
		cancel()
		return reader, fileHandle.Close, err
	}

	var cmdStdErr bytes.Buffer
	gzipCommand.Stderr = &cmdStdErr

	if err := gzipCommand.Start(); err != nil {
		cancel()
		return reader, fileHandle.Close, err
	}

	// update the closer to kill the subprocess in addition to closing the file descriptor
	closer = func() error {
		cancel()
		errFile := fileHandle.Close()
		errProc := gzipCommand.Wait()

		// a killed subprocess is expected when the caller stops reading early
		if ctx.Err() != nil && errProc != nil && cmdStdErr.Len() == 0 {
			errProc = nil
		}
		if errProc != nil && cmdStdErr.Len() > 0 {
			errProc = fmt.Errorf("%s: %s", errProc.Error(), cmdStdErr.String())
		}

		if errProc != nil {
			return errProc
		}
		return errFile
	}

	return pipeR, closer, nil
}
