package tdjson

import (
	"bufio"
	"io"
	"sync"
)

// A Transport moves whole JSON objects to and from the engine.
// Read is only ever called from one goroutine, Write is serialized by Conn.
type Transport interface {
	Read() ([]byte, error)
	Write(msg []byte) error
	Close() error
}

const maxLineSize = 64 * 1024 * 1024

type rwcTransport struct {
	inner   io.ReadWriteCloser
	scanner *bufio.Scanner

	closed    bool
	closeLock sync.Mutex
}

// NewRwcTransport speaks newline-delimited JSON over any stream, for example
// the stdio of a tdjson bridge process, or one end of a net.Pipe.
func NewRwcTransport(rwc io.ReadWriteCloser) Transport {
	scanner := bufio.NewScanner(rwc)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	return &rwcTransport{
		inner:   rwc,
		scanner: scanner,
	}
}

func (rwc *rwcTransport) Read() ([]byte, error) {
	if rwc.isClosed() {
		return nil, io.EOF
	}

	for rwc.scanner.Scan() {
		bs := rwc.scanner.Bytes()
		if len(bs) == 0 {
			continue
		}
		// the scanner reuses its buffer
		msg := make([]byte, len(bs))
		copy(msg, bs)
		return msg, nil
	}

	err := rwc.scanner.Err()
	if err != nil {
		return nil, err
	}

	return nil, io.EOF
}

func (rwc *rwcTransport) Write(msg []byte) error {
	line := make([]byte, 0, len(msg)+1)
	line = append(line, msg...)
	line = append(line, '\n')

	_, err := rwc.inner.Write(line)
	return err
}

func (rwc *rwcTransport) Close() error {
	rwc.closeLock.Lock()
	defer rwc.closeLock.Unlock()

	if rwc.closed {
		return nil
	}

	rwc.closed = true
	return rwc.inner.Close()
}

func (rwc *rwcTransport) isClosed() bool {
	rwc.closeLock.Lock()
	defer rwc.closeLock.Unlock()
	return rwc.closed
}
