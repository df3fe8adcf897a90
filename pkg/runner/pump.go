package runner

import (
	"bufio"
	"context"
	"io"
	"strings"
	"sync"
)

// linePump reads lines on a goroutine so Input can honour context cancellation.
type linePump struct {
	reader *bufio.Reader
	lines  chan inputResult
	done   chan struct{}
	once   sync.Once
	stop   sync.Once
}

type inputResult struct {
	text string
	err  error
}

func newLinePump(r io.Reader) *linePump {
	return &linePump{reader: bufio.NewReader(r), done: make(chan struct{})}
}

func (p *linePump) start() {
	p.once.Do(func() {
		p.lines = make(chan inputResult)
		go p.run()
	})
}

func (p *linePump) run() {
	defer close(p.lines)
	for {
		text, err := p.reader.ReadString('\n')
		// A final line without a newline still counts.
		if text != "" && !p.send(inputResult{text: text}) {
			return
		}
		if err != nil {
			if err != io.EOF {
				p.send(inputResult{err: err})
			}
			return
		}
	}
}

// send hands a result to next, giving up once the pump is closed.
func (p *linePump) send(res inputResult) bool {
	select {
	case p.lines <- res:
		return true
	case <-p.done:
		return false
	}
}

// close releases the reading goroutine. A read already blocked on the source returns only
// when the source does.
func (p *linePump) close() {
	p.stop.Do(func() { close(p.done) })
}

// next blocks until a line arrives, the source ends (io.EOF) or ctx is done.
func (p *linePump) next(ctx context.Context) (string, error) {
	select {
	case <-p.done:
		return "", io.EOF
	default:
	}
	p.start()
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-p.done:
		return "", io.EOF
	case res, ok := <-p.lines:
		if !ok {
			return "", io.EOF
		}
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimRight(res.text, "\r\n"), nil
	}
}
