package bioread

import (
	"bufio"
	"fmt"
	"io"
)

// streamWriterSize is the output buffer size for Stream.
const streamWriterSize = 32 * 1024

// streamState tracks the word currently in flight during a Stream call.
// At most suffix-length-plus-one letters sit in buf at any time, a small
// constant derived from the reverse table, independent of word length.
type streamState struct {
	buf     []byte // letters read but not yet settled
	read    int    // letters of the current word consumed so far
	written int    // letters already flushed as emphasized
}

// flushSettled writes buffered letters that are provably part of the
// emphasized prefix. least is monotone non-decreasing in read, so a
// settled letter never has to be taken back.
func (st *streamState) flushSettled(w io.Writer, least int) error {
	if st.written >= least {
		return nil
	}
	n := least - st.written
	if _, err := w.Write(st.buf[:n]); err != nil {
		return err
	}
	st.buf = st.buf[:copy(st.buf, st.buf[n:])]
	st.written = least
	return nil
}

// Stream renders src into dst incrementally, holding only the current
// word's undecided tail in memory. Output matches Text for every word not
// on the common-word list; the list is not consulted in streaming mode, so
// common words are split by table like any other word.
//
// Separator bytes, including multi-byte UTF-8 sequences, pass through
// verbatim. The first read or write error aborts the stream; output
// already flushed stays written.
func (r *Reader) Stream(dst io.Writer, src io.Reader) (err error) {
	br := bufio.NewReader(src)
	bw := bufio.NewWriterSize(dst, streamWriterSize)
	defer func() {
		if flushErr := bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	var st streamState
	for {
		b, readErr := br.ReadByte()
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return fmt.Errorf("read input: %w", readErr)
		}

		if isASCIILetter(b) {
			if err := r.streamLetter(bw, &st, b); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		}

		if err := r.streamBreak(bw, &st); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		if err := bw.WriteByte(b); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		// Keep line-oriented pipelines (tail -f, interactive stdin) live.
		if b == '\n' {
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
	}

	if err := r.streamBreak(bw, &st); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// streamLetter feeds one word letter through the state machine.
func (r *Reader) streamLetter(w io.Writer, st *streamState, b byte) error {
	if st.read == 0 {
		if _, err := io.WriteString(w, r.emphasis.Open); err != nil {
			return err
		}
		st.buf = append(st.buf, b)
		st.read = 1
		return nil
	}

	// Settle before buffering: every letter emphasized at the current
	// length stays emphasized however long the word grows.
	if err := st.flushSettled(w, st.read-r.suffixLen(st.read)); err != nil {
		return err
	}

	st.read++
	st.buf = append(st.buf, b)
	return nil
}

// streamBreak closes out the in-flight word, if any. The settled prefix is
// completed from the final word length, the rest of the buffer becomes the
// de-emphasized suffix, and the state resets for the next word.
func (r *Reader) streamBreak(w io.Writer, st *streamState) error {
	if st.read == 0 {
		return nil
	}

	if err := st.flushSettled(w, st.read-r.suffixLen(st.read)); err != nil {
		return err
	}

	if _, err := io.WriteString(w, r.emphasis.Close); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.deEmphasis.Open); err != nil {
		return err
	}
	if _, err := w.Write(st.buf); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.deEmphasis.Close); err != nil {
		return err
	}

	st.buf = st.buf[:0]
	st.read = 0
	st.written = 0
	return nil
}
