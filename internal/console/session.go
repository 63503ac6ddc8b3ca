// Package console drives the receipt pipeline from a line-oriented text stream.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/zombor/salestax/internal/receipt"
)

const (
	endOfBill  = "done"
	anotherYes = "yes"
)

// Checkouter turns the raw lines of the nth bill into a bill and its report
type Checkouter interface {
	Checkout(number int, lines []string) (*receipt.Bill, receipt.Report)
}

// Session reads bills from in and writes receipts to out, one bill at a time
type Session struct {
	service Checkouter
	in      *bufio.Reader
	out     io.Writer
	number  int
}

// NewSession creates a Session numbering bills from 1
func NewSession(service Checkouter, in io.Reader, out io.Writer) *Session {
	return &Session{
		service: service,
		in:      bufio.NewReader(in),
		out:     out,
		number:  1,
	}
}

// Interactive prompts for each bill and asks whether to continue after every receipt
func (s *Session) Interactive() error {
	for {
		if err := s.printf("Enter item details for Input %d (e.g., '1 book at 12.49'). Type '%s' when finished with this bill:\n", s.number, endOfBill); err != nil {
			return err
		}

		lines, eof, err := s.readBill()
		if err != nil {
			return err
		}
		if eof && len(lines) == 0 {
			return nil
		}
		if err := s.checkout(lines, "\n", "\n"); err != nil {
			return err
		}
		if eof {
			return nil
		}

		if err := s.printf("Do you want to enter another bill? (yes/no)\n"); err != nil {
			return err
		}
		answer, ok, err := s.readLine()
		if err != nil {
			return fmt.Errorf("reading answer: %w", err)
		}
		if !ok || !strings.EqualFold(strings.TrimSpace(answer), anotherYes) {
			return nil
		}
		s.number++
	}
}

// Batch processes every bill in the stream without prompting.
// Bills are terminated by a "done" line or by the end of input.
func (s *Session) Batch() error {
	for {
		lines, eof, err := s.readBill()
		if err != nil {
			return err
		}
		if eof && len(lines) == 0 {
			return nil
		}

		separator := ""
		if s.number > 1 {
			separator = "\n"
		}
		if err := s.checkout(lines, separator, ""); err != nil {
			return err
		}
		if eof {
			return nil
		}
		s.number++
	}
}

// Bill checks out a single bill from lines obtained elsewhere
func (s *Session) Bill(lines []string) error {
	return s.checkout(lines, "", "")
}

// readBill collects lines up to the next "done" line.
// eof reports that input ended before a terminator was read.
func (s *Session) readBill() (lines []string, eof bool, err error) {
	for {
		line, ok, err := s.readLine()
		if err != nil {
			return nil, true, fmt.Errorf("reading bill %d: %w", s.number, err)
		}
		if !ok {
			return lines, true, nil
		}
		if strings.EqualFold(strings.TrimSpace(line), endOfBill) {
			return lines, false, nil
		}
		lines = append(lines, line)
	}
}

// readLine returns the next line without its terminator, whatever its length.
// ok is false once input is exhausted.
func (s *Session) readLine() (line string, ok bool, err error) {
	line, err = s.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", false, err
	}
	if err != nil && line == "" {
		return "", false, nil
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), true, nil
}

func (s *Session) checkout(lines []string, before, after string) error {
	bill, report := s.service.Checkout(s.number, lines)

	entered := 0
	for _, l := range lines {
		if strings.TrimSpace(l) != "" {
			entered++
		}
	}
	if dropped := entered - len(bill.Items); dropped > 0 {
		slog.Warn("Dropped malformed lines", "bill", bill.Number, "count", dropped)
	}
	if len(bill.Items) == 0 {
		slog.Warn("No valid items in bill", "bill", bill.Number)
	}

	if err := s.printf("%s", before); err != nil {
		return err
	}
	if err := receipt.Render(s.out, bill.Number, report); err != nil {
		return err
	}
	return s.printf("%s", after)
}

func (s *Session) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(s.out, format, args...); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
