package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/argx/check"
)

var _ io.Writer = (*Printer)(nil)

// Printer is used to communicate with the user, writing to STDERR by default.
type Printer struct {
	out io.Writer
}

func NewPrinter() *Printer {
	return &Printer{out: os.Stderr}
}

// Redirect changes where the Printer writes, which is useful for testing.
func (p *Printer) Redirect(writer io.Writer) {
	p.out = writer
}

func (p *Printer) Write(data []byte) (int, error) {
	return p.out.Write(data)
}

func (p *Printer) Print(msg ...any) {
	_, _ = fmt.Fprint(p.out, msg...)
}

func (p *Printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, format, args...)
}

func (p *Printer) Println(msg ...any) {
	_, _ = fmt.Fprintln(p.out, msg...)
}

// PrintError reports err to the user.
// A [UsageError] is followed by its [UsageError.Hint].
// When more than one check failed, the names of the failed arguments are summarized after the errors.
func (p *Printer) PrintError(err error) {
	if err == nil {
		return
	}
	p.Println(err)
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		p.Println(usageErr.Hint())
		return
	}
	var collected *check.Collector
	if errors.As(err, &collected) && collected.Len() > 1 {
		p.Printf("%d checks failed for: %s\n", collected.Len(), strings.Join(collected.Names(), ", "))
	}
}
