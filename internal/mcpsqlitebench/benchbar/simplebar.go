// Package benchbar provides a really simple progress bar for the benchmarking
// process.
package benchbar

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

type Bar struct {
	pb          *progressbar.ProgressBar
	description string
	maxItems    int
}

// NewBar creates a bar rendered to w. A nil w renders to stderr.
func NewBar(w io.Writer, description string, maxItems int) *Bar {
	if w == nil {
		w = os.Stderr
	}

	pb := progressbar.NewOptions64(
		int64(maxItems),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetWidth(10),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionFullWidth(),
		progressbar.OptionSetRenderBlankState(true),
	)
	_ = pb.Set(0)

	return &Bar{
		pb:          pb,
		description: description,
		maxItems:    maxItems,
	}
}

func (p *Bar) Inc() {
	_ = p.pb.Add(1)
}

// Current returns the number of items completed so far.
func (p *Bar) Current() int64 {
	return p.pb.State().CurrentNum
}

func (p *Bar) Finish() {
	_ = p.pb.Finish()
	_ = p.pb.Close()
}
