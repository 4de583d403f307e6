package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/jwalton/gchalk"
	"github.com/mattn/go-isatty"
)

// Console prints progress and status lines for the generator.
type Console struct {
	out   io.Writer
	chalk *gchalk.Builder
}

// New returns a Console writing to out. Colour is only used when out is a
// terminal and noColor is false.
func New(out io.Writer, noColor bool) *Console {
	level := gchalk.LevelNone
	if !noColor && isTerminal(out) {
		level = gchalk.LevelBasic
	}
	return &Console{
		out:   out,
		chalk: gchalk.New(gchalk.ForceLevel(level)),
	}
}

func isTerminal(out io.Writer) bool {
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return enableVirtualTerminal(f)
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}

func (c *Console) Info(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.chalk.Cyan("[INFO]"), msg)
}

func (c *Console) Success(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.chalk.Green("[SUCCESS]"), msg)
}

func (c *Console) Warning(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.chalk.Yellow("[WARNING]"), msg)
}

func (c *Console) Error(msg string) {
	fmt.Fprintf(c.out, "%s %s\n", c.chalk.Red("[ERROR]"), msg)
}

func (c *Console) Header(title string) {
	fmt.Fprintf(c.out, "\n%s\n", c.chalk.WithBold().Magenta("=== "+title+" ==="))
}
