// Package prompt asks the questions of a run on a line-oriented terminal.
// Every question loops until its answer passes validation; there is no retry
// limit.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kingrea/colloquium/internal/scaffold"
)

// Messages shown when an answer is rejected.
const (
	MsgInvalidPath  = "Enter valid path!"
	MsgInvalidName  = "Enter valid directory name!"
	MsgInvalidCount = "Enter a positive integer!"
	MsgEmptyFile    = "Filename cannot be empty!"
)

// Questions, in the order they are asked.
const (
	QuestionPath    = "Input relative path:"
	QuestionName    = "Input colloquium directory name:"
	QuestionConfirm = "Is everything correct? [y/n]"
)

// CountQuestion asks for the number of part files.
func CountQuestion(layout scaffold.Layout) string {
	return fmt.Sprintf("Input number of files in %s/:", layout.PartsDir)
}

// PartsQuestion introduces the part name prompts.
func PartsQuestion(layout scaffold.Layout) string {
	return fmt.Sprintf("Input filenames for %s/ (without %s):", layout.PartsDir, layout.Extension)
}

// PartLabel is the 1-based label printed before each part name.
func PartLabel(index int) string {
	return fmt.Sprintf("%d: ", index)
}

// ErrInputClosed is returned when the input ends before a question is
// answered.
var ErrInputClosed = errors.New("prompt: input closed")

// Collector reads answers from in and writes questions to out.
type Collector struct {
	in     *bufio.Reader
	out    io.Writer
	prompt string
	layout scaffold.Layout
}

// NewCollector builds a Collector. prompt is printed before every answer.
func NewCollector(in io.Reader, out io.Writer, prompt string, layout scaffold.Layout) *Collector {
	return &Collector{
		in:     bufio.NewReader(in),
		out:    out,
		prompt: prompt,
		layout: layout.Normalized(),
	}
}

// Collect asks for the base path, project name, part count and part names.
func (c *Collector) Collect() (scaffold.RunConfig, error) {
	var rc scaffold.RunConfig
	var err error

	fmt.Fprintln(c.out, QuestionPath)
	if rc.BasePath, err = c.askText(c.prompt, MsgInvalidPath); err != nil {
		return rc, err
	}

	fmt.Fprintln(c.out, QuestionName)
	if rc.ProjectName, err = c.askText(c.prompt, MsgInvalidName); err != nil {
		return rc, err
	}

	fmt.Fprintln(c.out, CountQuestion(c.layout))
	n, err := c.askCount()
	if err != nil {
		return rc, err
	}

	fmt.Fprintln(c.out, PartsQuestion(c.layout))
	for i := 1; i <= n; i++ {
		name, err := c.askText(PartLabel(i), MsgEmptyFile)
		if err != nil {
			return rc, err
		}
		rc.PartNames = append(rc.PartNames, name)
	}
	return rc, nil
}

// Confirm asks once whether to proceed. Only "y" or "yes" (any case) count
// as agreement.
func (c *Collector) Confirm() (bool, error) {
	fmt.Fprintln(c.out, QuestionConfirm)
	answer, err := c.readLine(c.prompt)
	if err != nil {
		return false, err
	}
	return scaffold.IsAffirmative(answer), nil
}

func (c *Collector) askText(label, invalid string) (string, error) {
	value, err := c.readLine(label)
	for err == nil && !scaffold.ValidText(value) {
		value, err = c.readLine(invalid + "\n" + label)
	}
	return value, err
}

func (c *Collector) askCount() (int, error) {
	for {
		value, err := c.readLine(c.prompt)
		if err != nil {
			return 0, err
		}
		if n, ok := scaffold.ParseCount(value); ok {
			return n, nil
		}
		fmt.Fprintln(c.out, MsgInvalidCount)
	}
}

// readLine prints label and returns the next line, trimmed. A last line
// without a newline still counts as an answer.
func (c *Collector) readLine(label string) (string, error) {
	fmt.Fprint(c.out, label)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			if line != "" {
				return strings.TrimSpace(line), nil
			}
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("prompt: read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
