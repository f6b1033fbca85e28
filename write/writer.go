package write

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// WriteSettings controls where the progress of a solve is reported.
type WriteSettings struct {
	DisplayWriters []Writer     // Where should the display be written. This can be set to nil to avoid all display
	Logger         *slog.Logger // Receives one Debug record per iteration and an Info record at the end. May be nil
}

// DefaultWriteSettings returns settings that write nothing.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the solve
	// for future postprocessing. The data is saved as a csv and data is printed
	// every iteration of the solver
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the solve
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

func writeHeader(w io.Writer) error {
	_, err := io.WriteString(w, "Beginning Root Search\n\n")
	return err
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display displays stuff. If it's a Displayer then it only prints at
// specific times. If it's a Logger it logs at every iteration
// Assumption is that headings don't change
type Display struct {
	displayValues []*Value

	headings []string
	values   []string

	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer
	logger  *slog.Logger

	dataAdders []DataAdder
}

// accumulateValues gets all of the values from the data adder and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

func NewDisplay() *Display {
	// return settings so that headings and values are displayed on first iteration
	return &Display{
		lastHeadingDisplay: headingInterval + 1,
		lastValueDisplay:   time.Now().Add(-valueInterval),
	}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// Init initializes the displays for the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.writers = w.DisplayWriters
	d.logger = w.Logger
	d.existsDisplayer = false
	d.existsLogger = false
	d.lastHeadingDisplay = headingInterval + 1
	d.lastValueDisplay = time.Now().Add(-valueInterval)

	if len(d.writers) == 0 && d.logger == nil {
		return nil
	}
	d.accumulateValues()

	// get all of the headings
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	// Write the initial headers to all of the writers
	for _, w := range d.writers {
		switch w.T {
		default:
			return fmt.Errorf("display: unknown writer type %d", w.T)
		case Logger:
			d.existsLogger = true
			if err := writeRow(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
			if err := writeHeader(w); err != nil {
				return err
			}
		}
	}
	return nil
}

// Iterate is the write action performed by display at every iteration
// of the algorithm, as set by the values in the Writers and dataAdders which
// were set during initialization
func (d *Display) Iterate() error {
	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		// Check if the values need to be displayed
		displayValues = d.shouldDisplayValues()
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
		}

		displayHeadings = d.shouldDisplayHeadings()
		if displayHeadings {
			d.lastHeadingDisplay = 0
		}
	}

	logRecord := d.logger != nil && d.logger.Enabled(context.Background(), slog.LevelDebug)

	// only accumulate values if needed
	if !(d.existsLogger || displayValues || displayHeadings || logRecord) {
		return nil
	}
	d.accumulateValues()
	d.values = d.values[:0]
	for _, v := range d.displayValues {
		d.values = append(d.values, valueToString(v.Value))
	}

	if logRecord {
		d.logger.Debug("iteration", d.attrs()...)
	}

	// Find the max length of heading and value
	if displayValues || displayHeadings {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			d.maxLengths = append(d.maxLengths, len(v))
			if len(d.headings[i]) > len(v) {
				d.maxLengths[i] = len(d.headings[i])
			}
		}
	}
	for _, w := range d.writers {
		switch w.T {
		case Logger:
			if err := writeRow(w, d.values); err != nil {
				return err
			}
		case Displayer:
			if displayHeadings {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
				if err := writeAlignedStrings(w, d.headings, d.maxLengths); err != nil {
					return err
				}
			}
			if displayValues {
				if err := writeAlignedStrings(w, d.values, d.maxLengths); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Result reports the final state of the solve to the logger.
func (d *Display) Result(status string) {
	if d.logger == nil {
		return
	}
	d.accumulateValues()
	args := make([]any, 0, 2*len(d.displayValues)+2)
	args = append(args, "status", status)
	for _, v := range d.displayValues {
		args = append(args, v.Heading, v.Value)
	}
	d.logger.Info("solve finished", args...)
}

func (d *Display) attrs() []any {
	args := make([]any, 0, 2*len(d.displayValues))
	for _, v := range d.displayValues {
		args = append(args, v.Heading, v.Value)
	}
	return args
}

func (d *Display) shouldDisplayValues() bool {
	// Display values when enough time has elapsed since the last
	// display. This is to limit printing with really quick objective
	// functions
	return time.Since(d.lastValueDisplay) > valueInterval
}

func (d *Display) shouldDisplayHeadings() bool {
	// Display headings again after a certain number of value printings
	return d.lastHeadingDisplay > headingInterval
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	for i, str := range strs {
		s := str + strings.Repeat(" ", maxLengths[i]-len(str)) + "\t"
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// writeRow writes the strings to w as a single comma separated line
func writeRow(w io.Writer, strs []string) error {
	_, err := io.WriteString(w, strings.Join(strs, ",")+"\n")
	return err
}

func valueToString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
