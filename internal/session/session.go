// Package session owns the interactive menu flow: it holds the waveform
// parameters for the life of one process, prompts for changes, and feeds
// the configured parameters through the pipeline to the display.
package session

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/dygy/wavegen/internal/modulation"
	"github.com/dygy/wavegen/internal/pipeline"
	"github.com/dygy/wavegen/internal/sequence"
	"github.com/dygy/wavegen/internal/wave"
)

// Session is the interactive controller. All parameter state lives here;
// the core packages stay state-free.
type Session struct {
	in          *bufio.Scanner
	out         io.Writer
	interactive bool

	sine     wave.Sine
	square   wave.Square
	triangle wave.Triangle
	sawtooth wave.Sawtooth
}

// New creates a session reading from in and writing to out, seeded with
// the same defaults the original tool starts with.
func New(in io.Reader, out io.Writer) *Session {
	s := &Session{
		in:       bufio.NewScanner(in),
		out:      out,
		sine:     wave.Sine{Freq: 1, Amp: 1},
		square:   wave.NewSquare(1, 1, 0.5),
		triangle: wave.Triangle{Freq: 1, Amp: 1},
		sawtooth: wave.Sawtooth{Freq: 1, Amp: 1, Slope: 1},
	}
	if f, ok := in.(*os.File); ok {
		s.interactive = term.IsTerminal(int(f.Fd()))
	}
	return s
}

// Run drives the menu loop until the input stream ends.
func (s *Session) Run() error {
	if s.interactive {
		fmt.Fprintln(s.out, "wavegen - waveform generator (Ctrl-D to quit)")
	}
	for {
		s.printMainMenu()
		choice, ok := s.readMenuChoice(4)
		if !ok {
			return nil
		}
		switch choice {
		case 1:
			fmt.Fprintf(s.out, "\n>> sine\n")
			s.configureSine()
			s.showSine()
		case 2:
			fmt.Fprintf(s.out, "\n>> square\n")
			s.configureSquare()
			s.showWaveform(s.square)
		case 3:
			fmt.Fprintf(s.out, "\n>> triangle\n")
			s.configureTriangle()
			s.showWaveform(s.triangle)
		case 4:
			fmt.Fprintf(s.out, "\n>> sawtooth\n")
			s.configureSawtooth()
			s.showWaveform(s.sawtooth)
		}
		if !s.waitForBack() {
			return nil
		}
	}
}

/* ---------- menus and input ---------- */

func (s *Session) printMainMenu() {
	fmt.Fprintf(s.out, "\n----------- waveform generator -----------\n")
	fmt.Fprintf(s.out, "|   1. sine                               |\n")
	fmt.Fprintf(s.out, "|   2. square                             |\n")
	fmt.Fprintf(s.out, "|   3. triangle                           |\n")
	fmt.Fprintf(s.out, "|   4. sawtooth                           |\n")
	fmt.Fprintf(s.out, "-------------------------------------------\n")
}

// readLine returns the next input line, false on end of input.
func (s *Session) readLine() (string, bool) {
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// readMenuChoice keeps prompting until it gets an integer in [1, max].
func (s *Session) readMenuChoice(max int) (int, bool) {
	for {
		fmt.Fprintf(s.out, "\nSelect a waveform you'd like to generate (1-%d): ", max)
		line, ok := s.readLine()
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Fprintf(s.out, "Enter an integer!\n")
			continue
		}
		if n < 1 || n > max {
			fmt.Fprintf(s.out, "Invalid menu item!\n")
			continue
		}
		return n, true
	}
}

// readFloat prompts once and falls back to def when the line does not
// parse, matching the original's behavior on bad numeric input.
func (s *Session) readFloat(prompt string, def float64) float64 {
	fmt.Fprintf(s.out, "%s", prompt)
	line, ok := s.readLine()
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return def
	}
	return v
}

// waitForBack nags until the user types 'b'; false on end of input.
func (s *Session) waitForBack() bool {
	for {
		fmt.Fprintf(s.out, "\nEnter 'b' or 'B' to go back to main menu: ")
		line, ok := s.readLine()
		if !ok {
			return false
		}
		if strings.HasPrefix(line, "b") || strings.HasPrefix(line, "B") {
			return true
		}
	}
}

/* ---------- per-kind configuration ---------- */

func (s *Session) configureSine() {
	s.sine.Freq = s.readFloat("\ninput frequency (Hz): ", 1)
	s.printSineSettings()
	s.sine.Amp = s.readFloat("\ninput amplitude (V): ", 1)
	s.printSineSettings()

	fmt.Fprintf(s.out, "\ninput phase (rad). Examples: 1.57    3.14/2    90deg    d:90    r:1.57\n")
	line, ok := s.readLine()
	if !ok {
		s.sine.Phase = 0
	} else if rad, err := ParsePhase(line); err != nil {
		fmt.Fprintf(s.out, "Failed to parse phase, set to 0.\n")
		s.sine.Phase = 0
	} else {
		s.sine.Phase = rad
	}
	s.printSineSettings()
}

func (s *Session) configureSquare() {
	s.square.Freq = s.readFloat("\ninput frequency (Hz): ", 1)
	s.printSquareSettings()
	s.square.Amp = s.readFloat("\ninput amplitude (V): ", 1)
	s.printSquareSettings()
	duty := s.readFloat("\ninput duty cycle (0..1): ", 0.5)
	s.square = wave.NewSquare(s.square.Freq, s.square.Amp, duty)
	s.printSquareSettings()
}

func (s *Session) configureTriangle() {
	s.triangle.Freq = s.readFloat("\ninput frequency (Hz): ", 1)
	s.printTriangleSettings()
	s.triangle.Amp = s.readFloat("\ninput amplitude (V): ", 1)
	s.printTriangleSettings()
}

// Sawtooth keeps its default frequency; only the jump amplitude and
// slope are configurable, as in the original tool.
func (s *Session) configureSawtooth() {
	s.sawtooth.Amp = s.readFloat("\ninput jump amplitude (V): ", 1)
	s.printSawtoothSettings()
	s.sawtooth.Slope = s.readFloat("\ninput slope: ", 1)
	s.printSawtoothSettings()
}

func (s *Session) printSineSettings() {
	fmt.Fprintf(s.out, "\n----------- sine settings -----------\n")
	fmt.Fprintf(s.out, "| 1. frequency: %.6f Hz\n", s.sine.Freq)
	fmt.Fprintf(s.out, "| 2. amplitude: %.6f V\n", s.sine.Amp)
	fmt.Fprintf(s.out, "| 3. phase:     %.6f rad\n", s.sine.Phase)
	fmt.Fprintf(s.out, "-------------------------------------\n")
}

func (s *Session) printSquareSettings() {
	fmt.Fprintf(s.out, "\n----------- square settings ---------\n")
	fmt.Fprintf(s.out, "| 1. frequency: %.6f Hz\n", s.square.Freq)
	fmt.Fprintf(s.out, "| 2. amplitude: %.6f V\n", s.square.Amp)
	fmt.Fprintf(s.out, "| 3. duty cycle: %.6f\n", s.square.Duty)
	fmt.Fprintf(s.out, "-------------------------------------\n")
}

func (s *Session) printTriangleSettings() {
	fmt.Fprintf(s.out, "\n---------- triangle settings --------\n")
	fmt.Fprintf(s.out, "| 1. frequency: %.6f Hz\n", s.triangle.Freq)
	fmt.Fprintf(s.out, "| 2. amplitude: %.6f V\n", s.triangle.Amp)
	fmt.Fprintf(s.out, "-------------------------------------\n")
}

func (s *Session) printSawtoothSettings() {
	fmt.Fprintf(s.out, "\n---------- sawtooth settings --------\n")
	fmt.Fprintf(s.out, "| 1. jump amplitude: %.6f V\n", s.sawtooth.Amp)
	fmt.Fprintf(s.out, "| 2. slope:          %.6f\n", s.sawtooth.Slope)
	fmt.Fprintf(s.out, "-------------------------------------\n")
}

/* ---------- output ---------- */

func (s *Session) showSine() {
	res, err := pipeline.Run(s.sine)
	if err != nil {
		fmt.Fprintf(s.out, "\nFrequency must be > 0!\n")
		return
	}
	fmt.Fprintf(s.out, "\n========== Sine Wave Table (One Period, %d Samples) ==========\n",
		sequence.TableSamples)
	fmt.Fprintf(s.out, "Frequency = %.6f Hz, Amplitude = %.6f, Phase = %.6f rad\n\n",
		s.sine.Freq, s.sine.Amp, s.sine.Phase)
	s.printTable(res.Table)

	fmt.Fprintf(s.out, "\n========== Sine Wave ASCII Plot ==========\n")
	fmt.Fprint(s.out, res.Canvas.String())
	fmt.Fprintf(s.out, "===========================================\n")

	s.offerModulation(s.sine)
}

func (s *Session) showWaveform(w wave.Waveform) {
	res, err := pipeline.Run(w)
	if err != nil {
		fmt.Fprintf(s.out, "\nFrequency must be > 0!\n")
		return
	}
	title := titleFor(w.Kind())

	fmt.Fprintf(s.out, "\n========== %s Wave Table (One Period, %d Samples) ==========\n",
		title, sequence.TableSamples)
	s.printParamsEcho(w)
	s.printTable(res.Table)

	fmt.Fprintf(s.out, "\n========== %s Wave ASCII Plot ==========\n", title)
	fmt.Fprint(s.out, res.Canvas.String())
	fmt.Fprintf(s.out, "===============================================\n")

	s.offerModulation(w)
}

func (s *Session) printParamsEcho(w wave.Waveform) {
	switch v := w.(type) {
	case wave.Square:
		fmt.Fprintf(s.out, "Frequency = %.6f Hz, Amplitude = %.6f, Duty = %.6f\n\n",
			v.Freq, v.Amp, v.Duty)
	case wave.Triangle:
		fmt.Fprintf(s.out, "Frequency = %.6f Hz, Amplitude = %.6f\n\n", v.Freq, v.Amp)
	case wave.Sawtooth:
		fmt.Fprintf(s.out, "Frequency = %.6f Hz, Jump Amp = %.6f, Slope = %.6f\n\n",
			v.Freq, v.Amp, v.Slope)
	}
}

func (s *Session) printTable(table []sequence.Sample) {
	fmt.Fprintf(s.out, "t(sec)\t\ty\n")
	for _, p := range table {
		fmt.Fprintf(s.out, "%.6f\t%.6f\n", p.T, p.Y)
	}
}

func titleFor(k wave.Kind) string {
	switch k {
	case wave.KindSine:
		return "Sine"
	case wave.KindSquare:
		return "Square"
	case wave.KindTriangle:
		return "Triangle"
	default:
		return "Sawtooth"
	}
}

/* ---------- modulation ---------- */

func (s *Session) offerModulation(base wave.Waveform) {
	fmt.Fprintf(s.out, "\nDo you want to apply modulation to this waveform? (y/n): ")
	line, ok := s.readLine()
	if !ok || !strings.HasPrefix(strings.ToLower(line), "y") {
		return
	}

	fmt.Fprintf(s.out, "\n----------- modulation menu -----------\n")
	fmt.Fprintf(s.out, "| 1. AM (Amplitude Modulation)        |\n")
	fmt.Fprintf(s.out, "| 2. FM (Frequency Modulation)        |\n")
	fmt.Fprintf(s.out, "| 3. PWM (Pulse Width Modulation)     |\n")
	fmt.Fprintf(s.out, "---------------------------------------\n")
	fmt.Fprintf(s.out, "\nSelect modulation type (1-3): ")
	line, ok = s.readLine()
	if !ok {
		return
	}
	choice, err := strconv.Atoi(line)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid input\n")
		return
	}

	var mod modulation.Modulator
	var label string
	switch choice {
	case 1:
		fmt.Fprintf(s.out, "\n=== AM Modulation ===\n")
		ac := s.readFloat("Carrier amplitude Ac: ", 1)
		fc := s.readFloat("Carrier frequency fc (Hz): ", 1)
		m := s.readFloat("Modulation index m (0..1 recommended): ", 0.5)
		mod, label = modulation.AM{CarrierAmp: ac, CarrierFreq: fc, Index: m, Base: base}, "AM"
	case 2:
		fmt.Fprintf(s.out, "\n=== FM Modulation ===\n")
		ac := s.readFloat("Carrier amplitude Ac: ", 1)
		fc := s.readFloat("Carrier frequency fc (Hz): ", 1)
		beta := s.readFloat("Modulation index beta (radians, controls deviation): ", 1)
		mod, label = modulation.FM{CarrierAmp: ac, CarrierFreq: fc, Beta: beta, Base: base}, "FM"
	case 3:
		fmt.Fprintf(s.out, "\n=== PWM Modulation ===\n")
		fpwm := s.readFloat("PWM carrier frequency fpwm (Hz): ", 50)
		ac := s.readFloat("Output amplitude Ac (for high level): ", 1)
		mod, label = modulation.PWM{SwitchFreq: fpwm, Amp: ac, Base: base}, "PWM"
	default:
		fmt.Fprintf(s.out, "Invalid modulation choice\n")
		return
	}

	res, err := pipeline.RunModulated(mod)
	if err != nil {
		fmt.Fprintf(s.out, "Error: %s\n", err)
		return
	}

	fmt.Fprintf(s.out, "\n=== %s Sample Table (One Period, %d Samples) ===\n",
		label, sequence.TableSamples)
	s.printTable(res.Table)

	fmt.Fprintf(s.out, "\n=== %s ASCII Plot ===\n", label)
	fmt.Fprint(s.out, res.Canvas.String())
	fmt.Fprintf(s.out, "=========================================\n")
}
