package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dygy/wavegen/internal/config"
	"github.com/dygy/wavegen/internal/export"
	"github.com/dygy/wavegen/internal/modulation"
	"github.com/dygy/wavegen/internal/pipeline"
	"github.com/dygy/wavegen/internal/server"
	"github.com/dygy/wavegen/internal/session"
	"github.com/dygy/wavegen/internal/wave"
)

var (
	version = "0.1.0"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "wavegen",
	Short: "Generate and visualize periodic waveforms in the terminal",
	Long: `wavegen samples periodic waveforms (sine, square, triangle, sawtooth),
optionally applies AM/FM/PWM modulation, and prints a numeric sample
table plus an ASCII line plot for each configured signal.

Run without arguments for the interactive menu.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		return session.New(os.Stdin, os.Stdout).Run()
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot [sine|square|triangle|sawtooth]",
	Short: "Print the sample table and ASCII plot for one waveform",
	Long: `Sample one period of a waveform and print its 8-point table and
100-column ASCII plot.

Examples:
  wavegen plot sine --freq 2 --amp 1 --phase 90deg
  wavegen plot square --freq 1 --duty 0.25
  wavegen plot sine --modulate am --carrier-freq 10 --index 0.5
  wavegen plot --presets bench.yaml --preset a440`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlot,
}

var exportCmd = &cobra.Command{
	Use:   "export [sine|square|triangle|sawtooth]",
	Short: "Write the configured signal to a WAV file",
	Long: `Render the configured signal offline to a 16-bit mono PCM WAV file.

Examples:
  wavegen export sine --freq 440 --wav a440.wav
  wavegen export square --freq 110 --cycles 100 --rate 48000 --wav out.wav`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve table and plot rendering over HTTP",
	Long: `Start an HTTP endpoint that accepts waveform parameters as JSON and
responds with the rendered ASCII plot or the raw sample data.

Example:
  wavegen serve --port 8080`,
	RunE: runServe,
}

var (
	// waveform flags
	freq     float64
	amp      float64
	phaseStr string
	duty     float64
	slope    float64

	// modulation flags
	modScheme   string
	carrierFreq float64
	carrierAmp  float64
	modIndex    float64

	// preset flags
	presetsPath string
	presetName  string

	// export flags
	wavPath    string
	sampleRate int
	cycles     int

	// serve flags
	port int
)

func init() {
	for _, cmd := range []*cobra.Command{plotCmd, exportCmd} {
		cmd.Flags().Float64Var(&freq, "freq", 1, "frequency in Hz")
		cmd.Flags().Float64Var(&amp, "amp", 1, "amplitude (jump amplitude for sawtooth)")
		cmd.Flags().StringVar(&phaseStr, "phase", "0", "phase for sine (1.57, 3.14/2, 90deg, d:90, r:1.57)")
		cmd.Flags().Float64Var(&duty, "duty", 0.5, "duty cycle for square, clamped to [0,1]")
		cmd.Flags().Float64Var(&slope, "slope", 1, "slope for sawtooth")

		cmd.Flags().StringVar(&modScheme, "modulate", "", "modulation scheme: am, fm or pwm")
		cmd.Flags().Float64Var(&carrierFreq, "carrier-freq", 1, "carrier (or PWM switching) frequency in Hz")
		cmd.Flags().Float64Var(&carrierAmp, "carrier-amp", 1, "carrier amplitude")
		cmd.Flags().Float64Var(&modIndex, "index", 0.5, "modulation index (AM gain or FM beta)")

		cmd.Flags().StringVar(&presetsPath, "presets", "", "YAML preset file")
		cmd.Flags().StringVar(&presetName, "preset", "", "preset name to load from --presets")
	}

	exportCmd.Flags().StringVar(&wavPath, "wav", "", "output WAV path (required)")
	exportCmd.Flags().IntVar(&sampleRate, "rate", 44100, "sample rate in Hz")
	exportCmd.Flags().IntVar(&cycles, "cycles", 1, "number of periods to write")
	exportCmd.MarkFlagRequired("wav")

	serveCmd.Flags().IntVar(&port, "port", 8080, "HTTP port")

	rootCmd.AddCommand(plotCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(serveCmd)
}

// resolvePreset turns the command line into one parameter set, either
// from a preset file or from the kind argument plus flags.
func resolvePreset(args []string) (*config.Preset, error) {
	if presetsPath != "" || presetName != "" {
		if presetsPath == "" || presetName == "" {
			return nil, fmt.Errorf("--presets and --preset must be used together")
		}
		f, err := config.Load(presetsPath)
		if err != nil {
			return nil, err
		}
		return f.Find(presetName)
	}

	if len(args) != 1 {
		return nil, fmt.Errorf("waveform kind required (sine, square, triangle or sawtooth)")
	}
	phase, err := session.ParsePhase(phaseStr)
	if err != nil {
		return nil, err
	}

	p := &config.Preset{
		Waveform:  args[0],
		Frequency: freq,
		Amplitude: amp,
		Phase:     phase,
		Duty:      duty,
		Slope:     slope,
	}
	if modScheme != "" {
		p.Modulation = &config.ModulationPreset{
			Scheme:      modScheme,
			CarrierAmp:  carrierAmp,
			CarrierFreq: carrierFreq,
			Index:       modIndex,
		}
	}
	return p, nil
}

func buildSignal(args []string) (wave.Waveform, modulation.Modulator, error) {
	p, err := resolvePreset(args)
	if err != nil {
		return nil, nil, err
	}
	base, err := p.Build()
	if err != nil {
		return nil, nil, err
	}
	mod, err := p.BuildModulator(base)
	if err != nil {
		return nil, nil, err
	}
	return base, mod, nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	base, mod, err := buildSignal(args)
	if err != nil {
		return err
	}

	var res *pipeline.Result
	if mod != nil {
		res, err = pipeline.RunModulated(mod)
	} else {
		res, err = pipeline.Run(base)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "t(sec)\t\ty\n")
	for _, s := range res.Table {
		fmt.Fprintf(out, "%.6f\t%.6f\n", s.T, s.Y)
	}
	fmt.Fprintln(out)
	fmt.Fprint(out, res.Canvas.String())
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	base, mod, err := buildSignal(args)
	if err != nil {
		return err
	}

	opts := export.Options{SampleRate: sampleRate, Cycles: cycles}
	var period float64
	if mod != nil {
		period = mod.Period()
		opts.Scale = mod.DisplayAmplitude()
		err = export.WriteWAV(wavPath, mod.Sample, period, opts)
	} else {
		if base.Frequency() <= 0 {
			return fmt.Errorf("frequency must be > 0")
		}
		period = 1 / base.Frequency()
		opts.Scale = base.Amplitude()
		err = export.WriteWAV(wavPath, base.Sample, period, opts)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d Hz, %d cycle(s) of %.6f s)\n",
		wavPath, sampleRate, cycles, period)
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	return server.New(server.Config{Port: port}).Run()
}
