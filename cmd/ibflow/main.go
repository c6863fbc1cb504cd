package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/ibflow/internal/config"
	"github.com/san-kum/ibflow/internal/export"
	"github.com/san-kum/ibflow/internal/storage"
	"github.com/san-kum/ibflow/internal/tui"
	"github.com/san-kum/ibflow/internal/viz"
)

var (
	dataDir string
	// Shape parameters
	points    int
	radius    float64
	semiA     float64
	semiB     float64
	length    float64
	thickness float64
	lambda    float64
	// Placement
	posX  float64
	posY  float64
	angle float64
	// Motion (live command)
	motionType string
	velU       float64
	velV       float64
	velOmega   float64
	ampX       float64
	ampY       float64
	ampTheta   float64
	freq       float64
	phase      float64
	liveDt     float64
	// Misc
	configFile  string
	preset      string
	showNormals bool
	outFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ibflow",
		Short: "immersed-boundary body geometry toolkit",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".ibflow", "data directory")

	makeCmd := &cobra.Command{
		Use:   "make [shape]",
		Short: "generate a body and save it",
		Args:  cobra.ExactArgs(1),
		RunE:  makeBody,
	}
	addShapeFlags(makeCmd)
	makeCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	makeCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved bodies",
		RunE:  listBodies,
	}

	showCmd := &cobra.Command{
		Use:   "show [body_id]",
		Short: "render a saved body in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  showBody,
	}
	showCmd.Flags().BoolVar(&showNormals, "normals", false, "draw boundary normals")

	plotCmd := &cobra.Command{
		Use:   "plot [body_id]",
		Short: "plot the point spacing distribution",
		Args:  cobra.ExactArgs(1),
		RunE:  plotSpacing,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [body_id]",
		Short: "export a saved body to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().BoolVar(&showNormals, "normals", false, "draw boundary normals")
	exportSVGCmd.Flags().StringVar(&outFile, "out", "", "output file (default <body_id>.svg)")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [body_id]",
		Short: "write a saved body's points to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [shape]",
		Short: "list available presets for a shape",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for shape: %s\n", args[0])
				return nil
			}
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live [shape]",
		Short: "animate a body under a prescribed motion",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	addShapeFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	liveCmd.Flags().StringVar(&motionType, "motion", "oscillating", "motion type (static, constant, oscillating)")
	liveCmd.Flags().Float64Var(&velU, "u", 0.0, "x velocity (constant motion)")
	liveCmd.Flags().Float64Var(&velV, "v", 0.0, "y velocity (constant motion)")
	liveCmd.Flags().Float64Var(&velOmega, "omega", 0.0, "angular rate (constant motion)")
	liveCmd.Flags().Float64Var(&ampX, "amp-x", 0.0, "heave amplitude in x")
	liveCmd.Flags().Float64Var(&ampY, "amp-y", 0.25, "heave amplitude in y")
	liveCmd.Flags().Float64Var(&ampTheta, "amp-theta", 0.0, "pitch amplitude (radians)")
	liveCmd.Flags().Float64Var(&freq, "freq", 0.5, "oscillation frequency (Hz)")
	liveCmd.Flags().Float64Var(&phase, "phase", 0.0, "oscillation phase (radians)")
	liveCmd.Flags().Float64Var(&liveDt, "dt", 0.02, "time increment per frame")

	rootCmd.AddCommand(makeCmd, listCmd, showCmd, plotCmd, exportSVGCmd, exportCSVCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addShapeFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "point count (per face for thickplate)")
	cmd.Flags().Float64Var(&radius, "radius", config.DefaultRadius, "circle radius")
	cmd.Flags().Float64Var(&semiA, "a", config.DefaultRadius, "ellipse semi-axis a")
	cmd.Flags().Float64Var(&semiB, "b", config.DefaultRadius, "ellipse semi-axis b")
	cmd.Flags().Float64Var(&length, "length", config.DefaultLength, "plate length")
	cmd.Flags().Float64Var(&thickness, "thickness", config.DefaultThickness, "plate thickness")
	cmd.Flags().Float64Var(&lambda, "lambda", config.DefaultLambda, "tip clustering parameter in (0, 1]")
	cmd.Flags().Float64Var(&posX, "x", 0.0, "reference point x")
	cmd.Flags().Float64Var(&posY, "y", 0.0, "reference point y")
	cmd.Flags().Float64Var(&angle, "angle", 0.0, "placement angle (radians)")
}

// resolveConfig builds the shape config from, in order of priority:
// config file, preset, command-line flags.
func resolveConfig(shape string) (*config.Config, error) {
	if configFile != "" {
		return config.Load(configFile)
	}
	if preset != "" {
		cfg := config.GetPreset(shape, preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q for shape %s", preset, shape)
		}
		return cfg, nil
	}

	cfg := config.DefaultConfig()
	cfg.Shape = shape
	cfg.Points = points
	cfg.Ellipse = config.EllipseConfig{A: semiA, B: semiB, Radius: radius}
	cfg.Plate = config.PlateConfig{Length: length, Thickness: thickness, Lambda: lambda}
	cfg.Placement = config.PlacementConfig{X: posX, Y: posY, Angle: angle}
	cfg.Motion = config.MotionConfig{
		Type:     motionType,
		U:        velU,
		V:        velV,
		Omega:    velOmega,
		AmpX:     ampX,
		AmpY:     ampY,
		AmpTheta: ampTheta,
		Freq:     freq,
		Phase:    phase,
	}
	return cfg, nil
}

func makeBody(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	bd, err := cfg.Build()
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	bodyID, err := st.Save(cfg.Shape, bd)
	if err != nil {
		return err
	}

	fmt.Println(bd)
	fmt.Printf("\nbody id: %s\n", bodyID)
	return nil
}

func listBodies(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	bodies, err := st.List()
	if err != nil {
		return err
	}

	if len(bodies) == 0 {
		fmt.Println("no bodies found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSHAPE\tTIME\tPOINTS\tMIN DS\tMAX DS")
	for _, b := range bodies {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%.4f\n",
			b.ID,
			b.Shape,
			b.Timestamp.Format("2006-01-02 15:04:05"),
			b.Points,
			b.MinSpacing,
			b.MaxSpacing,
		)
	}
	return w.Flush()
}

func showBody(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	bd, err := st.LoadBody(args[0])
	if err != nil {
		return err
	}
	if bd.NumPoints() == 0 {
		return fmt.Errorf("body %s has no points", args[0])
	}

	fmt.Print(viz.RenderBody(bd, 64, 22, showNormals))
	fmt.Println()
	fmt.Println(bd)
	return nil
}

func plotSpacing(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	bd, err := st.LoadBody(args[0])
	if err != nil {
		return err
	}

	ds, err := bd.Spacing()
	if err != nil {
		return err
	}

	fmt.Printf("body: %s (%d points)\n\n", args[0], bd.NumPoints())
	fmt.Println(asciigraph.Plot(ds,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("arc-length element per boundary point"),
	))
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	bd, err := st.LoadBody(args[0])
	if err != nil {
		return err
	}

	opts := export.DefaultOptions()
	opts.ShowNormals = showNormals

	svg, err := export.BodyToSVG(bd, opts)
	if err != nil {
		return err
	}

	path := outFile
	if path == "" {
		path = args[0] + ".svg"
	}
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	bd, err := st.LoadBody(args[0])
	if err != nil {
		return err
	}

	bodyPts := bd.Points()
	inertialPts := bd.InertialPoints()
	fmt.Println("xb,yb,x,y")
	for i := range bodyPts {
		fmt.Printf("%.9f,%.9f,%.9f,%.9f\n",
			bodyPts[i].X, bodyPts[i].Y, inertialPts[i].X, inertialPts[i].Y)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(args[0])
	if err != nil {
		return err
	}

	bd, err := cfg.Build()
	if err != nil {
		return err
	}
	mot, err := cfg.BuildMotion()
	if err != nil {
		return err
	}

	if err := bd.SetMotion(mot, 1); err != nil {
		return err
	}
	return tui.Run(bd, mot, cfg.Shape, liveDt)
}
