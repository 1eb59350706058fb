package main

import (
	"log"

	rl "github.com/gen2brain/raylib-go/raylib"

	"wavefunction_simulation_2d/internal/config"
	"wavefunction_simulation_2d/internal/input"
	"wavefunction_simulation_2d/internal/renderer"
	"wavefunction_simulation_2d/internal/simulation"
)

func main() {
	cfg := config.DefaultConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	sim, err := simulation.New(cfg)
	if err != nil {
		log.Fatalf("failed to start simulation: %v", err)
	}

	controller := input.NewInputController()

	view := renderer.NewGridView(cfg.ScreenWidth, cfg.ScreenHeight, cfg.Nx, cfg.Ny, cfg.Dx)
	view.SetZoom(cfg.GridVisScale)
	heatmap := renderer.NewHeatmapRenderer(cfg.Nx, cfg.Ny)
	heatmap.SetView(view)
	heatmap.SetGamma(cfg.HeatmapGamma)
	ui := renderer.NewUIRenderer(cfg.ScreenWidth, cfg.ScreenHeight)

	loop := renderer.NewRenderLoop()
	loop.SetTargetFPS(60)

	rl.SetConfigFlags(rl.FlagWindowResizable)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), "2D Wavefunction Simulator")
	defer rl.CloseWindow()

	// raylib's own vsync/target-fps wait is left disabled; RenderLoop paces
	// frames itself via SetTargetFPS/EnableVSync, so only one of the two
	// should ever sleep.
	loop.SetBeginCallback(func() {
		if rl.WindowShouldClose() {
			loop.RequestClose()
		}
	})

	loop.SetUpdateCallback(func(dt float64) {
		controller.UpdateFromRaylib()
		sim.HandleInput(controller)

		if err := sim.Advance(); err != nil {
			log.Printf("step failed: %v", err)
		}
	})

	loop.SetRenderCallback(func(dt float64) {
		if err := heatmap.UpdateDensity(sim.Session().GetProbabilityDensity()); err != nil {
			log.Printf("heatmap update failed: %v", err)
		}

		params := sim.Session().GetParameters()
		ui.UpdateState(renderer.UIState{
			PotentialType:    params.PotentialType,
			TotalProbability: sim.Session().GetTotalProbability(),
			SimulationTime:   sim.Session().GetTime(),
			LastMeasurement:  sim.State().LastMeasure,
			HasMeasurement:   sim.State().HasMeasurement,
			TargetFPS:        loop.GetTargetFPS(),
			ActualFPS:        loop.GetActualFPS(),
			FrameTime:        loop.GetLastFrameTime(),
			Paused:           sim.State().Paused,
			FilterEnabled:    sim.State().FilterEnabled,
		})

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		drawHeatmap(heatmap, view, cfg.Nx, cfg.Ny)
		drawHUD(ui)
		rl.EndDrawing()
	})

	loop.Run()
}

// drawHeatmap blits the cached per-cell colors from a HeatmapRenderer
// through a GridView, one filled rectangle per grid cell.
func drawHeatmap(heatmap *renderer.HeatmapRenderer, view *renderer.GridView, nx, ny int) {
	cw, ch := view.CellSize()
	for j := 0; j < ny; j++ {
		for i := 0; i < nx; i++ {
			c, err := heatmap.ColorAt(i, j)
			if err != nil {
				continue
			}
			x, y := view.GridToScreen(i, j)
			rl.DrawRectangle(int32(x), int32(y), int32(cw)+1, int32(ch)+1, rl.NewColor(
				uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(c.A*255),
			))
		}
	}
}

// drawHUD renders the text overlay described by a UIRenderer.
func drawHUD(ui *renderer.UIRenderer) {
	white := rl.White
	x, y := ui.GetTitlePosition()
	rl.DrawText(ui.GetTitle(), int32(x), int32(y), int32(ui.GetFontSize()), rl.Lime)

	x, y = ui.GetPotentialPosition()
	rl.DrawText(ui.GetPotentialString(), int32(x), int32(y), int32(ui.GetFontSize()), white)

	x, y = ui.GetProbabilityPosition()
	rl.DrawText(ui.GetTotalProbabilityText(), int32(x), int32(y), int32(ui.GetFontSize()), white)

	x, y = ui.GetTimePosition()
	rl.DrawText(ui.GetSimulationTimeText(), int32(x), int32(y), int32(ui.GetFontSize()), white)

	if text := ui.GetMeasurementText(); text != "" {
		x, y = ui.GetMeasurementPosition()
		rl.DrawText(text, int32(x), int32(y), int32(ui.GetFontSize()), white)
	}

	x, y = ui.GetFPSPosition()
	rl.DrawText(ui.GetActualFPSText(), int32(x), int32(y), int32(ui.GetFontSize()), white)

	for i, line := range ui.GetControlInstructions() {
		x, y = ui.GetControlPosition(i)
		rl.DrawText(line, int32(x), int32(y), int32(ui.GetFontSize()-4), rl.Gray)
	}

	if ui.IsPaused() {
		x, y = ui.GetPausePosition()
		rl.DrawText(ui.GetPauseText(), int32(x), int32(y), int32(ui.GetFontSize()), rl.Yellow)
	}
}
