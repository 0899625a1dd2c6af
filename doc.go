// Package marquee renders two procedural effects onto a raster surface: a
// drifting field of noise-driven dots and a scrolling dot-matrix light
// board you can draw on.
//
// # Quick start
//
// The simplest way to get a window is [Run] with a [Stage]:
//
//	stage := marquee.NewStage()
//	stage.SetField(marquee.NewFlowField(marquee.FlowConfig{}))
//
//	cfg := marquee.DefaultBoardConfig()
//	cfg.Text = "hello world"
//	stage.AddBoard(marquee.NewBoard(cfg), marquee.BoardPlacement{X: 0, Y: 40})
//
//	marquee.Run(stage, marquee.RunConfig{Title: "Marquee", Width: 800, Height: 120})
//
// For full control, drive the pieces yourself: both pipelines only need a
// [Surface] and one call per frame.
//
// # Flow field
//
// [FlowField] keeps a grid of dots at a fixed pitch. Each frame every dot
// samples a [Sampler] (by default a [NoiseField], classic gradient noise
// over a shuffled [PermutationTable]) to get a displacement and an opacity
// target, then eases toward them by exponential smoothing.
//
// # Light board
//
// [Compile] turns text into a [Pattern] using a bitmap [Font]: glyphs are
// scaled by an integer factor to fill the requested rows, centered
// vertically, and the whole pattern is doubled horizontally until it is at
// least twice the visible width. A [Board] scrolls a window across that
// pattern, either once per frame or throttled by [BoardConfig].Interval.
//
// Each board carries a [DrawOverlay]. Pointer strokes are rasterized with
// [Line] and written into the pattern at the current scroll offset. Hovering
// a board pauses it. The paint value and hover flag are [State] values that
// a caller may own (see [Binding] and [OwnerExternal]).
//
// # Surfaces
//
// [EbitenSurface] draws onto an ebiten.Image, [ImageSurface] onto a CPU
// canvas that can be saved as PNG, and the termboard subpackage onto a
// terminal.
//
// # Events
//
// [Board.SetEventSink] forwards hover, stroke and paint events as
// [BoardEvent] values. The ecs subpackage publishes them into a Donburi
// world.
//
// # Threading
//
// Boards, overlays and fields are not safe for concurrent use. Ebitengine
// calls Update and Draw on one goroutine; other hosts use [StartLoop] and
// post input handlers onto its goroutine.
//
// # Logging
//
// The package is silent by default. Call [SetLogger] to receive warnings
// about clamped configuration and, with [Stage.SetDebugMode], per-frame
// statistics.
package marquee
