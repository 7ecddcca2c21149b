// Package recording captures the draw calls of a chart as typed commands.
//
// A [Recorder] implements linechart.Canvas. Instead of rasterizing it
// stores one command per visible operation (clear, stroke, fill, text),
// with the path and the style that were current at that moment. The
// resulting [Recording] can be inspected, which is how the chart is tested
// headlessly, or played back onto any other canvas.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(800, 600)
//	if err := chart.Draw(rec); err != nil {
//	    return err
//	}
//	r := rec.FinishRecording()
//
//	for _, t := range recording.Find[recording.FillTextCommand](r) {
//	    fmt.Println(t.Text, t.X, t.Y)
//	}
//
// # Playback
//
//	cv, _ := ggcanvas.New(800, 600)
//	if err := r.Playback(cv); err != nil {
//	    return err
//	}
//	_ = cv.SavePNG("chart.png")
//
// # Thread Safety
//
// Recorder is NOT safe for concurrent use. A Recording is immutable after
// FinishRecording and can be shared and played back from several goroutines.
package recording
