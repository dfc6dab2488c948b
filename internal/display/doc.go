// Package display renders screener's terminal output.
//
// Every function writes to an io.Writer so commands can be tested with
// in-memory buffers. Color is decided once per Printer:
//
//	p := display.NewPrinter(os.Stdout, display.ColorEnabled(os.Stdout))
//	p.QuestionCard(q, 3, 12, -1)
//
// # Cards
//
//   - CatalogMenu lists the grouped instruments with their stats.
//   - QuestionCard shows a progress bar, the prompt and numbered options.
//   - CrisisNotice interrupts a session with hotline, emergency and
//     practice numbers.
//   - InstrumentDetail lists every question with its option values.
//   - ResultCard shows the label, score and recommendations.
//
// # Warnings
//
// Warning is a titled yellow message with optional items and a suggestion,
// used for validation problems. Notice prints a single yellow line such as
// the inline "select an answer" prompt.
package display
