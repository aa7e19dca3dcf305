package qmf

// HighBandDelay is the pure delay (in samples) applied to the high1 band
// to align its timing with the extra QMF stage the low/mid path goes
// through (spec.md §4.4 "Tree").
const HighBandDelay = 39

// AnalysisTree splits a 512-sample frame into low(128)/mid(128)/high(256)
// bands via the two-stage QMF analysis tree.
type AnalysisTree struct {
	stage1     *Analyzer // 512 -> low1(256), high1(256)
	stage2     *Analyzer // low1(256) -> low(128), mid(128)
	highDelay  *Delay
}

// NewAnalysisTree returns an AnalysisTree with fresh delay-line state.
func NewAnalysisTree() *AnalysisTree {
	return &AnalysisTree{
		stage1:    NewAnalyzer(),
		stage2:    NewAnalyzer(),
		highDelay: NewDelay(HighBandDelay),
	}
}

// Split returns the low, mid, and high bands for one 512-sample frame.
func (t *AnalysisTree) Split(frame []float32) (low, mid, high []float32) {
	low1, high1 := t.stage1.Process(frame)
	low, mid = t.stage2.Process(low1)
	high = t.highDelay.Process(high1)
	return low, mid, high
}

// SynthesisTree is the mirror of AnalysisTree: it recombines low/mid/high
// bands into a 512-sample frame.
type SynthesisTree struct {
	stage2    *Synthesizer // low(128),mid(128) -> low1(256)
	stage1    *Synthesizer // low1(256),high(256) -> frame(512)
	highDelay *Delay
}

// NewSynthesisTree returns a SynthesisTree with fresh delay-line state.
func NewSynthesisTree() *SynthesisTree {
	return &SynthesisTree{
		stage2:    NewSynthesizer(),
		stage1:    NewSynthesizer(),
		highDelay: NewDelay(HighBandDelay),
	}
}

// Combine reconstructs a 512-sample frame from low/mid/high bands.
func (t *SynthesisTree) Combine(low, mid, high []float32) []float32 {
	low1 := t.stage2.Process(low, mid)
	delayedHigh := t.highDelay.Process(high)
	return t.stage1.Process(low1, delayedHigh)
}
