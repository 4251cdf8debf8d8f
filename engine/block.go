// SPDX-License-Identifier: EPL-2.0

package engine

// MainOutput is the stream name whose reported position governs the
// processing loop unless Config.Main overrides it.
const MainOutput = "main_output"

// Block is a contiguous run of interleaved float32 frames.
type Block struct {
	// Data holds Channels values per frame, frame after frame.
	Data []float32
	// Channels count (e.g., 1=mono, 2=stereo).
	Channels int
}

// Frames in the block, per channel.
func (b Block) Frames() int {
	if b.Channels < 1 {
		return 0
	}
	return len(b.Data) / b.Channels
}

// Chunk is one output block a Processor reports for a named stream: the
// block plus the absolute frame index its end is aligned to.
//
// End < 0 marks a stream that has not yet produced aligned output, which
// is common during the first calls of transforms with internal latency.
// Data == nil marks a call with nothing to emit. A chunk with End >= 0
// covers the frames [End-Frames(), End).
type Chunk struct {
	Block
	End int
}

// Start is the absolute index of the first frame the chunk covers.
func (c Chunk) Start() int { return c.End - c.Frames() }

// Result maps stream names to the chunks reported for one processed
// block. The name set may differ from call to call.
type Result map[string]Chunk
