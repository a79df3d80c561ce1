package main

// Options controls how drum timings are extracted from a file
type Options struct {
	DrumChannel        uint8  // 0-based channel the drum track is found on
	HonorEmbeddedTempo bool   // apply tempo events found in the file
	Tempo              uint32 // initial tempo override in µs per beat, 0 picks it automatically
	FilenameBPM        bool   // fall back to the BPM encoded in the filename before the default tempo
}

// DefaultOptions returns the options used when no flags are given
func DefaultOptions() Options {
	return Options{
		DrumChannel:        gmDrumChannel,
		HonorEmbeddedTempo: true,
	}
}
