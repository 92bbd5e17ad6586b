package config

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Analysis: Analysis{
			FFTSize: 16384,
			HopSize: 8192,
			Window:  "hann",
		},
		Curve: Curve{
			Smoothing:    50,
			Resolution:   200,
			RolloffStart: 21000,
			RolloffEnd:   22000,
			ChannelMode:  "L+R",
		},
		Runtime: Runtime{
			LogLevel: "info",
		},
	}
}
