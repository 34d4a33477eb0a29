package jdxi

// Drum partial parameters, one block per kit voice. Each voice's block
// starts with its own 12-byte name. WMT1_WAVE_NUMBER is one of the four
// byte nibbled values in the map.
func drumPartialParams() []Param {
	return []Param{
		{Name: "ASSIGN_TYPE", Offset: 0x0C, Min: 0, Max: 1, Switch: true, Hint: "MULTI / SINGLE"},
		{Name: "MUTE_GROUP", Offset: 0x0D, Min: 0, Max: 31, Hint: "OFF / 1 - 31"},
		{Name: "PARTIAL_LEVEL", Offset: 0x0E, Min: 0, Max: 127},
		{Name: "COARSE_TUNE", Offset: 0x0F, Min: 0, Max: 127, Hint: "C-1 - G9"},
		{Name: "FINE_TUNE", Offset: 0x10, Min: 14, Max: 114, Zero: 64, Hint: "-50 - +50 cents"},
		{Name: "RANDOM_PITCH_DEPTH", Offset: 0x11, Min: 0, Max: 30},
		{Name: "PAN", Offset: 0x12, Min: 0, Max: 127, Zero: 64, Hint: "L64 - 63R"},
		{Name: "RANDOM_PAN_DEPTH", Offset: 0x13, Min: 0, Max: 63},
		{Name: "ALTERNATE_PAN_DEPTH", Offset: 0x14, Min: 1, Max: 127, Zero: 64},
		{Name: "ENV_MODE", Offset: 0x15, Min: 0, Max: 1, Switch: true, Hint: "NO-SUS / SUSTAIN"},
		{Name: "OUTPUT_LEVEL", Offset: 0x16, Min: 0, Max: 127},
		{Name: "CHORUS_SEND_LEVEL", Offset: 0x19, Min: 0, Max: 127},
		{Name: "REVERB_SEND_LEVEL", Offset: 0x1A, Min: 0, Max: 127},
		{Name: "OUTPUT_ASSIGN", Offset: 0x1B, Min: 0, Max: 4},
		{Name: "PITCH_BEND_RANGE", Offset: 0x1C, Min: 0, Max: 48},
		{Name: "RECEIVE_EXPRESSION", Offset: 0x1D, Min: 0, Max: 1, Switch: true},
		{Name: "RECEIVE_HOLD", Offset: 0x1E, Min: 0, Max: 1, Switch: true},
		{Name: "WMT_VELOCITY_CONTROL", Offset: 0x20, Min: 0, Max: 2, Hint: "OFF / ON / RANDOM"},
		{Name: "WMT1_WAVE_SWITCH", Offset: 0x21, Min: 0, Max: 1, Switch: true},
		{Name: "WMT1_WAVE_NUMBER", Offset: 0x27, Min: 0, Max: 16384, Size: 4},
		{Name: "WMT1_WAVE_GAIN", Offset: 0x2B, Min: 0, Max: 3, Hint: "-6 / 0 / +6 / +12 dB"},
		{Name: "WMT1_WAVE_PAN", Offset: 0x2C, Min: 0, Max: 127, Zero: 64, Hint: "L64 - 63R"},
		{Name: "WMT1_WAVE_LEVEL", Offset: 0x2D, Min: 0, Max: 127},
		{Name: "PITCH_ENV_DEPTH", Offset: 0x6F, Min: 52, Max: 76, Zero: 64, Hint: "-12 - +12"},
		{Name: "TVF_FILTER_TYPE", Offset: 0x70, Min: 0, Max: 6},
		{Name: "TVF_CUTOFF", Offset: 0x71, Min: 0, Max: 127},
		{Name: "TVF_RESONANCE", Offset: 0x73, Min: 0, Max: 127},
		{Name: "TVA_LEVEL_VELOCITY_SENS", Offset: 0x75, Min: 1, Max: 127, Zero: 64},
	}
}
