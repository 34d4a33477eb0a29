package jdxi

// Analog synth tone parameters. The block starts with the 12-byte tone name
// (0x00-0x0B); addressable parameters follow from 0x0D.
func analogParams() []Param {
	return []Param{
		{Name: "OSC_WAVEFORM", Offset: 0x0D, Min: 0, Max: 2, Hint: "SAW / TRI / PW-SQR"},
		{Name: "OSC_PITCH_COARSE", Offset: 0x0E, Min: 40, Max: 88, Zero: 64, Hint: "-24 - +24 semitones"},
		{Name: "OSC_PITCH_FINE", Offset: 0x0F, Min: 14, Max: 114, Zero: 64, Hint: "-50 - +50 cents"},
		{Name: "OSC_PULSE_WIDTH", Offset: 0x10, Min: 0, Max: 127},
		{Name: "OSC_PW_MOD_DEPTH", Offset: 0x11, Min: 0, Max: 127},
		{Name: "OSC_PITCH_ENV_VELO", Offset: 0x12, Min: 1, Max: 127, Zero: 64},
		{Name: "OSC_PITCH_ENV_ATTACK", Offset: 0x13, Min: 0, Max: 127},
		{Name: "OSC_PITCH_ENV_DECAY", Offset: 0x14, Min: 0, Max: 127},
		{Name: "AMP_LEVEL", Offset: 0x15, Min: 0, Max: 127},
		{Name: "AMP_LEVEL_KEYFOLLOW", Offset: 0x16, Min: 54, Max: 74, Zero: 64, Hint: "-10 - +10, tens of percent"},
		{Name: "AMP_VELOCITY_SENS", Offset: 0x17, Min: 1, Max: 127, Zero: 64},
		{Name: "AMP_ENV_ATTACK", Offset: 0x18, Min: 0, Max: 127},
		{Name: "AMP_ENV_DECAY", Offset: 0x19, Min: 0, Max: 127},
		{Name: "AMP_ENV_SUSTAIN", Offset: 0x1A, Min: 0, Max: 127},
		{Name: "AMP_ENV_RELEASE", Offset: 0x1B, Min: 0, Max: 127},
		{Name: "SUB_OSC_TYPE", Offset: 0x1C, Min: 0, Max: 2, Hint: "OFF / OCT-1 / OCT-2"},
		{Name: "FILTER_SWITCH", Offset: 0x1D, Min: 0, Max: 1, Switch: true, Hint: "BYPASS / LPF"},
		{Name: "FILTER_CUTOFF", Offset: 0x1E, Min: 0, Max: 127},
		{Name: "FILTER_CUTOFF_KEYFOLLOW", Offset: 0x1F, Min: 54, Max: 74, Zero: 64, Hint: "-10 - +10, tens of percent"},
		{Name: "FILTER_RESONANCE", Offset: 0x20, Min: 0, Max: 127},
		{Name: "FILTER_ENV_VELO", Offset: 0x21, Min: 1, Max: 127, Zero: 64},
		{Name: "FILTER_ENV_ATTACK", Offset: 0x22, Min: 0, Max: 127},
		{Name: "FILTER_ENV_DECAY", Offset: 0x23, Min: 0, Max: 127},
		{Name: "FILTER_ENV_SUSTAIN", Offset: 0x24, Min: 0, Max: 127},
		{Name: "FILTER_ENV_RELEASE", Offset: 0x25, Min: 0, Max: 127},
		{Name: "FILTER_ENV_DEPTH", Offset: 0x26, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_SHAPE", Offset: 0x27, Min: 0, Max: 5, Hint: "TRI / SIN / SAW / SQR / S&H / RND"},
		{Name: "LFO_RATE", Offset: 0x28, Min: 0, Max: 127},
		{Name: "LFO_FADE_TIME", Offset: 0x29, Min: 0, Max: 127},
		{Name: "LFO_TEMPO_SYNC_SWITCH", Offset: 0x2A, Min: 0, Max: 1, Switch: true},
		{Name: "LFO_TEMPO_SYNC_NOTE", Offset: 0x2B, Min: 0, Max: 19},
		{Name: "LFO_PITCH_DEPTH", Offset: 0x2C, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_FILTER_DEPTH", Offset: 0x2D, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_AMP_DEPTH", Offset: 0x2E, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_KEY_TRIGGER", Offset: 0x2F, Min: 0, Max: 1, Switch: true},
		{Name: "PORTAMENTO_SWITCH", Offset: 0x30, Min: 0, Max: 1, Switch: true},
		{Name: "PORTAMENTO_TIME", Offset: 0x31, Min: 0, Max: 127},
		{Name: "LEGATO_SWITCH", Offset: 0x32, Min: 0, Max: 1, Switch: true},
		{Name: "OCTAVE_SHIFT", Offset: 0x33, Min: 61, Max: 67, Zero: 64, Hint: "-3 - +3"},
		{Name: "PITCH_BEND_RANGE_UP", Offset: 0x34, Min: 0, Max: 24},
		{Name: "PITCH_BEND_RANGE_DOWN", Offset: 0x35, Min: 0, Max: 24},
	}
}
