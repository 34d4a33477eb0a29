package jdxi

// SuperNATURAL digital tone parameters, split into the common block
// (LMB 0x00) and the per-partial block shared by partials 1-3
// (LMB 0x20-0x22).

func digitalCommonParams() []Param {
	return []Param{
		{Name: "TONE_LEVEL", Offset: 0x0C, Min: 0, Max: 127},
		{Name: "PORTAMENTO_SWITCH", Offset: 0x12, Min: 0, Max: 1, Switch: true},
		{Name: "PORTAMENTO_TIME", Offset: 0x13, Min: 0, Max: 127},
		{Name: "MONO_SWITCH", Offset: 0x14, Min: 0, Max: 1, Switch: true},
		{Name: "OCTAVE_SHIFT", Offset: 0x15, Min: 61, Max: 67, Zero: 64, Hint: "-3 - +3"},
		{Name: "PITCH_BEND_RANGE_UP", Offset: 0x16, Min: 0, Max: 24},
		{Name: "PITCH_BEND_RANGE_DOWN", Offset: 0x17, Min: 0, Max: 24},
		{Name: "PARTIAL1_SWITCH", Offset: 0x19, Min: 0, Max: 1, Switch: true},
		{Name: "PARTIAL1_SELECT", Offset: 0x1A, Min: 0, Max: 1, Switch: true},
		{Name: "PARTIAL2_SWITCH", Offset: 0x1B, Min: 0, Max: 1, Switch: true},
		{Name: "PARTIAL2_SELECT", Offset: 0x1C, Min: 0, Max: 1, Switch: true},
		{Name: "PARTIAL3_SWITCH", Offset: 0x1D, Min: 0, Max: 1, Switch: true},
		{Name: "PARTIAL3_SELECT", Offset: 0x1E, Min: 0, Max: 1, Switch: true},
		{Name: "RING_SWITCH", Offset: 0x1F, Min: 0, Max: 2, Hint: "OFF / --- / ON"},
		{Name: "UNISON_SWITCH", Offset: 0x2E, Min: 0, Max: 1, Switch: true},
		{Name: "PORTAMENTO_MODE", Offset: 0x31, Min: 0, Max: 1, Switch: true, Hint: "NORMAL / LEGATO"},
		{Name: "LEGATO_SWITCH", Offset: 0x32, Min: 0, Max: 1, Switch: true},
		{Name: "ANALOG_FEEL", Offset: 0x34, Min: 0, Max: 127},
		{Name: "WAVE_SHAPE", Offset: 0x35, Min: 0, Max: 127},
		{Name: "TONE_CATEGORY", Offset: 0x36, Min: 0, Max: 127},
		{Name: "UNISON_SIZE", Offset: 0x3C, Min: 0, Max: 3, Hint: "2 / 4 / 6 / 8 voices"},
	}
}

func digitalPartialParams() []Param {
	return []Param{
		{Name: "OSC_WAVE", Offset: 0x00, Min: 0, Max: 7, Hint: "SAW / SQR / PW-SQR / TRI / SIN / NOISE / SUPER-SAW / PCM"},
		{Name: "OSC_WAVE_VARIATION", Offset: 0x01, Min: 0, Max: 2, Hint: "A / B / C"},
		{Name: "OSC_PITCH", Offset: 0x03, Min: 40, Max: 88, Zero: 64, Hint: "-24 - +24 semitones"},
		{Name: "OSC_DETUNE", Offset: 0x04, Min: 14, Max: 114, Zero: 64, Hint: "-50 - +50 cents"},
		{Name: "OSC_PWM_DEPTH", Offset: 0x05, Min: 0, Max: 127},
		{Name: "OSC_PULSE_WIDTH", Offset: 0x06, Min: 0, Max: 127},
		{Name: "OSC_PITCH_ENV_ATTACK", Offset: 0x07, Min: 0, Max: 127},
		{Name: "OSC_PITCH_ENV_DECAY", Offset: 0x08, Min: 0, Max: 127},
		{Name: "OSC_PITCH_ENV_DEPTH", Offset: 0x09, Min: 1, Max: 127, Zero: 64},
		{Name: "FILTER_MODE", Offset: 0x0A, Min: 0, Max: 7, Hint: "BYPASS / LPF / HPF / BPF / PKG / LPF2 / LPF3 / LPF4"},
		{Name: "FILTER_SLOPE", Offset: 0x0B, Min: 0, Max: 1, Switch: true, Hint: "-12 / -24 dB"},
		{Name: "FILTER_CUTOFF", Offset: 0x0C, Min: 0, Max: 127},
		{Name: "FILTER_CUTOFF_KEYFOLLOW", Offset: 0x0D, Min: 54, Max: 74, Zero: 64, Hint: "-10 - +10, tens of percent"},
		{Name: "FILTER_ENV_VELO", Offset: 0x0E, Min: 1, Max: 127, Zero: 64},
		{Name: "FILTER_RESONANCE", Offset: 0x0F, Min: 0, Max: 127},
		{Name: "FILTER_ENV_ATTACK", Offset: 0x10, Min: 0, Max: 127},
		{Name: "FILTER_ENV_DECAY", Offset: 0x11, Min: 0, Max: 127},
		{Name: "FILTER_ENV_SUSTAIN", Offset: 0x12, Min: 0, Max: 127},
		{Name: "FILTER_ENV_RELEASE", Offset: 0x13, Min: 0, Max: 127},
		{Name: "FILTER_ENV_DEPTH", Offset: 0x14, Min: 1, Max: 127, Zero: 64},
		{Name: "AMP_LEVEL", Offset: 0x15, Min: 0, Max: 127},
		{Name: "AMP_VELOCITY_SENS", Offset: 0x16, Min: 1, Max: 127, Zero: 64},
		{Name: "AMP_ENV_ATTACK", Offset: 0x17, Min: 0, Max: 127},
		{Name: "AMP_ENV_DECAY", Offset: 0x18, Min: 0, Max: 127},
		{Name: "AMP_ENV_SUSTAIN", Offset: 0x19, Min: 0, Max: 127},
		{Name: "AMP_ENV_RELEASE", Offset: 0x1A, Min: 0, Max: 127},
		{Name: "AMP_PAN", Offset: 0x1B, Min: 0, Max: 127, Zero: 64, Hint: "L64 - 63R"},
		{Name: "LFO_SHAPE", Offset: 0x1C, Min: 0, Max: 5, Hint: "TRI / SIN / SAW / SQR / S&H / RND"},
		{Name: "LFO_RATE", Offset: 0x1D, Min: 0, Max: 127},
		{Name: "LFO_TEMPO_SYNC_SWITCH", Offset: 0x1E, Min: 0, Max: 1, Switch: true},
		{Name: "LFO_TEMPO_SYNC_NOTE", Offset: 0x1F, Min: 0, Max: 19},
		{Name: "LFO_FADE_TIME", Offset: 0x20, Min: 0, Max: 127},
		{Name: "LFO_KEY_TRIGGER", Offset: 0x21, Min: 0, Max: 1, Switch: true},
		{Name: "LFO_PITCH_DEPTH", Offset: 0x22, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_FILTER_DEPTH", Offset: 0x23, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_AMP_DEPTH", Offset: 0x24, Min: 1, Max: 127, Zero: 64},
		{Name: "LFO_PAN_DEPTH", Offset: 0x25, Min: 1, Max: 127, Zero: 64},
		{Name: "CUTOFF_AFTERTOUCH_SENS", Offset: 0x30, Min: 1, Max: 127, Zero: 64},
		{Name: "LEVEL_AFTERTOUCH_SENS", Offset: 0x31, Min: 1, Max: 127, Zero: 64},
	}
}
