package jdxi

// Program-level parameter tables: the program common block (LMB 0x00), the
// vocal effects block (LMB 0x01) and the arpeggio block (LMB 0x40).

// The vendor parameter guide and the editor sources disagree on where
// program level and tempo live. Both candidates stay exported pending
// hardware verification; the registry binds the editor offsets.
const (
	ProgramLevelOffsetEditor = 0x10
	ProgramLevelOffsetGuide  = 0x16
	ProgramTempoOffsetEditor = 0x11
	ProgramTempoOffsetGuide  = 0x17
)

func programCommonParams() []Param {
	return []Param{
		{Name: "PROGRAM_LEVEL", Offset: ProgramLevelOffsetEditor, Min: 0, Max: 127},
		// Tempo travels as four nibbles of hundredths of BPM.
		{Name: "PROGRAM_TEMPO", Offset: ProgramTempoOffsetEditor, Min: 500, Max: 30000, Size: 4, Hint: "5.00 - 300.00 BPM x100"},
		{Name: "VOCAL_EFFECT", Offset: 0x15, Min: 0, Max: 2, Hint: "OFF / VOCODER / AUTO-PITCH"},
	}
}

func arpeggioParams() []Param {
	return []Param{
		{Name: "ARP_GRID", Offset: 0x01, Min: 0, Max: 8, Hint: "1/4 - 1/32t"},
		{Name: "ARP_DURATION", Offset: 0x02, Min: 0, Max: 9, Hint: "30% - FULL"},
		{Name: "ARP_SWITCH", Offset: 0x03, Min: 0, Max: 1, Switch: true},
		{Name: "ARP_STYLE", Offset: 0x05, Min: 0, Max: 127},
		{Name: "ARP_MOTIF", Offset: 0x06, Min: 0, Max: 11},
		{Name: "ARP_OCTAVE_RANGE", Offset: 0x07, Min: 61, Max: 67, Zero: 64, Hint: "-3 - +3"},
		{Name: "ARP_ACCENT_RATE", Offset: 0x09, Min: 0, Max: 100},
		{Name: "ARP_VELOCITY", Offset: 0x0A, Min: 0, Max: 127, Hint: "REAL / 1 - 127"},
	}
}

func vocalFxParams() []Param {
	return []Param{
		{Name: "VFX_LEVEL", Offset: 0x00, Min: 0, Max: 127},
		{Name: "VFX_PAN", Offset: 0x01, Min: 0, Max: 127, Zero: 64, Hint: "L64 - 63R"},
		{Name: "VFX_DELAY_SEND_LEVEL", Offset: 0x02, Min: 0, Max: 127},
		{Name: "VFX_REVERB_SEND_LEVEL", Offset: 0x03, Min: 0, Max: 127},
		{Name: "VFX_OUTPUT_ASSIGN", Offset: 0x04, Min: 0, Max: 4},
		{Name: "AUTO_PITCH_SWITCH", Offset: 0x05, Min: 0, Max: 1, Switch: true},
		{Name: "AUTO_PITCH_TYPE", Offset: 0x06, Min: 0, Max: 3, Hint: "SOFT / HARD / ELECTRIC1 / ELECTRIC2"},
		{Name: "AUTO_PITCH_SCALE", Offset: 0x07, Min: 0, Max: 1, Switch: true, Hint: "CHROMATIC / MAJ(MIN)"},
		{Name: "AUTO_PITCH_KEY", Offset: 0x08, Min: 0, Max: 23},
		{Name: "AUTO_PITCH_NOTE", Offset: 0x09, Min: 0, Max: 11},
		{Name: "AUTO_PITCH_GENDER", Offset: 0x0A, Min: 54, Max: 74, Zero: 64, Hint: "-10 - +10"},
		{Name: "AUTO_PITCH_OCTAVE", Offset: 0x0B, Min: 0, Max: 2, Hint: "-1 / 0 / +1"},
		{Name: "AUTO_PITCH_BALANCE", Offset: 0x0C, Min: 0, Max: 100, Hint: "dry - wet"},
		{Name: "VOCODER_SWITCH", Offset: 0x0D, Min: 0, Max: 1, Switch: true},
		{Name: "VOCODER_ENVELOPE", Offset: 0x0E, Min: 0, Max: 2, Hint: "SHARP / SOFT / LONG"},
		{Name: "VOCODER_LEVEL", Offset: 0x0F, Min: 0, Max: 127},
		{Name: "VOCODER_MIC_SENS", Offset: 0x10, Min: 0, Max: 127},
		{Name: "VOCODER_SYNTH_LEVEL", Offset: 0x11, Min: 0, Max: 127},
		{Name: "VOCODER_MIC_MIX", Offset: 0x12, Min: 0, Max: 127},
		{Name: "VOCODER_MIC_HPF", Offset: 0x13, Min: 0, Max: 13, Hint: "BYPASS / 1000 - 16000 Hz"},
	}
}
