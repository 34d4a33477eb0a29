package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	jdxi "github.com/markxbrooks/go-jdxi"
)

func main() {
	const nameHint = "jd-xi"

	log.Println("Available MIDI outputs:")
	log.Print(midi.GetOutPorts().String())

	portIdx, err := findOutPort(nameHint)
	if err != nil {
		log.Fatalf("could not find JD-Xi MIDI out port: %v", err)
	}

	inPortIdx, err := findInPort(nameHint)
	if err != nil {
		log.Fatalf("could not find JD-Xi MIDI in port: %v", err)
	}

	dev, closer, err := jdxi.OpenDevice(jdxi.DefaultDeviceID, portIdx)
	if err != nil {
		log.Fatalf("failed to open JD-Xi output: %v", err)
	}
	defer closer()

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "play":
			if err := playTestNotes(dev, digitalSynth1Channel); err != nil {
				log.Fatalf("failed to play test notes: %v", err)
			}
			return
		case "identity":
			identityCheck(inPortIdx, dev)
			return
		case "get":
			getTone(inPortIdx, dev)
			return
		case "set":
			setParameter(dev)
			return

		case "mcp":
			runMCP(inPortIdx, dev)
			return

		default:
			log.Fatalf("unknown command %q", os.Args[1])
		}
	}
	log.Println("exiting: no command specified")
}

// JD-Xi factory part-to-channel assignment (0-based).
const (
	digitalSynth1Channel uint8 = 0
	digitalSynth2Channel uint8 = 1
	analogSynthChannel   uint8 = 2
	drumsChannel         uint8 = 9
)

// synthPart names one addressable section of the instrument together with
// everything the commands need to reach it.
type synthPart struct {
	base    jdxi.Address
	family  jdxi.Family
	channel uint8
	// multi is true when the part's tone blocks need a partial or key
	// selector.
	multi bool
}

var synthParts = map[string]synthPart{
	"analog":   {jdxi.AddrAnalog, jdxi.FamilyAnalog, analogSynthChannel, false},
	"digital1": {jdxi.AddrDigital1, jdxi.FamilyDigitalCommon, digitalSynth1Channel, false},
	"digital2": {jdxi.AddrDigital2, jdxi.FamilyDigitalCommon, digitalSynth2Channel, false},
	"drums":    {jdxi.AddrDrum, jdxi.FamilyDrumPartial, drumsChannel, true},
	"program":  {jdxi.AddrProgram, jdxi.FamilyProgramCommon, digitalSynth1Channel, false},
}

func partByName(name string) (synthPart, error) {
	p, ok := synthParts[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return synthPart{}, fmt.Errorf("unknown part %q (want analog, digital1, digital2, drums or program)", name)
	}
	return p, nil
}

func findOutPort(nameFragment string) (int, error) {
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		return -1, fmt.Errorf("no MIDI outputs available")
	}

	lower := strings.ToLower(nameFragment)
	for _, out := range outs {
		if strings.Contains(strings.ToLower(out.String()), lower) {
			return out.Number(), nil
		}
	}

	return -1, fmt.Errorf("no MIDI output contains %q", nameFragment)
}

func findInPort(nameFragment string) (int, error) {
	ins := midi.GetInPorts()
	if len(ins) == 0 {
		return -1, fmt.Errorf("no MIDI inputs available")
	}

	lower := strings.ToLower(nameFragment)
	for _, in := range ins {
		if strings.Contains(strings.ToLower(in.String()), lower) {
			return in.Number(), nil
		}
	}

	return -1, fmt.Errorf("no MIDI input contains %q", nameFragment)
}

func identityCheck(inPortIdx int, dev *jdxi.Device) {
	id, err := dev.RequestIdentity(midi.GetInPorts()[inPortIdx])
	if err != nil {
		log.Fatalf("identity request failed: %v", err)
	}
	if !id.IsJDXi {
		log.Fatalf("device 0x%02X answered but is not a JD-Xi (roland=%v)", id.DeviceID, id.IsRoland)
	}
	log.Printf("JD-Xi found: device 0x%02X, firmware %s", id.DeviceID, id.Version)
}

func getTone(inPortIdx int, dev *jdxi.Device) {
	partName := "analog"
	if len(os.Args) > 2 {
		partName = os.Args[2]
	}
	part, err := partByName(partName)
	if err != nil {
		log.Fatal(err)
	}

	partial := 0
	if part.multi {
		partial = 1
	}
	if len(os.Args) > 3 {
		if _, err := fmt.Sscanf(os.Args[3], "%d", &partial); err != nil {
			log.Fatalf("invalid partial %q: %v", os.Args[3], err)
		}
	}

	size := uint32(dev.Registries().Family(part.family).Span())
	td, err := dev.RequestBlockDump(midi.GetInPorts()[inPortIdx], part.base, part.family, partial, size)
	if err != nil {
		log.Fatalf("failed to read tone: %v", err)
	}

	log.Printf("Tone %q at %s (%s): %d parameters decoded, %d missing",
		td.Name, td.Address.Hex(), td.Area, len(td.Successes), len(td.Failures))
	for _, name := range td.Successes {
		fmt.Printf("%-28s %d\n", name, td.Values[name])
	}
}

func setParameter(dev *jdxi.Device) {
	if len(os.Args) < 5 {
		log.Fatal("usage: jdximcp set <part> <parameter> <value>")
	}
	part, err := partByName(os.Args[2])
	if err != nil {
		log.Fatal(err)
	}

	var value int
	if _, err := fmt.Sscanf(os.Args[4], "%d", &value); err != nil {
		log.Fatalf("invalid value %q: %v", os.Args[4], err)
	}

	if err := dev.SetParameter(part.base, os.Args[3], value, 0); err != nil {
		log.Fatalf("failed to set %s: %v", os.Args[3], err)
	}
	log.Printf("Set %s = %d on %s", os.Args[3], value, os.Args[2])
}
