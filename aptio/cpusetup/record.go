package cpusetup

import "fmt"

/* Size of the CpuSetup record that follows the marker */
const Size = 12

// Marker precedes every CpuSetup record in an Aptio V image.
var Marker = []byte("CpuSetup\x00")

type Record struct {
	Revision                uint8
	CpuRatio                uint8
	CpuDefaultRatio         uint8
	CpuRatioOverride        uint8
	Peci                    uint8
	HyperThreading          uint8
	ActiveCoreCount         uint8
	BistOnReset             uint8
	JtagC10PowerGateDisable uint8
	EnableGv                uint8
	RaceToHalt              uint8
	EnableHwp               uint8
}

func checkBounds(buf []byte, offset int) error {
	if offset < 0 || offset > len(buf)-Size {
		return &OffsetError{Offset: offset, Length: len(buf)}
	}
	return nil
}

func Decode(buf []byte, offset int) (Record, error) {
	if err := checkBounds(buf, offset); err != nil {
		return Record{}, err
	}

	b := buf[offset : offset+Size]
	return Record{
		Revision:                b[0],
		CpuRatio:                b[1],
		CpuDefaultRatio:         b[2],
		CpuRatioOverride:        b[3],
		Peci:                    b[4],
		HyperThreading:          b[5],
		ActiveCoreCount:         b[6],
		BistOnReset:             b[7],
		JtagC10PowerGateDisable: b[8],
		EnableGv:                b[9],
		RaceToHalt:              b[10],
		EnableHwp:               b[11],
	}, nil
}

func (r Record) Bytes() [Size]byte {
	return [Size]byte{
		r.Revision,
		r.CpuRatio,
		r.CpuDefaultRatio,
		r.CpuRatioOverride,
		r.Peci,
		r.HyperThreading,
		r.ActiveCoreCount,
		r.BistOnReset,
		r.JtagC10PowerGateDisable,
		r.EnableGv,
		r.RaceToHalt,
		r.EnableHwp,
	}
}

// Encode writes the record to buf at offset. Nothing is written if the record
// does not fit.
func (r Record) Encode(buf []byte, offset int) error {
	if err := checkBounds(buf, offset); err != nil {
		return err
	}

	b := r.Bytes()
	copy(buf[offset:], b[:])
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("CpuSetup{Revision=%d, CpuRatio=%d, CpuDefaultRatio=%d, CpuRatioOverride=%d, Peci=%d, HyperThreading=%d, "+
		"ActiveCoreCount=%d, BistOnReset=%d, JtagC10PowerGateDisable=%d, EnableGv=%d, RaceToHalt=%d, EnableHwp=%d}",
		r.Revision, r.CpuRatio, r.CpuDefaultRatio, r.CpuRatioOverride, r.Peci, r.HyperThreading,
		r.ActiveCoreCount, r.BistOnReset, r.JtagC10PowerGateDisable, r.EnableGv, r.RaceToHalt, r.EnableHwp)
}
