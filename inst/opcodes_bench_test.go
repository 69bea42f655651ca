package inst

import "testing"

var benchBytes = []byte{
	0x88, 0x89, 0x8a, 0x8b, // RegisterOrMemoryToOrFromRegister
	0xa0, 0xa1, // MemoryToAccumulator
	0xa2, 0xa3, // AccumulatorToMemory
	0xb0, 0xb1, 0xb7, 0xbf, // ImmediateToRegister
	0xc6, 0xc7, // ImmediateToRegisterOrMemory
	0x8e, 0x8f, // RegisterOrMemoryToSegmentRegister
	0x8c, 0x8d, // SegmentRegisterToRegisterOrMemory
}

func classifySwitch(b byte) (Form, bool) {
	switch {
	case b&0xfc == 0x88:
		return RegisterOrMemoryToOrFromRegister, true
	case b&0xf0 == 0xb0:
		return ImmediateToRegister, true
	}
	switch b & 0xfe {
	case 0xa0:
		return MemoryToAccumulator, true
	case 0xa2:
		return AccumulatorToMemory, true
	case 0xc6:
		return ImmediateToRegisterOrMemory, true
	case 0x8e:
		return RegisterOrMemoryToSegmentRegister, true
	case 0x8c:
		return SegmentRegisterToRegisterOrMemory, true
	}
	return 0, false
}

var formTable = func() (t [256]Form) {
	for i := range t {
		t[i], _ = Classify(byte(i))
	}
	return t
}()

func classifyTable(b byte) (Form, bool) {
	f := formTable[b]
	return f, f != 0
}

func TestClassifierStylesAgree(t *testing.T) {
	for i := 0; i < 256; i++ {
		want, wantOK := Classify(byte(i))
		if got, ok := classifySwitch(byte(i)); got != want || ok != wantOK {
			t.Errorf("classifySwitch(%#02x) = %s, %v; want %s, %v", i, got, ok, want, wantOK)
		}
		if got, ok := classifyTable(byte(i)); got != want || ok != wantOK {
			t.Errorf("classifyTable(%#02x) = %s, %v; want %s, %v", i, got, ok, want, wantOK)
		}
	}
}

var sink Form

func benchmarkClassifier(b *testing.B, classify func(byte) (Form, bool)) {
	for i := 0; i < b.N; i++ {
		for _, op := range benchBytes {
			sink, _ = classify(op)
		}
	}
}

func BenchmarkClassifyRules(b *testing.B)  { benchmarkClassifier(b, Classify) }
func BenchmarkClassifySwitch(b *testing.B) { benchmarkClassifier(b, classifySwitch) }
func BenchmarkClassifyTable(b *testing.B)  { benchmarkClassifier(b, classifyTable) }

func BenchmarkDecode(b *testing.B) {
	listing := []byte{0x89, 0xd9, 0x8a, 0x80, 0x87, 0x13, 0xc7, 0x85, 0x85, 0x03, 0x5b, 0x01, 0xb9, 0xf4, 0xff}
	for i := 0; i < b.N; i++ {
		for pos := 0; pos < len(listing); {
			form, _ := Classify(listing[pos])
			inst, err := Decode(form, listing[pos:])
			if err != nil {
				b.Fatal(err)
			}
			pos += inst.Length
		}
	}
}
