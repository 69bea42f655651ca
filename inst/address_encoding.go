package inst

var effAddrEncoding = map[register]string{
	alax: "bx+si",
	clcx: "bx+di",
	dldx: "bp+si",
	blbx: "bp+di",
	ahsp: "si",
	chbp: "di",
	dhsi: "bp",
	bhdi: "bx",
}

// isDirectAddress reports the mod=00 r/m=110 case, which replaces [bp]
// with a 16-bit address.
func isDirectAddress(m Mode, r register) bool {
	return m == MemoryNoDisplacement && r == dhsi
}

func effectiveAddress(m Mode, rm register, disp uint16) (Memory, error) {
	if isDirectAddress(m, rm) {
		return Memory{Disp: int16(disp), Direct: true}, nil
	}
	base, ok := effAddrEncoding[rm]
	if !ok {
		return Memory{}, errInvalidField("r/m", byte(rm))
	}
	mem := Memory{Base: base}
	switch m {
	case MemoryDisplacement8:
		mem.Disp = int16(int8(disp))
	case MemoryDisplacement16:
		mem.Disp = int16(disp)
	}
	return mem, nil
}
