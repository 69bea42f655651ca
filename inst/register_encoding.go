package inst

type regEncoding struct {
	register
	opSize
}

var regString = map[regEncoding]string{
	{alax, opByte}: "al",
	{clcx, opByte}: "cl",
	{dldx, opByte}: "dl",
	{blbx, opByte}: "bl",
	{ahsp, opByte}: "ah",
	{chbp, opByte}: "ch",
	{dhsi, opByte}: "dh",
	{bhdi, opByte}: "bh",
	{alax, opWord}: "ax",
	{clcx, opWord}: "cx",
	{dldx, opWord}: "dx",
	{blbx, opWord}: "bx",
	{ahsp, opWord}: "sp",
	{chbp, opWord}: "bp",
	{dhsi, opWord}: "si",
	{bhdi, opWord}: "di",
}

var segString = map[segment]string{
	es: "es",
	cs: "cs",
	ss: "ss",
	ds: "ds",
}

func (r regEncoding) operand(field string) (Register, error) {
	val, ok := regString[r]
	if !ok {
		return "", errInvalidField(field, byte(r.register))
	}
	return Register(val), nil
}

func segOperand(s segment) (SegmentRegister, error) {
	val, ok := segString[s]
	if !ok {
		return "", errInvalidField("sr", byte(s))
	}
	return SegmentRegister(val), nil
}
