package macros

// Language selects C or C++ syntax for the probe translation unit. The
// preprocessor picks the language from the file extension, so the probe
// only has to name the temp file accordingly.
type Language uint8

const (
	LangC Language = iota
	LangCXX
)

func (l Language) String() string {
	if l == LangCXX {
		return "C++"
	}
	return "C"
}

// Ext returns the source file extension used for the probe translation unit.
func (l Language) Ext() string {
	if l == LangCXX {
		return ".cpp"
	}
	return ".c"
}
