package format

// Align8 returns n aligned up to the next cell boundary.
//
//	Align8(1)  = 8
//	Align8(8)  = 8
//	Align8(9)  = 16
func Align8(n int) int {
	return (n + CellAlignment - 1) &^ (CellAlignment - 1)
}

// AlignHBIN returns n aligned up to the next hive bin boundary.
//
//	AlignHBIN(1)    = 4096
//	AlignHBIN(4097) = 8192
func AlignHBIN(n int) int {
	return (n + HBINAlignment - 1) &^ (HBINAlignment - 1)
}
